package storage

import (
	"github.com/julianstephens/yeargrid/internal/constants"
)

// New returns the provider for kind. path is a directory for text storage
// and a database file for sqlite.
func New(kind constants.StorageKind, path string) Provider {
	if kind == constants.StorageSQLite {
		return NewSQLiteStore(path)
	}
	return NewTextStore(path)
}
