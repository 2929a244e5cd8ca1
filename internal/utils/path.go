package utils

import (
	"os"
	"path/filepath"
	"strings"
)

var userHomeDirFunc = os.UserHomeDir

// ExpandPath expands a leading "~" to the user's home directory and returns
// an absolute, cleaned path.
func ExpandPath(p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home, err := userHomeDirFunc()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, p[1:])
	}
	return filepath.Abs(p)
}
