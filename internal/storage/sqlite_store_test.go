package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/yeargrid/internal/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, s.Load())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStoreEmpty(t *testing.T) {
	s := newTestSQLiteStore(t)

	days, err := s.LoadProductiveDays()
	require.NoError(t, err)
	assert.Equal(t, 0, days.Len())

	cps, err := s.LoadCheckpoints()
	require.NoError(t, err)
	assert.Empty(t, cps)

	exists, err := s.CheckpointsExist()
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSQLiteStoreLoadIsIdempotent(t *testing.T) {
	s := newTestSQLiteStore(t)
	assert.NoError(t, s.Load())
}

func TestSQLiteStoreNotLoaded(t *testing.T) {
	s := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))

	_, err := s.LoadProductiveDays()
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.ErrorIs(t, s.SaveCheckpoints(nil), ErrNotLoaded)
}

func TestSQLiteStoreCheckpointRoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	want := []models.Checkpoint{
		{Name: "Z last", Date: date(2026, 12, 1)},
		{Name: "A first", Date: date(2026, 2, 1)},
	}

	require.NoError(t, s.SaveCheckpoints(want))
	got, err := s.LoadCheckpoints()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, s.SaveCheckpoints(got[:1]))
	got, err = s.LoadCheckpoints()
	require.NoError(t, err)
	assert.Equal(t, want[:1], got)

	exists, err := s.CheckpointsExist()
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSQLiteStoreSkipsMalformedRows(t *testing.T) {
	s := newTestSQLiteStore(t)
	_, err := s.db.Exec(`INSERT INTO checkpoints (position, day, name) VALUES
		(0, '2026-05-01', 'Good'),
		(1, 'not-a-date', 'Bad'),
		(2, '2026-05-02', '')`)
	require.NoError(t, err)
	_, err = s.db.Exec(`INSERT INTO productive_days (day) VALUES ('2026-01-01'), ('nope')`)
	require.NoError(t, err)

	cps, err := s.LoadCheckpoints()
	require.NoError(t, err)
	assert.Equal(t, []models.Checkpoint{{Name: "Good", Date: date(2026, 5, 1)}}, cps)

	days, err := s.LoadProductiveDays()
	require.NoError(t, err)
	assert.Equal(t, 1, days.Len())
}

func TestSQLiteStoreAppendTwiceDedupsOnLoad(t *testing.T) {
	s := newTestSQLiteStore(t)
	day := date(2026, 4, 9)

	require.NoError(t, s.AppendProductiveDay(day))
	require.NoError(t, s.AppendProductiveDay(day))

	var rows int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM productive_days").Scan(&rows))
	assert.Equal(t, 2, rows)

	days, err := s.LoadProductiveDays()
	require.NoError(t, err)
	assert.Equal(t, 1, days.Len())
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	s := NewSQLiteStore(path)
	require.NoError(t, s.Load())
	require.NoError(t, s.AppendProductiveDay(date(2026, 2, 2)))
	require.NoError(t, s.Close())

	reopened := NewSQLiteStore(path)
	require.NoError(t, reopened.Load())
	defer reopened.Close()

	days, err := reopened.LoadProductiveDays()
	require.NoError(t, err)
	assert.True(t, days.Has(date(2026, 2, 2)))
}
