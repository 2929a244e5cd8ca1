package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/yeargrid/internal/constants"
	"github.com/julianstephens/yeargrid/internal/models"
	"github.com/julianstephens/yeargrid/internal/storage"
)

type fakeAsker struct {
	answer bool
	err    error
	asked  []string
}

func (f *fakeAsker) PromptYesNo(q string) (bool, error) {
	f.asked = append(f.asked, q)
	return f.answer, f.err
}

type fakeRecorder struct {
	days []time.Time
	err  error
}

func (f *fakeRecorder) AppendProductiveDay(d time.Time) error {
	f.days = append(f.days, d)
	return f.err
}

func TestReflectionYes(t *testing.T) {
	today := date(2026, 3, 2)
	days := models.NewProductiveDays()
	asker := &fakeAsker{answer: true}
	rec := &fakeRecorder{}

	r := NewReflection(today)
	require.NoError(t, r.Run(days, asker, rec))

	assert.Equal(t, ReflectionRecorded, r.State)
	assert.Equal(t, []string{constants.ReflectionQuestion}, asker.asked)
	assert.True(t, days.Has(date(2026, 3, 1)))
	assert.Equal(t, []time.Time{date(2026, 3, 1)}, rec.days)

	// a second call in the same run does nothing
	require.NoError(t, r.Run(days, asker, rec))
	assert.Len(t, asker.asked, 1)
}

func TestReflectionNo(t *testing.T) {
	days := models.NewProductiveDays()
	asker := &fakeAsker{answer: false}
	rec := &fakeRecorder{}

	r := NewReflection(date(2026, 3, 2))
	require.NoError(t, r.Run(days, asker, rec))

	assert.Equal(t, ReflectionSkipped, r.State)
	assert.Equal(t, 0, days.Len())
	assert.Empty(t, rec.days)
}

func TestReflectionAlreadyRecorded(t *testing.T) {
	days := models.NewProductiveDays(date(2026, 3, 1))
	asker := &fakeAsker{answer: true}

	r := NewReflection(date(2026, 3, 2))
	require.NoError(t, r.Run(days, asker, &fakeRecorder{}))

	assert.Equal(t, ReflectionUnasked, r.State)
	assert.Empty(t, asker.asked)
}

func TestReflectionPromptError(t *testing.T) {
	days := models.NewProductiveDays()
	r := NewReflection(date(2026, 3, 2))

	err := r.Run(days, &fakeAsker{err: errors.New("no tty")}, &fakeRecorder{})

	assert.Error(t, err)
	assert.Equal(t, ReflectionSkipped, r.State)
	assert.Equal(t, 0, days.Len())
}

func TestReflectionRecorderErrorKeepsMemoryState(t *testing.T) {
	days := models.NewProductiveDays()
	r := NewReflection(date(2026, 3, 2))

	err := r.Run(days, &fakeAsker{answer: true}, &fakeRecorder{err: errors.New("disk full")})

	assert.Error(t, err)
	assert.Equal(t, ReflectionUnsaved, r.State)
	assert.Equal(t, "unsaved", r.State.String())
	assert.True(t, days.Has(date(2026, 3, 1)), "day still counts for this run")
	assert.False(t, r.NeedsPrompt(days))
}

func TestReflectionIdempotentAcrossRuns(t *testing.T) {
	store := storage.NewTextStore(t.TempDir())
	require.NoError(t, store.Load())
	today := date(2026, 3, 2)

	// two runs on the same day, both answering yes
	for i := 0; i < 2; i++ {
		days, err := store.LoadProductiveDays()
		require.NoError(t, err)
		asker := &fakeAsker{answer: true}
		require.NoError(t, NewReflection(today).Run(days, asker, store))
		if i == 1 {
			assert.Empty(t, asker.asked, "second run must not ask again")
		}
	}

	// even a duplicate line on disk loads as one date
	require.NoError(t, store.AppendProductiveDay(date(2026, 3, 1)))
	days, err := store.LoadProductiveDays()
	require.NoError(t, err)
	assert.Equal(t, []time.Time{date(2026, 3, 1)}, days.Sorted())
}
