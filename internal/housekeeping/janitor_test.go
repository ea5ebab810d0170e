package housekeeping

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	cutoffs []time.Time
	err     error
}

func (f *fakeStore) DeleteProductionSchedulesEndedBefore(t time.Time) (int64, error) {
	f.cutoffs = append(f.cutoffs, t)
	return 3, f.err
}

func TestRunOnceUsesRetention(t *testing.T) {
	store := &fakeStore{}
	j := NewJanitor(store, "@daily", 30)
	now := time.Date(2025, time.July, 1, 3, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return now }

	j.RunOnce()

	require.Len(t, store.cutoffs, 1)
	assert.Equal(t, time.Date(2025, time.June, 1, 3, 0, 0, 0, time.UTC), store.cutoffs[0])
}

func TestRunOnceDisabled(t *testing.T) {
	store := &fakeStore{}
	j := NewJanitor(store, "@daily", 0)

	j.RunOnce()

	assert.Empty(t, store.cutoffs)
}

func TestRunOnceStoreError(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	j := NewJanitor(store, "@daily", 1)

	assert.NotPanics(t, j.RunOnce)
	assert.Len(t, store.cutoffs, 1)
}

func TestStartFallsBackOnInvalidSpec(t *testing.T) {
	j := NewJanitor(&fakeStore{}, "not a cron spec", 1)

	j.Start()
	defer j.Stop()

	require.NotNil(t, j.cron)
	assert.Len(t, j.cron.Entries(), 1)
}

func TestStopWithoutStart(t *testing.T) {
	j := NewJanitor(&fakeStore{}, "@daily", 1)
	assert.NotPanics(t, j.Stop)
}
