package sqlite

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fetchbot/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func record(id string, state domain.State, finished time.Time) domain.JobRecord {
	return domain.JobRecord{
		ID:          id,
		RequesterID: 42,
		Kind:        domain.KindAudio,
		URL:         "https://www.youtube.com/watch?v=" + id,
		State:       state,
		CreatedAt:   finished.Add(-time.Minute),
		FinishedAt:  finished,
	}
}

func TestStore_RecordAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)

	rec := record("abc", domain.StateFailed, now)
	rec.ErrorMessage = "fetch process exited with code 1: ERROR: Private video"
	require.NoError(t, s.Record(ctx, rec))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, rec.RequesterID, got.RequesterID)
	assert.Equal(t, rec.Kind, got.Kind)
	assert.Equal(t, rec.URL, got.URL)
	assert.Equal(t, rec.State, got.State)
	assert.Equal(t, rec.ErrorMessage, got.ErrorMessage)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, rec.FinishedAt.Equal(got.FinishedAt))
}

func TestStore_GetMissing(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_RecordOverwritesState(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, s.Record(ctx, record("abc", domain.StateDelivered, now)))
	require.NoError(t, s.Record(ctx, record("abc", domain.StateCleaned, now.Add(time.Second))))

	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, domain.StateCleaned, got.State)

	all, err := s.ListRecent(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_ListRecentOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	// Whole-second and fractional timestamps must still sort by time.
	require.NoError(t, s.Record(ctx, record("a", domain.StateCleaned, base)))
	require.NoError(t, s.Record(ctx, record("b", domain.StateCleaned, base.Add(100*time.Millisecond))))
	require.NoError(t, s.Record(ctx, record("c", domain.StateRejected, base.Add(time.Second))))

	got, err := s.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestStore_ListRecentDefaultLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Now().UTC()
	for i := 0; i < DefaultListLimit+5; i++ {
		require.NoError(t, s.Record(ctx, record(fmt.Sprintf("job-%02d", i), domain.StateCleaned, base.Add(time.Duration(i)*time.Second))))
	}

	got, err := s.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, got, DefaultListLimit)
}

func TestStore_ReopenKeepsRecords(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, record("persist", domain.StateCleaned, time.Now())))
	require.NoError(t, s.Close())

	s, err = NewStore(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "persist")
	require.NoError(t, err)
	assert.Equal(t, domain.StateCleaned, got.State)
}
