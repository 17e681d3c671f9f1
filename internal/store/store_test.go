package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "seen.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordThenExists(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seen, err := s.Exists(ctx, "https://x/job/1")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, s.Record(ctx, "https://x/job/1", 1700000000))

	seen, err = s.Exists(ctx, "https://x/job/1")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestRecordIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Record(ctx, "k", 100))
	require.NoError(t, s.Record(ctx, "k", 999))

	ts, err := s.FirstSeen(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(100), ts, "first_seen must be immutable")

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestLedgerSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "seen.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record(ctx, "persist-me", time.Now().Unix()))
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	seen, err := s2.Exists(ctx, "persist-me")
	require.NoError(t, err)
	assert.True(t, seen)
}

func TestPrune(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	old := time.Now().Add(-90 * 24 * time.Hour).Unix()
	require.NoError(t, s.Record(ctx, "old-key", old))
	require.NoError(t, s.Record(ctx, "new-key", time.Now().Unix()))

	deleted, err := s.Prune(ctx, 30*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	seen, err := s.Exists(ctx, "new-key")
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = s.Exists(ctx, "old-key")
	require.NoError(t, err)
	assert.False(t, seen)
}
