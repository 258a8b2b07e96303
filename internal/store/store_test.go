package store

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(context.Background(), "sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNewUnknownDriver(t *testing.T) {
	_, err := New(context.Background(), "mysql", "whatever")
	assert.Error(t, err)
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Create(ctx, "What is 2+2?", "4")
	require.NoError(t, err)
	assert.Equal(t, "What is 2+2?", first.Question)
	assert.Equal(t, "4", first.Answer)
	assert.NotZero(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := s.Create(ctx, "Second?", "yes")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestListWindowAndTotal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		_, err := s.Create(ctx, fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i))
		require.NoError(t, err)
	}

	recs, total, err := s.List(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, recs, 2)
	assert.Equal(t, "q1", recs[0].Question)
	assert.Equal(t, "q2", recs[1].Question)
	assert.Less(t, recs[0].ID, recs[1].ID)

	recs, total, err = s.List(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, recs, 1)
	assert.Equal(t, "q3", recs[0].Question)

	recs, total, err = s.List(ctx, 5, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, recs)
}

func TestListEmpty(t *testing.T) {
	s := newTestStore(t)

	recs, total, err := s.List(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestClosedStoreReturnsStorageError(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Close())

	_, err := s.Create(context.Background(), "q", "a")
	var serr *StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "create", serr.Op)

	_, _, err = s.List(context.Background(), 1, 10)
	assert.True(t, errors.As(err, &serr))

	assert.Error(t, s.Ping(context.Background()))
}

func TestListHugePageIsEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		_, err := s.Create(ctx, fmt.Sprintf("q%d", i), "a")
		require.NoError(t, err)
	}

	// (page-1)*perPage переполняет int
	recs, total, err := s.List(ctx, 4611686018427387905, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, recs)

	recs, _, err = s.List(ctx, math.MaxInt, 100)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
