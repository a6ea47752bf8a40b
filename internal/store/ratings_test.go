package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinacircular/circular-server/internal/domain"
	domainerrors "github.com/edinacircular/circular-server/internal/errors"
)

func TestAddRating_RecomputesAggregate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.CreateItem(ctx, &domain.Item{ID: "item-drill", Name: "Drill"}))

	avg, count, err := s.AddRating(ctx, "item-drill", 5)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, avg, 1e-9)
	assert.Equal(t, 1, count)

	avg, count, err = s.AddRating(ctx, "item-drill", 4)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, avg, 1e-9)
	assert.Equal(t, 2, count)

	item, err := s.GetItem(ctx, "item-drill")
	require.NoError(t, err)
	require.NotNil(t, item.RatingAvg)
	require.NotNil(t, item.RatingCount)
	assert.InDelta(t, 4.5, *item.RatingAvg, 1e-9)
	assert.Equal(t, 2, *item.RatingCount)
}

func TestAddRating_RejectsOutOfRange(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.CreateItem(ctx, &domain.Item{ID: "item-a"}))

	for _, r := range []int{0, 6, -1} {
		_, _, err := s.AddRating(ctx, "item-a", r)
		assert.ErrorIs(t, err, domainerrors.ErrValidation, "rating %d", r)
	}

	ratings, err := s.ListRatings(ctx)
	require.NoError(t, err)
	assert.Empty(t, ratings)
}

func TestAddRating_UnknownItemIsStillRecorded(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	avg, count, err := s.AddRating(ctx, "ghost", 3)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 1e-9)
	assert.Equal(t, 1, count)

	ratings, err := s.ListRatings(ctx)
	require.NoError(t, err)
	require.Len(t, ratings, 1)
	assert.Equal(t, "ghost", ratings[0].ItemID)

	items, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddRating_ConcurrentCallsAreAllCounted(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.CreateItem(ctx, &domain.Item{ID: "item-a"}))

	const n = 25
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.AddRating(ctx, "item-a", i%5+1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	item, err := s.GetItem(ctx, "item-a")
	require.NoError(t, err)
	require.NotNil(t, item.RatingCount)
	assert.Equal(t, n, *item.RatingCount)
	// 25 ratings cycling 1..5 average to exactly 3.
	assert.InDelta(t, 3.0, *item.RatingAvg, 1e-9)
}
