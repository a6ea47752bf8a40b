package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/edinacircular/circular-server/internal/errors"
)

func ladderRequest() CreateRequestRequest {
	return CreateRequestRequest{
		Name:        "drill",
		Category:    "Garden",
		Duration:    "2 days",
		Description: "Hanging shelves",
	}
}

func TestRequestService_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	req, err := svc.requests.Create(ctx, ladderRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(req.ID, "req-"))

	list, err := svc.requests.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	removed, err := svc.requests.Delete(ctx, req.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.requests.Delete(ctx, req.ID)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRequestService_CreateValidation(t *testing.T) {
	svc := newTestServices(t)

	r := ladderRequest()
	r.Duration = ""
	_, err := svc.requests.Create(context.Background(), r)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestRequestService_Matches(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	drill, err := svc.items.Create(ctx, drillRequest())
	require.NoError(t, err)
	rake := drillRequest()
	rake.Name, rake.Category = "Rake", "Garden"
	rakeItem, err := svc.items.Create(ctx, rake)
	require.NoError(t, err)
	lamp := drillRequest()
	lamp.Name, lamp.Category = "Lamp", "garden" // category differs in case only
	_, err = svc.items.Create(ctx, lamp)
	require.NoError(t, err)

	req, err := svc.requests.Create(ctx, ladderRequest())
	require.NoError(t, err)

	got, err := svc.requests.Matches(ctx, req.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, drill.ID, got[0].ID)
	assert.Equal(t, rakeItem.ID, got[1].ID)

	_, err = svc.requests.Matches(ctx, "req-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
