package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinacircular/circular-server/internal/domain"
	domainerrors "github.com/edinacircular/circular-server/internal/errors"
)

func TestUsers_CreateRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.CreateUser(ctx, &domain.User{ID: "user-1", Email: "ana@example.com"}))

	err := s.CreateUser(ctx, &domain.User{ID: "user-2", Email: "ana@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	// Matching is exact, so a case variant is a different account.
	require.NoError(t, s.CreateUser(ctx, &domain.User{ID: "user-3", Email: "Ana@example.com"}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUsers_FindByEmailAndUpdatePassword(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.CreateUser(ctx, &domain.User{ID: "user-1", Email: "ana@example.com", Password: "old"}))

	u, err := s.FindUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)

	_, err = s.FindUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	require.NoError(t, s.UpdateUserPassword(ctx, "user-1", "new"))
	u, err = s.FindUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new", u.Password)

	err = s.UpdateUserPassword(ctx, "user-404", "x")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
