package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinacircular/circular-server/internal/auth"
	"github.com/edinacircular/circular-server/internal/domain"
	domainerrors "github.com/edinacircular/circular-server/internal/errors"
)

func anaRegistration() RegisterRequest {
	return RegisterRequest{Email: "ana@example.com", Password: "pa55word", Name: "Ana", Contact: "555-0100"}
}

func TestUserService_RegisterHashesPassword(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	user, err := svc.users.Register(ctx, anaRegistration())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(user.ID, "user-"))
	assert.Empty(t, user.Password)

	stored, err := svc.store.FindUserByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.True(t, auth.IsHash(stored.Password))
	assert.NotContains(t, stored.Password, "pa55word")
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	first, err := svc.users.Register(ctx, anaRegistration())
	require.NoError(t, err)

	_, err = svc.users.Register(ctx, anaRegistration())
	require.ErrorIs(t, err, domainerrors.ErrConflict)

	users, err := svc.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, first.ID, users[0].ID)
}

func TestUserService_RegisterValidation(t *testing.T) {
	svc := newTestServices(t)

	req := anaRegistration()
	req.Email = "not-an-email"
	_, err := svc.users.Register(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)

	req = anaRegistration()
	req.Name = ""
	_, err = svc.users.Register(context.Background(), req)
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	_, err := svc.users.Register(ctx, anaRegistration())
	require.NoError(t, err)

	user, err := svc.users.Login(ctx, LoginRequest{Email: "ana@example.com", Password: "pa55word"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
	assert.Empty(t, user.Password)

	tests := []LoginRequest{
		{Email: "ana@example.com", Password: "wrong"},
		{Email: "ANA@example.com", Password: "pa55word"}, // exact match only
		{Email: "nobody@example.com", Password: "pa55word"},
		{Email: "", Password: ""},
	}
	for _, req := range tests {
		_, err := svc.users.Login(ctx, req)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials, "login %q", req.Email)
	}
}

func TestUserService_LegacyPasswordUpgrade(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	legacy := &domain.User{ID: "1700000000000", Email: "old@example.com", Password: "plaintext", Name: "Old"}
	require.NoError(t, svc.store.CreateUser(ctx, legacy))

	_, err := svc.users.Login(ctx, LoginRequest{Email: "old@example.com", Password: "nope"})
	require.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	stored, err := svc.store.FindUserByEmail(ctx, "old@example.com")
	require.NoError(t, err)
	assert.Equal(t, "plaintext", stored.Password, "failed login must not rewrite the password")

	user, err := svc.users.Login(ctx, LoginRequest{Email: "old@example.com", Password: "plaintext"})
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", user.ID)

	stored, err = svc.store.FindUserByEmail(ctx, "old@example.com")
	require.NoError(t, err)
	assert.True(t, auth.IsHash(stored.Password))
	assert.False(t, stored.HasLegacyPassword())

	_, err = svc.users.Login(ctx, LoginRequest{Email: "old@example.com", Password: "plaintext"})
	require.NoError(t, err, "the upgraded hash still accepts the same password")
}

func TestUserService_ListStripsPasswords(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	_, err := svc.users.Register(ctx, anaRegistration())
	require.NoError(t, err)

	users, err := svc.users.List(ctx)
	require.NoError(t, err)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}
