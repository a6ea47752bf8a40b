package store

import (
	"context"

	"github.com/edinacircular/circular-server/internal/domain"
)

// ListUsers returns every user, passwords included. Callers exposing users
// over the API must strip them.
func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

// CreateUser appends user, failing with a conflict when the email is taken.
// The uniqueness check and the insert happen under the same lock.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	return s.Update(ctx, func(doc *domain.Document) error {
		if doc.UserByEmail(user.Email) >= 0 {
			return emailTaken(user.Email)
		}
		doc.Users = append(doc.Users, *user)
		return nil
	})
}

// FindUserByEmail returns the user whose email matches exactly.
func (s *Store) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	doc, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	idx := doc.UserByEmail(email)
	if idx < 0 {
		return nil, userNotFound(email)
	}
	return &doc.Users[idx], nil
}

// UpdateUserPassword replaces the stored password value for a user.
func (s *Store) UpdateUserPassword(ctx context.Context, id, password string) error {
	return s.Update(ctx, func(doc *domain.Document) error {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				doc.Users[i].Password = password
				return nil
			}
		}
		return userNotFound(id)
	})
}
