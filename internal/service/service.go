// Package service holds the application logic behind the HTTP API:
// request validation, id assignment, password handling and orchestration of
// store and matcher calls.
package service

import (
	"context"

	"github.com/edinacircular/circular-server/internal/domain"
)

// ItemStore is the persistence the item service needs.
type ItemStore interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	CreateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id string) (bool, error)
	SetItemVerified(ctx context.Context, id string, verified bool) (*domain.Item, error)
	AddRating(ctx context.Context, itemID string, rating int) (float64, int, error)
}

// RequestStore is the persistence the request service needs.
type RequestStore interface {
	ListItems(ctx context.Context) ([]domain.Item, error)
	ListRequests(ctx context.Context) ([]domain.Request, error)
	GetRequest(ctx context.Context, id string) (*domain.Request, error)
	CreateRequest(ctx context.Context, req *domain.Request) error
	DeleteRequest(ctx context.Context, id string) (bool, error)
}

// UserStore is the persistence the user service needs.
type UserStore interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUserPassword(ctx context.Context, id, password string) error
}

// OutreachStore is the persistence the outreach service needs.
type OutreachStore interface {
	ListVolunteers(ctx context.Context) ([]domain.Volunteer, error)
	CreateVolunteer(ctx context.Context, v *domain.Volunteer) error
	ListDonations(ctx context.Context) ([]domain.Donation, error)
	CreateDonation(ctx context.Context, d *domain.Donation) error
}

// DocumentLoader reads the whole document in one call.
type DocumentLoader interface {
	Load(ctx context.Context) (*domain.Document, error)
}
