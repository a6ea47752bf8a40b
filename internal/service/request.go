package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/id"
	"github.com/edinacircular/circular-server/internal/match"
	"github.com/edinacircular/circular-server/internal/validation"
)

// RequestService manages borrowing requests and their suggested matches.
type RequestService struct {
	store     RequestStore
	validator *validation.Validator
	logger    *slog.Logger
}

// NewRequestService creates a new request service.
func NewRequestService(store RequestStore, validator *validation.Validator, logger *slog.Logger) *RequestService {
	return &RequestService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateRequestRequest carries the fields of a new borrowing request.
type CreateRequestRequest struct {
	Name        string `json:"name" validate:"required,notblank"`
	Category    string `json:"category" validate:"required,notblank"`
	Duration    string `json:"duration" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
}

// List returns every request.
func (s *RequestService) List(ctx context.Context) ([]domain.Request, error) {
	return s.store.ListRequests(ctx)
}

// Create validates and stores a new request.
func (s *RequestService) Create(ctx context.Context, req CreateRequestRequest) (*domain.Request, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	reqID, err := id.Generate(id.Request)
	if err != nil {
		return nil, fmt.Errorf("generate request ID: %w", err)
	}

	r := &domain.Request{
		ID:          reqID,
		Name:        req.Name,
		Category:    req.Category,
		Duration:    req.Duration,
		Description: req.Description,
	}
	if err := s.store.CreateRequest(ctx, r); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("request created", "request_id", r.ID, "category", r.Category)
	return r, nil
}

// Delete removes a request. Deleting an unknown id is not an error.
func (s *RequestService) Delete(ctx context.Context, requestID string) (bool, error) {
	removed, err := s.store.DeleteRequest(ctx, requestID)
	if err != nil {
		return false, fmt.Errorf("delete request: %w", err)
	}
	if removed {
		s.logger.Info("request deleted", "request_id", requestID)
	}
	return removed, nil
}

// Matches returns the items suggested for a stored request.
func (s *RequestService) Matches(ctx context.Context, requestID string) ([]domain.Item, error) {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return match.ForRequest(items, *req), nil
}
