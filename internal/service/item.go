package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/id"
	"github.com/edinacircular/circular-server/internal/match"
	"github.com/edinacircular/circular-server/internal/validation"
)

// ItemService manages item listings, moderation, matching and ratings.
type ItemService struct {
	store     ItemStore
	validator *validation.Validator
	logger    *slog.Logger
}

// NewItemService creates a new item service.
func NewItemService(store ItemStore, validator *validation.Validator, logger *slog.Logger) *ItemService {
	return &ItemService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// CreateItemRequest carries the fields of a new listing.
type CreateItemRequest struct {
	Name          string          `json:"name" validate:"required,notblank"`
	Category      string          `json:"category" validate:"required,notblank"`
	Description   string          `json:"description" validate:"required,notblank"`
	Type          domain.ItemType `json:"type" validate:"required,oneof=lend give"`
	LenderName    string          `json:"lenderName" validate:"required,notblank"`
	LenderContact string          `json:"lenderContact" validate:"required,notblank"`
	LenderBio     string          `json:"lenderBio"`
	Photo         string          `json:"photo"`
	LenderPhoto   string          `json:"lenderPhoto"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// MatchRequest holds the criteria for a primary-mode match.
type MatchRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// RatingResult is the aggregate after a rating has been recorded.
type RatingResult struct {
	Avg   float64 `json:"avg"`
	Count int     `json:"count"`
}

// List returns all items, or those matching a free-text query when q is not blank.
func (s *ItemService) List(ctx context.Context, q string) ([]domain.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return match.Search(items, q), nil
}

// Get returns a single item.
func (s *ItemService) Get(ctx context.Context, itemID string) (*domain.Item, error) {
	return s.store.GetItem(ctx, itemID)
}

// Create validates and stores a new item. The server assigns the id; a
// client-supplied creation time is kept, otherwise the current time is used.
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*domain.Item, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	itemID, err := id.Generate(id.Item)
	if err != nil {
		return nil, fmt.Errorf("generate item ID: %w", err)
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	item := &domain.Item{
		ID:            itemID,
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Type:          req.Type,
		LenderName:    req.LenderName,
		LenderContact: req.LenderContact,
		LenderBio:     req.LenderBio,
		Photo:         req.Photo,
		LenderPhoto:   req.LenderPhoto,
		CreatedAt:     domain.NewTimestamp(createdAt),
	}

	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.logger.Info("item created",
		"item_id", item.ID,
		"type", item.Type,
		"category", item.Category,
	)
	return item, nil
}

// Delete removes an item. Deleting an unknown id is not an error.
func (s *ItemService) Delete(ctx context.Context, itemID string) (bool, error) {
	removed, err := s.store.DeleteItem(ctx, itemID)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return removed, nil
}

// SetVerified marks an item as checked (or unchecked) by a moderator.
func (s *ItemService) SetVerified(ctx context.Context, itemID string, verified bool) (*domain.Item, error) {
	item, err := s.store.SetItemVerified(ctx, itemID, verified)
	if err != nil {
		return nil, err
	}
	s.logger.Info("item verification changed", "item_id", itemID, "verified", verified)
	return item, nil
}

// Match returns the items satisfying the name and category criteria.
func (s *ItemService) Match(ctx context.Context, req MatchRequest) ([]domain.Item, error) {
	items, err := s.store.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	return match.Query(items, req.Name, req.Category), nil
}

// Rate records a star rating and returns the item's new aggregate.
func (s *ItemService) Rate(ctx context.Context, itemID string, rating int) (*RatingResult, error) {
	avg, count, err := s.store.AddRating(ctx, itemID, rating)
	if err != nil {
		return nil, err
	}
	s.logger.Info("item rated", "item_id", itemID, "rating", rating, "count", count)
	return &RatingResult{Avg: avg, Count: count}, nil
}
