package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/service"
)

func (s *Server) registerItemRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listItems",
		Method:      http.MethodGet,
		Path:        "/items",
		Summary:     "List items",
		Description: "Returns every listed item, or those whose name, category, type, lender or description contains q",
		Tags:        []string{"Items"},
	}, s.handleListItems)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createItem",
		Method:        http.MethodPost,
		Path:          "/items",
		Summary:       "Create item",
		Description:   "Lists a new item to lend or give away",
		Tags:          []string{"Items"},
		DefaultStatus: http.StatusCreated,
		MaxBodyBytes:  maxItemBodyBytes,
	}, s.handleCreateItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "getItem",
		Method:      http.MethodGet,
		Path:        "/items/{id}",
		Summary:     "Get item",
		Tags:        []string{"Items"},
	}, s.handleGetItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteItem",
		Method:      http.MethodDelete,
		Path:        "/items/{id}",
		Summary:     "Delete item",
		Description: "Removes an item. success is false when no item has the id.",
		Tags:        []string{"Items"},
	}, s.handleDeleteItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "verifyItem",
		Method:      http.MethodPatch,
		Path:        "/items/{id}/verify",
		Summary:     "Set item verification",
		Description: "Marks an item as checked by a moderator",
		Tags:        []string{"Items"},
	}, s.handleVerifyItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "matchItems",
		Method:      http.MethodPost,
		Path:        "/match",
		Summary:     "Match items",
		Description: "Returns items whose name or description contains the given name and whose category equals the given category, ignoring case. Empty criteria match everything.",
		Tags:        []string{"Items"},
	}, s.handleMatchItems)

	huma.Register(s.api, huma.Operation{
		OperationID: "rateItem",
		Method:      http.MethodPost,
		Path:        "/ratings/{itemId}",
		Summary:     "Rate item",
		Description: "Records a 1 to 5 star rating and returns the item's new average",
		Tags:        []string{"Items"},
	}, s.handleRateItem)
}

// maxItemBodyBytes leaves room for photos sent inline as data URIs.
const maxItemBodyBytes = 10 << 20

// ListItemsInput filters the item list.
type ListItemsInput struct {
	Q string `query:"q" doc:"Free-text filter"`
}

// ItemsOutput wraps a list of items.
type ItemsOutput struct {
	Body []domain.Item
}

// ItemOutput wraps a single item.
type ItemOutput struct {
	Body *domain.Item
}

// ItemPathInput addresses one item.
type ItemPathInput struct {
	ID string `path:"id" doc:"Item ID"`
}

// CreateItemBody is the request body for a new listing. Field rules are
// enforced by the item service.
type CreateItemBody struct {
	_             struct{}  `json:"-" additionalProperties:"true"`
	Name          string    `json:"name,omitempty" doc:"Item name"`
	Category      string    `json:"category,omitempty" doc:"Category"`
	Description   string    `json:"description,omitempty" doc:"Description"`
	Type          string    `json:"type,omitempty" doc:"lend or give"`
	LenderName    string    `json:"lenderName,omitempty" doc:"Lender name"`
	LenderContact string    `json:"lenderContact,omitempty" doc:"How to reach the lender"`
	LenderBio     string    `json:"lenderBio,omitempty" doc:"Lender bio"`
	Photo         string    `json:"photo,omitempty" doc:"Item photo (URL or data URI)"`
	LenderPhoto   string    `json:"lenderPhoto,omitempty" doc:"Lender photo (URL or data URI)"`
	CreatedAt     *FlexTime `json:"createdAt,omitempty" doc:"Creation time; defaults to now"`
}

// CreateItemInput wraps CreateItemBody for Huma.
type CreateItemInput struct {
	Body CreateItemBody
}

// VerifyItemBody is the request body for moderation.
type VerifyItemBody struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Verified bool     `json:"verified" doc:"Whether the item has been checked"`
}

// VerifyItemInput wraps VerifyItemBody for Huma.
type VerifyItemInput struct {
	ID   string `path:"id" doc:"Item ID"`
	Body VerifyItemBody
}

// MatchBody holds match criteria.
type MatchBody struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Name     string   `json:"name,omitempty" doc:"Substring of the item name"`
	Category string   `json:"category,omitempty" doc:"Exact category"`
}

// MatchInput wraps MatchBody for Huma. The body may be omitted.
type MatchInput struct {
	Body *MatchBody `required:"false"`
}

// RateItemBody carries a star rating.
type RateItemBody struct {
	_      struct{} `json:"-" additionalProperties:"true"`
	Rating int      `json:"rating,omitempty" doc:"Stars from 1 to 5"`
}

// RateItemInput wraps RateItemBody for Huma.
type RateItemInput struct {
	ItemID string `path:"itemId" doc:"Item ID"`
	Body   RateItemBody
}

// RatingResponse reports the aggregate after a rating.
type RatingResponse struct {
	Success bool    `json:"success" doc:"Always true when the rating was stored"`
	Avg     float64 `json:"avg" doc:"Mean of all ratings for the item"`
	Count   int     `json:"count" doc:"Number of ratings for the item"`
}

// RatingOutput wraps RatingResponse for Huma.
type RatingOutput struct {
	Body RatingResponse
}

func (s *Server) handleListItems(ctx context.Context, input *ListItemsInput) (*ItemsOutput, error) {
	items, err := s.services.Items.List(ctx, input.Q)
	if err != nil {
		return nil, s.failure(ctx, "listItems", err)
	}
	return &ItemsOutput{Body: items}, nil
}

func (s *Server) handleCreateItem(ctx context.Context, input *CreateItemInput) (*ItemOutput, error) {
	b := input.Body
	item, err := s.services.Items.Create(ctx, service.CreateItemRequest{
		Name:          b.Name,
		Category:      b.Category,
		Description:   b.Description,
		Type:          domain.ItemType(b.Type),
		LenderName:    b.LenderName,
		LenderContact: b.LenderContact,
		LenderBio:     b.LenderBio,
		Photo:         b.Photo,
		LenderPhoto:   b.LenderPhoto,
		CreatedAt:     b.CreatedAt.ToTime(),
	})
	if err != nil {
		return nil, s.failure(ctx, "createItem", err)
	}
	return &ItemOutput{Body: item}, nil
}

func (s *Server) handleGetItem(ctx context.Context, input *ItemPathInput) (*ItemOutput, error) {
	item, err := s.services.Items.Get(ctx, input.ID)
	if err != nil {
		return nil, s.failure(ctx, "getItem", err)
	}
	return &ItemOutput{Body: item}, nil
}

func (s *Server) handleDeleteItem(ctx context.Context, input *ItemPathInput) (*SuccessOutput, error) {
	removed, err := s.services.Items.Delete(ctx, input.ID)
	if err != nil {
		return nil, s.failure(ctx, "deleteItem", err)
	}
	return &SuccessOutput{Body: SuccessResponse{Success: removed}}, nil
}

func (s *Server) handleVerifyItem(ctx context.Context, input *VerifyItemInput) (*ItemOutput, error) {
	item, err := s.services.Items.SetVerified(ctx, input.ID, input.Body.Verified)
	if err != nil {
		return nil, s.failure(ctx, "verifyItem", err)
	}
	return &ItemOutput{Body: item}, nil
}

func (s *Server) handleMatchItems(ctx context.Context, input *MatchInput) (*ItemsOutput, error) {
	var req service.MatchRequest
	if input.Body != nil {
		req = service.MatchRequest{Name: input.Body.Name, Category: input.Body.Category}
	}
	items, err := s.services.Items.Match(ctx, req)
	if err != nil {
		return nil, s.failure(ctx, "matchItems", err)
	}
	return &ItemsOutput{Body: items}, nil
}

func (s *Server) handleRateItem(ctx context.Context, input *RateItemInput) (*RatingOutput, error) {
	result, err := s.services.Items.Rate(ctx, input.ItemID, input.Body.Rating)
	if err != nil {
		return nil, s.failure(ctx, "rateItem", err)
	}
	return &RatingOutput{Body: RatingResponse{
		Success: true,
		Avg:     result.Avg,
		Count:   result.Count,
	}}, nil
}
