package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/service"
)

func (s *Server) registerRequestRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listRequests",
		Method:      http.MethodGet,
		Path:        "/requests",
		Summary:     "List requests",
		Tags:        []string{"Requests"},
	}, s.handleListRequests)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createRequest",
		Method:        http.MethodPost,
		Path:          "/requests",
		Summary:       "Create request",
		Description:   "Posts a request for an item someone needs",
		Tags:          []string{"Requests"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateRequest)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteRequest",
		Method:      http.MethodDelete,
		Path:        "/requests/{id}",
		Summary:     "Delete request",
		Description: "Removes a request. success is false when no request has the id.",
		Tags:        []string{"Requests"},
	}, s.handleDeleteRequest)

	huma.Register(s.api, huma.Operation{
		OperationID: "requestMatches",
		Method:      http.MethodGet,
		Path:        "/requests/{id}/matches",
		Summary:     "Items matching a request",
		Description: "Returns items whose name overlaps the request name or whose category equals the request category",
		Tags:        []string{"Requests"},
	}, s.handleRequestMatches)
}

// RequestsOutput wraps a list of requests.
type RequestsOutput struct {
	Body []domain.Request
}

// RequestOutput wraps a single request.
type RequestOutput struct {
	Body *domain.Request
}

// RequestPathInput addresses one request.
type RequestPathInput struct {
	ID string `path:"id" doc:"Request ID"`
}

// CreateRequestBody is the request body for a new request.
type CreateRequestBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Name        string   `json:"name,omitempty" doc:"What is needed"`
	Category    string   `json:"category,omitempty" doc:"Category"`
	Duration    string   `json:"duration,omitempty" doc:"How long it is needed"`
	Description string   `json:"description,omitempty" doc:"Details"`
}

// CreateRequestInput wraps CreateRequestBody for Huma.
type CreateRequestInput struct {
	Body CreateRequestBody
}

func (s *Server) handleListRequests(ctx context.Context, _ *struct{}) (*RequestsOutput, error) {
	requests, err := s.services.Requests.List(ctx)
	if err != nil {
		return nil, s.failure(ctx, "listRequests", err)
	}
	return &RequestsOutput{Body: requests}, nil
}

func (s *Server) handleCreateRequest(ctx context.Context, input *CreateRequestInput) (*RequestOutput, error) {
	req, err := s.services.Requests.Create(ctx, service.CreateRequestRequest{
		Name:        input.Body.Name,
		Category:    input.Body.Category,
		Duration:    input.Body.Duration,
		Description: input.Body.Description,
	})
	if err != nil {
		return nil, s.failure(ctx, "createRequest", err)
	}
	return &RequestOutput{Body: req}, nil
}

func (s *Server) handleDeleteRequest(ctx context.Context, input *RequestPathInput) (*SuccessOutput, error) {
	removed, err := s.services.Requests.Delete(ctx, input.ID)
	if err != nil {
		return nil, s.failure(ctx, "deleteRequest", err)
	}
	return &SuccessOutput{Body: SuccessResponse{Success: removed}}, nil
}

func (s *Server) handleRequestMatches(ctx context.Context, input *RequestPathInput) (*ItemsOutput, error) {
	items, err := s.services.Requests.Matches(ctx, input.ID)
	if err != nil {
		return nil, s.failure(ctx, "requestMatches", err)
	}
	return &ItemsOutput{Body: items}, nil
}
