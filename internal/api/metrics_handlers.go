package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/edinacircular/circular-server/internal/domain"
)

func (s *Server) registerMetricsRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getMetrics",
		Method:      http.MethodGet,
		Path:        "/metrics",
		Summary:     "Marketplace metrics",
		Description: "Counts items by type, requests, and requests with at least one matching item",
		Tags:        []string{"Metrics"},
	}, s.handleGetMetrics)
}

// MetricsOutput wraps domain.Metrics for Huma.
type MetricsOutput struct {
	Body *domain.Metrics
}

func (s *Server) handleGetMetrics(ctx context.Context, _ *struct{}) (*MetricsOutput, error) {
	m, err := s.services.Metrics.Compute(ctx)
	if err != nil {
		return nil, s.failure(ctx, "getMetrics", err)
	}
	return &MetricsOutput{Body: m}, nil
}
