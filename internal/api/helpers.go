package api

import (
	"context"
	"errors"

	domainerrors "github.com/edinacircular/circular-server/internal/errors"
	"github.com/edinacircular/circular-server/internal/logger"
)

// SuccessResponse is the body of operations that only report completion.
type SuccessResponse struct {
	Success bool `json:"success" doc:"Whether a record was removed"`
}

// SuccessOutput wraps SuccessResponse for Huma.
type SuccessOutput struct {
	Body SuccessResponse
}

// failure logs errors that are not domain errors before handing them to huma,
// which reports them as 500 without the cause.
func (s *Server) failure(ctx context.Context, op string, err error) error {
	var domainErr *domainerrors.Error
	if !errors.As(err, &domainErr) {
		logger.FromContext(ctx, s.logger).Error("request failed", "op", op, "error", err)
	}
	return err
}
