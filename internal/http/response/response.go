// Package response writes JSON bodies from plain net/http handlers and
// middleware that run outside huma, such as the rate limiter and the router's
// not-found handler. Error bodies have the same shape huma operations produce.
package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	domainerrors "github.com/edinacircular/circular-server/internal/errors"
)

// JSON writes data as a JSON body with the given status code.
func JSON(w http.ResponseWriter, status int, data any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		if logger != nil {
			logger.Error("Failed to encode JSON response", "error", err)
		}
	}
}

// Error writes a coded error body. The status comes from the error code.
func Error(w http.ResponseWriter, err *domainerrors.Error, logger *slog.Logger) {
	JSON(w, err.HTTPStatus(), err, logger)
}

// NotFound writes a 404 response.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, domainerrors.NotFound(message), logger)
}

// MethodNotAllowed writes a 405 response.
func MethodNotAllowed(w http.ResponseWriter, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusMethodNotAllowed)
	body := domainerrors.Error{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"}
	if err := json.NewEncoder(w).Encode(&body); err != nil && logger != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// TooManyRequests writes a 429 response.
func TooManyRequests(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, &domainerrors.Error{Code: domainerrors.CodeRateLimited, Message: message}, logger)
}

// InternalError writes a 500 response.
func InternalError(w http.ResponseWriter, message string, logger *slog.Logger) {
	Error(w, domainerrors.Internal(message), logger)
}

// HandleError writes the response matching err. Domain errors keep their code;
// anything else is logged and reported as a generic 500.
func HandleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var domainErr *domainerrors.Error
	if errors.As(err, &domainErr) {
		Error(w, domainErr, logger)
		return
	}

	if logger != nil {
		logger.Error("Unhandled error", "error", err)
	}
	InternalError(w, "internal server error", logger)
}
