package validation_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/edinacircular/circular-server/internal/errors"
	"github.com/edinacircular/circular-server/internal/validation"
)

type testRequest struct {
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"notblank"`
	Type   string `json:"type" validate:"oneof=lend give"`
	Rating int    `json:"rating" validate:"gte=1,lte=5"`
}

func validRequest() testRequest {
	return testRequest{Email: "a@x.com", Name: "A", Type: "lend", Rating: 3}
}

func TestValidator_ValidateSuccess(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Validate(validRequest()))
}

func TestValidator_ValidateErrors(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name      string
		mutate    func(r *testRequest)
		wantField string
		wantMsg   string
	}{
		{"missing email", func(r *testRequest) { r.Email = "" }, "email", "is required"},
		{"malformed email", func(r *testRequest) { r.Email = "nope" }, "email", "must be a valid email address"},
		{"blank name", func(r *testRequest) { r.Name = "   " }, "name", "is required"},
		{"unknown type", func(r *testRequest) { r.Type = "sell" }, "type", "must be one of: lend give"},
		{"rating too low", func(r *testRequest) { r.Rating = 0 }, "rating", "must be greater than or equal to 1"},
		{"rating too high", func(r *testRequest) { r.Rating = 6 }, "rating", "must be less than or equal to 5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(req)
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus())
			assert.Contains(t, domainErr.Message, tt.wantField)

			details, ok := domainErr.Details.(map[string]string)
			require.True(t, ok)
			assert.Equal(t, tt.wantMsg, details[tt.wantField])
		})
	}
}

func TestValidator_JSONFieldNames(t *testing.T) {
	v := validation.New()
	req := validRequest()
	req.Email = ""

	err := v.Validate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.NotContains(t, err.Error(), "Email")
}
