package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinacircular/circular-server/internal/config"
	"github.com/edinacircular/circular-server/internal/domain"
)

func configAuth(perMinute, burst int) config.AuthConfig {
	return config.AuthConfig{RateLimit: perMinute, RateBurst: burst}
}

func TestVolunteers(t *testing.T) {
	ts := setupTestServer(t, testConfig())

	resp := ts.api.Post("/volunteers", map[string]any{
		"name":      "Lee",
		"email":     "lee@example.com",
		"phone":     "555-0101",
		"interests": "repair cafe",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	v := decode[domain.Volunteer](t, resp)
	assert.NotEmpty(t, v.ID)
	assert.False(t, v.CreatedAt.IsZero())

	resp = ts.api.Get("/volunteers")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]domain.Volunteer](t, resp), 1)

	resp = ts.api.Post("/volunteers", map[string]any{"name": "Lee"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDonations(t *testing.T) {
	ts := setupTestServer(t, testConfig())

	resp := ts.api.Post("/donations", map[string]any{
		"name":      "Kim",
		"email":     "kim@example.com",
		"item":      "Ladder",
		"condition": "good",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = ts.api.Get("/donations")
	require.Equal(t, http.StatusOK, resp.Code)
	donations := decode[[]domain.Donation](t, resp)
	require.Len(t, donations, 1)
	assert.Equal(t, "Ladder", donations[0].Item)

	resp = ts.api.Post("/donations", map[string]any{"name": "Kim", "email": "bad"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestMetrics(t *testing.T) {
	ts := setupTestServer(t, testConfig())

	createItem(t, ts, validItem("Power Drill", "Tools"))
	give := validItem("Sofa", "Furniture")
	give["type"] = "give"
	createItem(t, ts, give)

	require.Equal(t, http.StatusCreated, ts.api.Post("/requests", validRequest("drill", "tools")).Code)
	require.Equal(t, http.StatusCreated, ts.api.Post("/requests", validRequest("kayak", "outdoors")).Code)

	resp := ts.api.Get("/metrics")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, domain.Metrics{
		TotalItems:      2,
		LendItems:       1,
		GiveItems:       1,
		Requests:        2,
		MatchedRequests: 1,
	}, decode[domain.Metrics](t, resp))
}
