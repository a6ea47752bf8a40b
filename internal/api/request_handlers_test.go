package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edinacircular/circular-server/internal/domain"
)

func validRequest(name, category string) map[string]any {
	return map[string]any{
		"name":        name,
		"category":    category,
		"duration":    "1 week",
		"description": "Building shelves",
	}
}

func TestRequests_Lifecycle(t *testing.T) {
	ts := setupTestServer(t, testConfig())

	resp := ts.api.Post("/requests", validRequest("drill", "tools"))
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	req := decode[domain.Request](t, resp)
	assert.NotEmpty(t, req.ID)

	resp = ts.api.Get("/requests")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, decode[[]domain.Request](t, resp), 1)

	resp = ts.api.Delete("/requests/" + req.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":true}`, resp.Body.String())

	resp = ts.api.Get("/requests")
	assert.JSONEq(t, "[]", resp.Body.String())

	resp = ts.api.Delete("/requests/" + req.ID)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":false}`, resp.Body.String())
}

func TestRequests_DeleteUnknownLeavesRequests(t *testing.T) {
	ts := setupTestServer(t, testConfig())

	require.Equal(t, http.StatusCreated, ts.api.Post("/requests", validRequest("drill", "tools")).Code)

	resp := ts.api.Delete("/requests/does-not-exist")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"success":false}`, resp.Body.String())

	assert.Len(t, decode[[]domain.Request](t, ts.api.Get("/requests")), 1)
}

func TestRequests_CreateInvalid(t *testing.T) {
	ts := setupTestServer(t, testConfig())

	body := validRequest("drill", "tools")
	body["duration"] = "   "
	resp := ts.api.Post("/requests", body)
	require.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "VALIDATION", decode[map[string]any](t, resp)["code"])
}

func TestRequests_Matches(t *testing.T) {
	ts := setupTestServer(t, testConfig())

	createItem(t, ts, validItem("Power Drill", "Tools"))
	createItem(t, ts, validItem("Tent", "Camping"))

	req := decode[domain.Request](t, ts.api.Post("/requests", validRequest("drill", "tools")))

	resp := ts.api.Get("/requests/" + req.ID + "/matches")
	require.Equal(t, http.StatusOK, resp.Code)
	items := decode[[]domain.Item](t, resp)
	require.Len(t, items, 1)
	assert.Equal(t, "Power Drill", items[0].Name)

	resp = ts.api.Get("/requests/missing/matches")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
