package service

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edinacircular/circular-server/internal/auth"
	"github.com/edinacircular/circular-server/internal/store"
	"github.com/edinacircular/circular-server/internal/validation"
)

type testServices struct {
	store    *store.Store
	items    *ItemService
	requests *RequestService
	users    *UserService
	outreach *OutreachService
	metrics  *MetricsService
}

// newTestServices wires every service onto a fresh file-backed store.
func newTestServices(t *testing.T) *testServices {
	t.Helper()

	backend, err := store.NewFileBackend(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)

	logger := slog.New(slog.DiscardHandler)
	s := store.New(backend, logger)
	t.Cleanup(func() { _ = s.Close() })

	v := validation.New()
	hasher := auth.NewHasher(auth.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})

	return &testServices{
		store:    s,
		items:    NewItemService(s, v, logger),
		requests: NewRequestService(s, v, logger),
		users:    NewUserService(s, hasher, v, logger),
		outreach: NewOutreachService(s, v, logger),
		metrics:  NewMetricsService(s),
	}
}
