package providers

import (
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/edinacircular/circular-server/internal/config"
	"github.com/edinacircular/circular-server/internal/logger"
	"github.com/edinacircular/circular-server/internal/store"
	"github.com/edinacircular/circular-server/internal/store/sqlite"
)

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// OpenBackend opens the document backend named by driver at path.
func OpenBackend(driver, path string) (store.Backend, error) {
	switch driver {
	case config.DriverFile, "":
		return store.NewFileBackend(path)
	case config.DriverBadger:
		return store.NewBadgerBackend(path)
	case config.DriverSQLite:
		return sqlite.Open(path)
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

// ProvideStore provides the document store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	backend, err := OpenBackend(cfg.Store.Driver, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}

	log.Info("Store initialized", "driver", backend.Name(), "path", cfg.Store.Path)

	return &StoreHandle{Store: store.New(backend, log.Logger)}, nil
}

// ProvideSlogLogger provides access to the underlying slog.Logger for packages that need it.
func ProvideSlogLogger(i do.Injector) (*slog.Logger, error) {
	log := do.MustInvoke[*logger.Logger](i)
	return log.Logger, nil
}
