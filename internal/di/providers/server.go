package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/edinacircular/circular-server/internal/api"
	"github.com/edinacircular/circular-server/internal/config"
	"github.com/edinacircular/circular-server/internal/logger"
	"github.com/edinacircular/circular-server/internal/service"
)

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
	handler *api.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	defer h.handler.Close()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server and starts serving.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	services := &api.Services{
		Items:    do.MustInvoke[*service.ItemService](i),
		Requests: do.MustInvoke[*service.RequestService](i),
		Users:    do.MustInvoke[*service.UserService](i),
		Outreach: do.MustInvoke[*service.OutreachService](i),
		Metrics:  do.MustInvoke[*service.MetricsService](i),
	}

	handler := api.NewServer(storeHandle.Store, services, cfg, log.Logger)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Listen before returning so a busy port fails startup.
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		handler.Close()
		return nil, fmt.Errorf("listen on %s: %w", srv.Addr, err)
	}

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("HTTP server error", "error", err)
		}
	}()

	log.Info("Server running", "addr", ln.Addr().String())

	return &HTTPServerHandle{Server: srv, handler: handler}, nil
}
