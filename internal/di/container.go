// Package di wires the Edina Circular server together.
package di

import (
	"github.com/samber/do/v2"

	"github.com/edinacircular/circular-server/internal/auth"
	"github.com/edinacircular/circular-server/internal/config"
	"github.com/edinacircular/circular-server/internal/di/providers"
	"github.com/edinacircular/circular-server/internal/logger"
	"github.com/edinacircular/circular-server/internal/service"
	"github.com/edinacircular/circular-server/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Storage
	do.Provide(injector, providers.ProvideStore)

	// Auth and validation
	do.Provide(injector, providers.ProvideHasher)
	do.Provide(injector, providers.ProvideValidator)

	// Business services
	do.Provide(injector, providers.ProvideItemService)
	do.Provide(injector, providers.ProvideRequestService)
	do.Provide(injector, providers.ProvideUserService)
	do.Provide(injector, providers.ProvideOutreachService)
	do.Provide(injector, providers.ProvideMetricsService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes all services. Invoking the HTTP server handle starts
// listening.
func Bootstrap(injector *do.RootScope) error {
	if _, err := do.Invoke[*config.Config](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*logger.Logger](injector)

	if _, err := do.Invoke[*providers.StoreHandle](injector); err != nil {
		return err
	}
	_ = do.MustInvoke[*auth.Hasher](injector)
	_ = do.MustInvoke[*validation.Validator](injector)

	_ = do.MustInvoke[*service.ItemService](injector)
	_ = do.MustInvoke[*service.RequestService](injector)
	_ = do.MustInvoke[*service.UserService](injector)
	_ = do.MustInvoke[*service.OutreachService](injector)
	_ = do.MustInvoke[*service.MetricsService](injector)

	if _, err := do.Invoke[*providers.HTTPServerHandle](injector); err != nil {
		return err
	}

	return nil
}
