package providers

import (
	"github.com/samber/do/v2"

	"github.com/edinacircular/circular-server/internal/auth"
	"github.com/edinacircular/circular-server/internal/logger"
	"github.com/edinacircular/circular-server/internal/service"
	"github.com/edinacircular/circular-server/internal/validation"
)

// ProvideItemService provides the item service.
func ProvideItemService(i do.Injector) (*service.ItemService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewItemService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideRequestService provides the request service.
func ProvideRequestService(i do.Injector) (*service.RequestService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRequestService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideUserService provides the account service.
func ProvideUserService(i do.Injector) (*service.UserService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	hasher := do.MustInvoke[*auth.Hasher](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewUserService(storeHandle.Store, hasher, validator, log.Logger), nil
}

// ProvideOutreachService provides the volunteer and donation service.
func ProvideOutreachService(i do.Injector) (*service.OutreachService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	validator := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewOutreachService(storeHandle.Store, validator, log.Logger), nil
}

// ProvideMetricsService provides the metrics service.
func ProvideMetricsService(i do.Injector) (*service.MetricsService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	return service.NewMetricsService(storeHandle.Store), nil
}
