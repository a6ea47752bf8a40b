package api

import "github.com/edinacircular/circular-server/internal/service"

// Services groups the business logic used by the API server.
type Services struct {
	Items    *service.ItemService
	Requests *service.RequestService
	Users    *service.UserService
	Outreach *service.OutreachService
	Metrics  *service.MetricsService
}
