package providers

import (
	"github.com/samber/do/v2"

	"github.com/edinacircular/circular-server/internal/auth"
	"github.com/edinacircular/circular-server/internal/validation"
)

// ProvideHasher provides the password hasher.
func ProvideHasher(i do.Injector) (*auth.Hasher, error) {
	return auth.NewHasher(auth.DefaultParams), nil
}

// ProvideValidator provides the request validator shared by all services.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}
