package store

import (
	"fmt"

	domainerrors "github.com/edinacircular/circular-server/internal/errors"
)

func itemNotFound(id string) error {
	return domainerrors.NotFoundf("item %s not found", id)
}

func requestNotFound(id string) error {
	return domainerrors.NotFoundf("request %s not found", id)
}

func userNotFound(key string) error {
	return domainerrors.NotFoundf("user %s not found", key)
}

func emailTaken(email string) error {
	return domainerrors.Conflictf("email %s is already registered", email)
}

func invalidRating(r int) error {
	return domainerrors.ValidationWithDetails(
		fmt.Sprintf("rating %d is out of range", r),
		map[string]string{"rating": "must be an integer from 1 to 5"},
	)
}
