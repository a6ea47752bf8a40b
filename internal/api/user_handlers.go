package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/edinacircular/circular-server/internal/domain"
	"github.com/edinacircular/circular-server/internal/service"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listUsers",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "List users",
		Description: "Returns every account without passwords",
		Tags:        []string{"Users"},
	}, s.handleListUsers)

	huma.Register(s.api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/register",
		Summary:       "Register",
		Description:   "Creates an account. Emails must be unique.",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, s.handleRegister)

	huma.Register(s.api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/login",
		Summary:     "Log in",
		Description: "Checks credentials and returns the account",
		Tags:        []string{"Users"},
	}, s.handleLogin)
}

// UsersOutput wraps a list of users.
type UsersOutput struct {
	Body []domain.User
}

// UserOutput wraps a single user.
type UserOutput struct {
	Body *domain.User
}

// RegisterBody is the request body for registration.
type RegisterBody struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Email    string   `json:"email,omitempty" doc:"Email address, used to log in"`
	Password string   `json:"password,omitempty" doc:"Password"`
	Name     string   `json:"name,omitempty" doc:"Display name"`
	Contact  string   `json:"contact,omitempty" doc:"Contact details"`
	Bio      string   `json:"bio,omitempty" doc:"Short bio"`
}

// RegisterInput wraps RegisterBody for Huma.
type RegisterInput struct {
	Body RegisterBody
}

// LoginBody is the request body for login.
type LoginBody struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Email    string   `json:"email,omitempty" doc:"Email address"`
	Password string   `json:"password,omitempty" doc:"Password"`
}

// LoginInput wraps LoginBody for Huma.
type LoginInput struct {
	Body LoginBody
}

func (s *Server) handleListUsers(ctx context.Context, _ *struct{}) (*UsersOutput, error) {
	users, err := s.services.Users.List(ctx)
	if err != nil {
		return nil, s.failure(ctx, "listUsers", err)
	}
	return &UsersOutput{Body: users}, nil
}

func (s *Server) handleRegister(ctx context.Context, input *RegisterInput) (*UserOutput, error) {
	user, err := s.services.Users.Register(ctx, service.RegisterRequest{
		Email:    input.Body.Email,
		Password: input.Body.Password,
		Name:     input.Body.Name,
		Contact:  input.Body.Contact,
		Bio:      input.Body.Bio,
	})
	if err != nil {
		return nil, s.failure(ctx, "register", err)
	}
	return &UserOutput{Body: user}, nil
}

func (s *Server) handleLogin(ctx context.Context, input *LoginInput) (*UserOutput, error) {
	user, err := s.services.Users.Login(ctx, service.LoginRequest{
		Email:    input.Body.Email,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, s.failure(ctx, "login", err)
	}
	return &UserOutput{Body: user}, nil
}
