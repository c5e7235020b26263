package v1handler

import (
	"context"
	"fmt"
	"gmao/internal/api/specs/v1specs"
	"gmao/pkg/domain"

	"github.com/google/uuid"
)

func DomainUserToV1Specs(in *domain.User) *v1specs.User {
	return &v1specs.User{
		ID:        uuid.UUID(in.ID),
		Name:      in.Name,
		Email:     in.Email,
		Role:      v1specs.UserRole(in.Role),
		CreatedAt: in.CreatedAt,
	}
}

// RegisterUser creates an account with the role granted by the registration key.
func (h Handler) RegisterUser(ctx context.Context, req *v1specs.RegisterRequest) (*v1specs.User, error) {
	u, err := h.deps.Accounts.Register(ctx, domain.NewUser{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		RegistrationKey: req.RegistrationKey,
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainUserToV1Specs(u), nil
}

// LoginUser issues a bearer token. The form variant carries the email in username.
func (h Handler) LoginUser(ctx context.Context, req v1specs.LoginUserReq) (*v1specs.Token, error) {
	var email, password string
	switch r := req.(type) {
	case *v1specs.LoginRequest:
		email, password = r.Email, r.Password
	case *v1specs.LoginForm:
		email, password = r.Username, r.Password
	default:
		return nil, fmt.Errorf("unexpected login request %T", req)
	}

	t, err := h.deps.Accounts.Login(ctx, email, password)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &v1specs.Token{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		ExpiresAt:   t.ExpiresAt,
	}, nil
}

// GetCurrentUser returns the authenticated user.
func (h Handler) GetCurrentUser(ctx context.Context) (*v1specs.User, error) {
	u, err := h.deps.Accounts.Me(ctx, GetUserIDFromContext(ctx))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return DomainUserToV1Specs(u), nil
}
