// Package accounts registers users, checks their credentials and issues
// bearer tokens.
package accounts

import (
	"context"
	"gmao/pkg/domain"
)

//go:generate mockgen -package mockaccounts -source=interface.go -destination=mock/mockaccounts.go *
type Accounts interface {
	Register(ctx context.Context, user domain.NewUser) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Token, error)
	Me(ctx context.Context, id domain.UserID) (*domain.User, error)
}
