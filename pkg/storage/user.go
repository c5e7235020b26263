package storage

import (
	"context"
	"gmao/pkg/domain"
)

type UserStorage interface {
	// CreateUser persists a user and returns it with its generated id and
	// creation time. A taken email yields ErrDuplicate.
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByEmail returns nil when no user has the given email.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}
