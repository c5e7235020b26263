package accounts

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"gmao/internal/config"
	"gmao/pkg/domain"
	"gmao/pkg/logger"
	"gmao/pkg/serrors"
	"gmao/pkg/storage"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Options configure registration and login.
type Options struct {
	// ManagerKey grants the manager role on registration. Empty disables it.
	ManagerKey string
	// TechnicianKey grants the technician role on registration. Empty disables it.
	TechnicianKey string
	// BcryptCost is the password hashing work factor. Defaults to bcrypt.DefaultCost.
	BcryptCost int
	// TokenTTL is the lifetime of tokens issued on login.
	TokenTTL time.Duration
	// Now returns the current time. Defaults to time.Now in UTC.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ManagerKey:    cfg.Registration.ManagerKey,
		TechnicianKey: cfg.Registration.TechnicianKey,
		BcryptCost:    cfg.Security.BcryptCost,
		TokenTTL:      cfg.JWT.TokenTTL,
	}
}

type accounts struct {
	options Options
	storage storage.Storage
	issuer  *TokenIssuer
}

// Register creates a user whose role is picked by the registration key.
func (a accounts) Register(ctx context.Context, user domain.NewUser) (*domain.User, error) {
	role, ok := a.roleFor(user.RegistrationKey)
	if !ok {
		return nil, serrors.With(serrors.ErrForbidden, "invalid registration key")
	}

	if strings.TrimSpace(user.Name) == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	}
	addr, err := mail.ParseAddress(user.Email)
	if err != nil || addr.Address != user.Email {
		return nil, serrors.With(serrors.ErrBadRequest, "invalid email")
	}
	if user.Password == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.options.BcryptCost)
	if err != nil {
		// passwords above 72 bytes are rejected by bcrypt
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "password is too long")
		}

		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	created, err := a.storage.CreateUser(ctx, domain.User{
		Name:         user.Name,
		Email:        user.Email,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    a.options.Now(),
	})
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return nil, serrors.Wrap(serrors.ErrConflict, err, "email already registered")
	case err != nil:
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	logger.Info(ctx, "user registered", zap.Stringer("user_id", created.ID), zap.String("role", string(role)))

	return created, nil
}

func (a accounts) roleFor(key string) (domain.UserRole, bool) {
	switch {
	case keyMatches(a.options.ManagerKey, key):
		return domain.UserRoleManager, true
	case keyMatches(a.options.TechnicianKey, key):
		return domain.UserRoleTechnician, true
	default:
		return "", false
	}
}

// keyMatches compares in constant time. An unset key never matches.
func keyMatches(configured, given string) bool {
	if configured == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(configured), []byte(given)) == 1
}

// Login checks credentials and issues a bearer token. Unknown emails and
// wrong passwords are reported identically.
func (a accounts) Login(ctx context.Context, email, password string) (*domain.Token, error) {
	user, err := a.storage.UserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrForbidden, "invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, serrors.Wrap(serrors.ErrForbidden, err, "invalid credentials")
	}

	token, err := a.issuer.Issue(user.ID.String(), a.options.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return token, nil
}

// Me resolves the authenticated user.
func (a accounts) Me(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "user no longer exists")
	}

	return user, nil
}

// New creates an Accounts service backed by storage, signing tokens with issuer.
func New(storage storage.Storage, issuer *TokenIssuer, options Options) Accounts {
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	if options.Now == nil {
		options.Now = func() time.Time { return time.Now().UTC() }
	}

	return &accounts{
		options: options,
		storage: storage,
		issuer:  issuer,
	}
}
