package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"gmao/internal/api/specs/v1specs"
	"gmao/internal/config"
	"gmao/pkg/domain"
	"gmao/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

// UserIDKey holds the domain.UserID of the authenticated caller.
const UserIDKey contextKey = "userID"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler verifies RS256 bearer tokens and stores their subject in the
// request context.
type SecHandler struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewSecHandler(options *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(options.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse jwt public key: %w", err)
	}

	return &SecHandler{
		publicKey: key,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

func (s SecHandler) HandleBearerAuth(
	ctx context.Context,
	_ v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	})
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(id)), nil
}

// GetUserIDFromContext returns the authenticated user, or the zero ID on
// unauthenticated operations.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	id, _ := ctx.Value(UserIDKey).(domain.UserID)

	return id
}
