package accounts

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"gmao/pkg/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is reported with every issued token.
const TokenType = "bearer"

var errEmptyPrivateKey = errors.New("empty private key")

// TokenIssuer signs RS256 bearer tokens.
type TokenIssuer struct {
	key *rsa.PrivateKey
	now func() time.Time
}

// NewTokenIssuer parses a PEM encoded RSA private key.
func NewTokenIssuer(privateKeyPEM string) (*TokenIssuer, error) {
	if privateKeyPEM == "" {
		return nil, errEmptyPrivateKey
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA private key: %w", err)
	}

	return &TokenIssuer{key: key, now: time.Now}, nil
}

// Issue signs a token for subject valid for ttl.
func (i *TokenIssuer) Issue(subject string, ttl time.Duration) (*domain.Token, error) {
	now := i.now()
	expiresAt := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.key)
	if err != nil {
		return nil, fmt.Errorf("could not sign JWT: %w", err)
	}

	return &domain.Token{
		AccessToken: signed,
		TokenType:   TokenType,
		ExpiresAt:   expiresAt.Truncate(time.Second),
	}, nil
}
