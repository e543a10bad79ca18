package jwt

import (
	"errors"
	"fmt"

	"search-srv/pkg/scope"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretTooShort = fmt.Errorf("jwt: secret key must be at least %d characters", MinSecretKeyLen)
	ErrInvalidToken   = errors.New("jwt: invalid token")
)

// New creates a new verifier.
func New(cfg Config) (*Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretTooShort
	}
	return &Manager{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
	}, nil
}

// Verify implements scope.Manager.
func (m *Manager) Verify(tokenString string) (scope.Payload, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}
	if len(m.audience) > 0 {
		opts = append(opts, jwt.WithAudience(m.audience[0]))
	}

	var payload scope.Payload
	token, err := jwt.ParseWithClaims(tokenString, &payload, func(*jwt.Token) (any, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return scope.Payload{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return scope.Payload{}, ErrInvalidToken
	}
	return payload, nil
}
