package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the verified content of an access token.
type Payload struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Manager verifies tokens.
type Manager interface {
	Verify(token string) (Payload, error)
}

type scopeCtxKey struct{}
