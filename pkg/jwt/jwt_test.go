package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestNew_RejectsShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.ErrorIs(t, err, ErrSecretTooShort)
}

func TestVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "mundo-auth", Audience: []string{"search-srv"}})
	require.NoError(t, err)

	valid := func() jwt.MapClaims {
		return jwt.MapClaims{
			"sub":      "42",
			"username": "tatiana",
			"role":     "USER",
			"iss":      "mundo-auth",
			"aud":      []string{"search-srv"},
			"exp":      time.Now().Add(time.Hour).Unix(),
		}
	}

	t.Run("valid token", func(t *testing.T) {
		p, err := m.Verify(sign(t, testSecret, valid()))
		require.NoError(t, err)
		assert.Equal(t, "42", p.Subject)
		assert.Equal(t, "tatiana", p.Username)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := m.Verify(sign(t, "ffffffffffffffffffffffffffffffff", valid()))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		c := valid()
		c["exp"] = time.Now().Add(-time.Minute).Unix()
		_, err := m.Verify(sign(t, testSecret, c))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := valid()
		c["iss"] = "someone-else"
		_, err := m.Verify(sign(t, testSecret, c))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
