package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tokenStr, err := GenerateJWT("user-1", "admin@school.test", "ADMIN")
	require.NoError(t, err)

	claims, err := ParseJWT(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@school.test", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, tokenIssuer, claims.Issuer)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseJWTRejectsBadTokens(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("empty token", func(t *testing.T) {
		_, err := ParseJWT("")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tokenStr, err := GenerateJWT("user-1", "a@b.test", "ADMIN")
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "another-secret")
		_, err = ParseJWT(tokenStr)
		assert.Error(t, err)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		claims := JWTClaims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ParseJWT(tokenStr)
		assert.Error(t, err)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		claims := JWTClaims{
			UserID: "user-1",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = ParseJWT(tokenStr)
		assert.Error(t, err)
	})
}
