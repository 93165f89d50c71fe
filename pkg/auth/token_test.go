package auth

import (
	"testing"
	"time"

	"go-gin-checkout/config"
	"go-gin-checkout/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret: "secret",
		Issuer:    "go-gin-checkout-test",
		TokenTTL:  time.Hour,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testAuthConfig()
	user := &model.User{ID: 7, CartID: 3, Role: model.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		token, err := MintAccessToken(cfg, time.Now(), user)
		require.NoError(t, err)

		claims, err := ParseAccessToken(cfg, token)
		require.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, 3, claims.CartID)
		assert.True(t, claims.IsAdmin())
		assert.Equal(t, "7", claims.Subject)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("Failed - Expired", func(t *testing.T) {
		token, err := MintAccessToken(cfg, time.Now().Add(-2*time.Hour), user)
		require.NoError(t, err)

		_, err = ParseAccessToken(cfg, token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Failed - Wrong secret", func(t *testing.T) {
		token, err := MintAccessToken(cfg, time.Now(), user)
		require.NoError(t, err)

		other := cfg
		other.JWTSecret = "other"
		_, err = ParseAccessToken(other, token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("Failed - Wrong issuer", func(t *testing.T) {
		token, err := MintAccessToken(cfg, time.Now(), user)
		require.NoError(t, err)

		other := cfg
		other.Issuer = "someone-else"
		_, err = ParseAccessToken(other, token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("Failed - Unexpected signing method", func(t *testing.T) {
		claims := Claims{UserID: 7, Role: model.RoleUser, RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(cfg.JWTSecret))
		require.NoError(t, err)

		_, err = ParseAccessToken(cfg, token)
		assert.Error(t, err)
	})

	t.Run("Failed - Invalid role", func(t *testing.T) {
		_, err := MintAccessToken(cfg, time.Now(), &model.User{ID: 1, Role: "root"})
		assert.Error(t, err)
	})

	t.Run("Failed - Missing secret", func(t *testing.T) {
		_, err := MintAccessToken(config.AuthConfig{TokenTTL: time.Hour}, time.Now(), user)
		assert.Error(t, err)

		_, err = ParseAccessToken(config.AuthConfig{}, "token")
		assert.Error(t, err)
	})
}
