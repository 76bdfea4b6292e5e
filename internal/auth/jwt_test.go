package auth

import (
	"testing"
	"time"

	"gramseva/config"
	"gramseva/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret: "unit-test-secret-unit-test-secret",
		Expiry: time.Hour,
		Issuer: "gramseva-test",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	token, err := GenerateToken(cfg, 42, "staff@example.org", domain.RoleStaff)
	require.NoError(t, err)

	claims, err := ParseToken(cfg, token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "staff@example.org", claims.Email)
	assert.Equal(t, domain.RoleStaff, claims.Role)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateToken(cfg, 1, "staff@example.org", domain.RoleStaff)
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "a-different-secret-a-different-secret"
	_, err = ParseToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Expiry = -time.Minute
	token, err := GenerateToken(cfg, 1, "staff@example.org", domain.RoleStaff)
	require.NoError(t, err)

	_, err = ParseToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := ParseToken(testJWTConfig(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
