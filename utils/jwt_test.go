package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naoh-aquatics/config"
)

func init() {
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "admin@naoh.ph", "admin")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "admin@naoh.ph", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Tampered(t *testing.T) {
	token, err := GenerateToken(7, "admin@naoh.ph", "admin")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = ValidateToken("not-a-token")
	assert.Error(t, err)
}
