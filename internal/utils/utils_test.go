package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReferralCode(t *testing.T) {
	code, err := ReferralCode("Ada Okafor", 3)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^ada\d{3}$`), code)

	code, err = ReferralCode("  ", 3)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^partner\d{3}$`), code)

	code, err = ReferralCode("Bola", 6)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^bola\d{6}$`), code)
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("test-secret", "ada@example.com", RoleAffiliate, time.Hour)
	require.NoError(t, err)

	subject, role, err := ParseToken("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", subject)
	assert.Equal(t, RoleAffiliate, role)
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("test-secret", "admin", RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, _, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	token, err := GenerateToken("test-secret", "admin", RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseToken("test-secret", token)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
