package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := CreateToken(userID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_Garbage(t *testing.T) {
	claims, err := ValidateToken("not.a.token")
	if err == nil {
		assert.Nil(t, claims)
	}
}

func TestAgentKeyHashing(t *testing.T) {
	hash, err := HashAgentKey("agent-key-123")
	require.NoError(t, err)
	require.NotEqual(t, "agent-key-123", hash)

	assert.NoError(t, CompareAgentKey(hash, "agent-key-123"))
	assert.Error(t, CompareAgentKey(hash, "wrong-key"))
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 64) // hex doubles the byte length

	other, err := GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, other)

	_, err = GenerateSecureToken(0)
	assert.Error(t, err)
}
