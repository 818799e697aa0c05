package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devlink_backend/internal/appErrors"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("test-secret", 60)

	token, err := m.Generate("u1", "user@example.com", "developer")
	require.NoError(t, err)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "developer", claims.UserType)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a", 60).Generate("u1", "user@example.com", "client")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 60).Parse(token)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	m := NewTokenManager("test-secret", -1)

	token, err := m.Generate("u1", "user@example.com", "client")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("test-secret", 60).Parse("not-a-token")
	assert.ErrorIs(t, err, appErrors.ErrInvalidToken)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery", hash)

	assert.True(t, CheckPasswordHash("correct horse battery", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.ErrorIs(t, ValidatePassword("short"), appErrors.ErrWeakPassword)
	assert.NoError(t, ValidatePassword("long enough password"))
}
