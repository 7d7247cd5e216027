package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := NewSessionTokenManager("test-secret", time.Hour)

	sessionID := NewSessionID()
	token, err := manager.Generate(42, sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	manager := NewSessionTokenManager("test-secret", time.Hour)
	other := NewSessionTokenManager("another-secret", time.Hour)

	token, err := manager.Generate(1, NewSessionID())
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestSessionTokenExpired(t *testing.T) {
	manager := NewSessionTokenManager("test-secret", -time.Minute)

	token, err := manager.Generate(1, NewSessionID())
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.Error(t, err)
}

func TestSessionTokenGarbage(t *testing.T) {
	manager := NewSessionTokenManager("test-secret", time.Hour)

	_, err := manager.Validate("not-a-token")
	assert.Error(t, err)
}

func TestHashSessionID(t *testing.T) {
	first := HashSessionID("session-a")
	second := HashSessionID("session-a")
	third := HashSessionID("session-b")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, third)
	assert.Len(t, first, 64) // hex-encoded SHA-256
}
