package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionTokenManager signs and validates the session cookie. The cookie value
// is a JWT carrying the user id plus an opaque session id; the session id hash
// is persisted so logout can revoke the token before it expires.
type SessionTokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionTokenManager(secret string, ttl time.Duration) *SessionTokenManager {
	return &SessionTokenManager{secret: []byte(secret), ttl: ttl}
}

// SessionClaims represents the JWT custom claims for a browser session
type SessionClaims struct {
	UserID    uint   `json:"user_id"`
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSessionID generates a cryptographically random opaque session id
func NewSessionID() string {
	return uuid.New().String()
}

// Generate signs a session token for the given user and session id
func (m *SessionTokenManager) Generate(userID uint, sessionID string) (string, error) {
	claims := SessionClaims{
		UserID:    userID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses a session token and returns its claims
func (m *SessionTokenManager) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// TTL returns the configured session lifetime
func (m *SessionTokenManager) TTL() time.Duration {
	return m.ttl
}

// HashSessionID creates a SHA-256 hash of the session id for storage
func HashSessionID(sessionID string) string {
	hash := sha256.Sum256([]byte(sessionID))
	return hex.EncodeToString(hash[:])
}
