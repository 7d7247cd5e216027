package utils

import (
	"encoding/base64"

	"github.com/gin-gonic/gin"
)

// Flash messages survive exactly one redirect via a short-lived cookie.
// Base64 keeps arbitrary text (including accents) cookie-safe.

const flashCookie = "flash"

// SetFlash stores a one-shot message for the next rendered page
func SetFlash(c *gin.Context, message string) {
	encoded := base64.URLEncoding.EncodeToString([]byte(message))
	c.SetCookie(flashCookie, encoded, 60, "/", "", false, true)
}

// TakeFlash returns the pending message, if any, and clears it
func TakeFlash(c *gin.Context) string {
	encoded, err := c.Cookie(flashCookie)
	if err != nil || encoded == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	message, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return ""
	}
	return string(message)
}
