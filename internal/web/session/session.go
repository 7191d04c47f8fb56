// Package session reads the sessions written by the login flow and keeps one-shot flash messages.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/rs/zerolog/log"
)

// CookieName is the cookie holding the session id.
const CookieName = "session"

const flashPrefix = "flash:"

// ErrNoSession is returned when the session id is unknown or expired.
var ErrNoSession = errors.New("no session data")

// Store is the global session store instance.
var Store *session.Store //nolint:gochecknoglobals

// Data represents the session data structure.
type Data struct {
	UserName string
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	if sessionID == "" {
		return ErrNoSession
	}

	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	if len(byteData) == 0 {
		return ErrNoSession
	}

	return json.Unmarshal(byteData, s)
}

// Init initializes the session store, a nil storage keeps sessions in memory.
func Init(storage fiber.Storage, expiry time.Duration) {
	Store = session.New(session.Config{
		Storage:        storage,
		Expiration:     expiry,
		KeyLookup:      "cookie:" + CookieName,
		CookieHTTPOnly: true,
	})
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// SetFlash stores a message shown once on the next page of this session.
func SetFlash(c *fiber.Ctx, msg string) error {
	id := c.Cookies(CookieName)
	if id == "" {
		return ErrNoSession
	}

	return Store.Storage.Set(flashPrefix+id, []byte(msg), Store.Expiration)
}

// PopFlash returns and removes the pending flash message of this session.
func PopFlash(c *fiber.Ctx) string {
	id := c.Cookies(CookieName)
	if id == "" {
		return ""
	}

	msg, err := Store.Storage.Get(flashPrefix + id)
	if err != nil || len(msg) == 0 {
		return ""
	}

	if err = Store.Storage.Delete(flashPrefix + id); err != nil {
		log.Warn().Err(err).Msg("failed to delete flash message")
	}

	return string(msg)
}
