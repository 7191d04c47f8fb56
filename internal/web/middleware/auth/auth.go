package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/user135711/Blogifier/internal/db/models"
	"github.com/user135711/Blogifier/internal/web/session"
)

// LocalsKey is the fiber.Locals key of the Principal, templates read it as .Principal.
const LocalsKey = "Principal"

const defaultLoginURL = "/error/401"

// publicPrefixes are served without a session.
var publicPrefixes = []string{"/static", "/checkalive", "/metrics", "/error"} //nolint:gochecknoglobals

// AuthorLookup loads the author a session belongs to.
type AuthorLookup interface {
	GetByUserName(ctx context.Context, userName string) (*models.Author, error)
}

// Principal is the signed in author of a request.
type Principal struct {
	Author *models.Author
}

// UserName of the signed in author.
func (p *Principal) UserName() string {
	if p == nil || p.Author == nil {
		return ""
	}

	return p.Author.UserName
}

// IsAdmin reports whether the author may change application settings.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Author != nil && p.Author.IsAdmin
}

// Config of the middleware.
type Config struct {
	Authors  AuthorLookup
	LoginURL string
}

// New returns the principal middleware.
func New(cfg Config) fiber.Handler {
	if cfg.LoginURL == "" {
		cfg.LoginURL = defaultLoginURL
	}

	return func(c *fiber.Ctx) error {
		if IsPublic(c) {
			return c.Next()
		}

		sessData := new(session.Data)
		if err := sessData.Read(c.Cookies(session.CookieName)); err != nil {
			if errors.Is(err, session.ErrNoSession) {
				return c.Redirect(cfg.LoginURL)
			}

			log.Error().Err(err).Msg("failed to read session")

			return fmt.Errorf("read session: %w", err)
		}

		if sessData.UserName == "" {
			return c.Redirect(cfg.LoginURL)
		}

		author, err := cfg.Authors.GetByUserName(c.UserContext(), sessData.UserName)
		if err != nil {
			log.Error().Err(err).Str("user", sessData.UserName).Msg("session without author")

			return fmt.Errorf("resolve principal %s: %w", sessData.UserName, err)
		}

		c.Locals(LocalsKey, &Principal{Author: author})

		return c.Next()
	}
}

// FromContext returns the principal of the request, nil on public routes.
func FromContext(c *fiber.Ctx) *Principal {
	p, _ := c.Locals(LocalsKey).(*Principal)

	return p
}

// UserName returns the signed in user name or "", used by the access log.
func UserName(c *fiber.Ctx) string {
	return FromContext(c).UserName()
}

// IsPublic checks if the request targets a route served without a session.
func IsPublic(c *fiber.Ctx) bool {
	p := strings.ToLower(c.Path())

	for _, prefix := range publicPrefixes {
		if p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}

	return false
}
