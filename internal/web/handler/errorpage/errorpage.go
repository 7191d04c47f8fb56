// Package errorpage renders the generic status pages and serves as the fiber error handler.
package errorpage

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/user135711/Blogifier/internal/web/handler"
	"github.com/user135711/Blogifier/internal/web/navigation"
)

const (
	// Path is the base path of the status pages.
	Path = "/error"

	// TemplateName is the name of the status page template.
	TemplateName = "error/status"
)

var messages = map[int]string{ //nolint:gochecknoglobals
	fiber.StatusUnauthorized:        "Please sign in to continue.",
	fiber.StatusForbidden:           "You are not allowed to access this page.",
	fiber.StatusNotFound:            "The page you are looking for does not exist.",
	fiber.StatusInternalServerError: "Something went wrong, please try again later.",
	fiber.StatusServiceUnavailable:  "The service is shutting down.",
}

// Service is the status page handler service.
type Service struct{}

// Handler is the status page handler.
var Handler = Service{}

// Init registers the status page route.
func (s *Service) Init(app *fiber.App) {
	if app == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)

		return
	}

	app.Get(Path+"/:code", s.Get)
}

// Get renders the status page for the code in the path, unknown codes render 404.
func (s *Service) Get(c *fiber.Ctx) error {
	code, err := c.ParamsInt("code")
	if _, known := messages[code]; err != nil || !known {
		code = fiber.StatusNotFound
	}

	return render(c, code)
}

// ErrorHandler renders returned handler errors as status pages.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	if _, known := messages[code]; !known {
		return c.Status(code).SendString(err.Error())
	}

	if renderErr := render(c, code); renderErr != nil {
		log.Error().Err(renderErr).Msg("failed to render error page")

		return c.Status(code).SendString(messages[code])
	}

	return nil
}

func render(c *fiber.Ctx, code int) error {
	nav := navigation.NewContext("Error", "", "").
		AddBreadcrumb("Error", "#", true)

	return c.Status(code).Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Code":       code,
		"Message":    messages[code],
	}, handler.BaseLayout)
}
