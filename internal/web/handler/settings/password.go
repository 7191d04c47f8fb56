package settings

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/user135711/Blogifier/internal/db/controller/author"
	"github.com/user135711/Blogifier/internal/web/handler"
	"github.com/user135711/Blogifier/internal/web/middleware/auth"
	"github.com/user135711/Blogifier/internal/web/navigation"
)

// Password renders the empty password form.
func (s *Service) Password(c *fiber.Ctx) error {
	return s.renderPassword(c, fiber.StatusOK, auth.FromContext(c), viewMessages{})
}

// ChangePassword changes the password of the signed in author and always renders the form again.
func (s *Service) ChangePassword(c *fiber.Ctx) error {
	p := auth.FromContext(c)

	form := new(PasswordForm)
	if err := c.BodyParser(form); err != nil {
		log.Warn().Err(err).Msg("failed to parse password form")

		return s.renderPassword(c, fiber.StatusBadRequest, p, viewMessages{Error: msgInvalidForm})
	}

	form.UserName = p.UserName()

	if err := s.validator.Struct(form); err != nil {
		return s.renderPassword(c, fiber.StatusBadRequest, p, viewMessages{Errors: validationMessages(err)})
	}

	err := s.authors.ChangePassword(c.UserContext(), author.PasswordChange{
		UserName:    form.UserName,
		OldPassword: form.OldPassword,
		NewPassword: form.NewPassword,
	})
	if err != nil {
		status, msg := s.passwordError(err)
		log.Warn().Err(err).Str("user", form.UserName).Msg("password change failed")

		return s.renderPassword(c, status, p, viewMessages{Error: msg})
	}

	log.Info().Str("user", form.UserName).Msg("password changed")

	return s.renderPassword(c, fiber.StatusOK, p, viewMessages{Message: handler.MsgUpdated})
}

func (s *Service) passwordError(err error) (int, string) {
	switch {
	case errors.Is(err, author.ErrInvalidCurrentPassword):
		return fiber.StatusBadRequest, msgWrongPassword
	case errors.Is(err, author.ErrPasswordPolicy):
		return fiber.StatusBadRequest, fmt.Sprintf(msgPasswordPolicy, s.cfg.Blog.MinPasswordLength)
	case errors.Is(err, author.ErrAuthorNotFound):
		return fiber.StatusNotFound, msgAccountNotFound
	default:
		return fiber.StatusInternalServerError, msgPasswordFailed
	}
}

// renderPassword never echoes submitted passwords.
func (s *Service) renderPassword(c *fiber.Ctx, status int, p *auth.Principal, msgs viewMessages) error {
	nav := navigation.NewContext("Password", navigation.SectionSettings, navigation.PagePassword).
		AddBreadcrumb("Settings", Path, false).
		AddBreadcrumb("Password", PasswordPath, true).
		WithMenu(p.IsAdmin())

	return c.Status(status).Render(TemplatePassword, msgs.apply(fiber.Map{
		"Navigation":        nav,
		"IsAdmin":           p.IsAdmin(),
		"UserName":          p.UserName(),
		"MinPasswordLength": s.cfg.Blog.MinPasswordLength,
	}), handler.BaseLayout)
}
