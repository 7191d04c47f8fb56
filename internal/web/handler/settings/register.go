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

const msgAuthorExists = "An author with this user name or email already exists."

// RegisterForm creates a new author.
type RegisterForm struct {
	UserName    string `form:"UserName"    validate:"required,max=100"`
	DisplayName string `form:"DisplayName" validate:"max=160"`
	Email       string `form:"Email"       validate:"required,email,max=255"`
	Password    string `form:"Password"    validate:"required"`
	IsAdmin     bool   `form:"IsAdmin"`
}

// Register renders the registration view for admins, everybody else gets the forbidden page.
func (s *Service) Register(c *fiber.Ctx) error {
	if !auth.FromContext(c).IsAdmin() {
		return c.Redirect(handler.ForbiddenPath)
	}

	return s.renderRegister(c, fiber.StatusOK, &RegisterForm{}, viewMessages{})
}

// CreateAuthor registers a new author and sends the admin to the author list.
func (s *Service) CreateAuthor(c *fiber.Ctx) error {
	p := auth.FromContext(c)
	if !p.IsAdmin() {
		return c.Redirect(handler.ForbiddenPath)
	}

	form := new(RegisterForm)
	if err := c.BodyParser(form); err != nil {
		log.Warn().Err(err).Msg("failed to parse register form")

		return s.renderRegister(c, fiber.StatusBadRequest, form, viewMessages{Error: msgInvalidForm})
	}

	if err := s.validator.Struct(form); err != nil {
		return s.renderRegister(c, fiber.StatusBadRequest, form, viewMessages{Errors: validationMessages(err)})
	}

	if form.DisplayName == "" {
		form.DisplayName = form.UserName
	}

	a, err := s.authors.Create(c.UserContext(), form.UserName, form.DisplayName, form.Email, form.Password, form.IsAdmin)
	if err != nil {
		status, msg := fiber.StatusInternalServerError, msgSaveFailed

		switch {
		case errors.Is(err, author.ErrUserNameOrEmailExists):
			status, msg = fiber.StatusConflict, msgAuthorExists
		case errors.Is(err, author.ErrPasswordPolicy):
			status, msg = fiber.StatusBadRequest, fmt.Sprintf(msgPasswordPolicy, s.cfg.Blog.MinPasswordLength)
		default:
			log.Error().Err(err).Str("user", form.UserName).Msg("failed to register author")
		}

		return s.renderRegister(c, status, form, viewMessages{Error: msg})
	}

	log.Info().Str("by", p.UserName()).Str("user", a.UserName).Bool("admin", a.IsAdmin).Msg("author registered")

	setFlash(c, handler.MsgUpdated)

	return c.Redirect(UsersPath)
}

// renderRegister never echoes the submitted password.
func (s *Service) renderRegister(c *fiber.Ctx, status int, form *RegisterForm, msgs viewMessages) error {
	nav := navigation.NewContext("Register", navigation.SectionSettings, navigation.PageRegister).
		AddBreadcrumb("Settings", Path, false).
		AddBreadcrumb("Register", RegisterPath, true).
		WithMenu(true)

	form.Password = ""

	return c.Status(status).Render(TemplateRegister, msgs.apply(fiber.Map{
		"Navigation":        nav,
		"IsAdmin":           true,
		"Form":              form,
		"MinPasswordLength": s.cfg.Blog.MinPasswordLength,
	}), handler.BaseLayout)
}
