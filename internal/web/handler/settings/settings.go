// Package settings implements the admin settings area: application settings, the author list,
// the profile, the password form and the registration gate.
package settings

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/user135711/Blogifier/internal/appsettings"
	"github.com/user135711/Blogifier/internal/config"
	"github.com/user135711/Blogifier/internal/db/controller/author"
	"github.com/user135711/Blogifier/internal/db/models"
	"github.com/user135711/Blogifier/internal/pager"
	"github.com/user135711/Blogifier/internal/themes"
	"github.com/user135711/Blogifier/internal/web/handler"
	"github.com/user135711/Blogifier/internal/web/middleware/auth"
	"github.com/user135711/Blogifier/internal/web/navigation"
	"github.com/user135711/Blogifier/internal/web/session"
)

const (
	// Path is the application settings page.
	Path = "/settings"
	// UsersPath is the author list.
	UsersPath = Path + "/users"
	// ProfilePath is the profile of the signed in author.
	ProfilePath = Path + "/profile"
	// PasswordPath is the password form.
	PasswordPath = Path + "/password"
	// RegisterPath is the registration gate.
	RegisterPath = Path + "/register"

	// TemplateName is the name of the application settings template.
	TemplateName = "settings/index"
	// TemplateUsers is the name of the author list template.
	TemplateUsers = "settings/users"
	// TemplateProfile is the name of the profile template.
	TemplateProfile = "settings/profile"
	// TemplatePassword is the name of the password template.
	TemplatePassword = "settings/password"
	// TemplateRegister is the name of the registration template.
	TemplateRegister = "settings/register"
)

// AuthorStore is the author persistence the settings area needs.
type AuthorStore interface {
	GetByID(ctx context.Context, id uint64) (*models.Author, error)
	GetItems(ctx context.Context, createdAfter time.Time, p *pager.Pager) ([]models.Author, error)
	SaveUser(ctx context.Context, a *models.Author) author.Result
	ChangePassword(ctx context.Context, req author.PasswordChange) error
	Create(ctx context.Context, userName, displayName, email, password string, isAdmin bool) (*models.Author, error)
}

// SettingsStore holds the application settings snapshot.
type SettingsStore interface {
	Snapshot() appsettings.Snapshot
	Apply(ctx context.Context, in appsettings.Snapshot) ([]string, error)
}

// Service is the settings handler service.
type Service struct {
	cfg       *config.Config
	authors   AuthorStore
	settings  SettingsStore
	themes    themes.Storage
	validator *validator.Validate
}

// Handler is the settings handler.
var Handler = Service{}

// Init initializes the settings handler and registers its routes.
// The principal middleware must run before these routes.
func (s *Service) Init(
	app *fiber.App,
	cfg *config.Config,
	authors AuthorStore,
	settings SettingsStore,
	themeStorage themes.Storage,
) {
	if app == nil || cfg == nil || authors == nil || settings == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)

		return
	}

	s.cfg = cfg
	s.authors = authors
	s.settings = settings
	s.themes = themeStorage
	s.validator = validator.New()

	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RootPath, s.Index)
		router.Post(handler.RootPath, s.Update)
		router.Get("/users", s.Users)
		router.Get("/profile", s.Profile)
		router.Post("/profile", s.UpdateProfile)
		router.Get("/password", s.Password)
		router.Post("/password", s.ChangePassword)
		router.Get("/register", s.Register)
		router.Post("/register", s.CreateAuthor)
	})
}

// Index renders the application settings, authors without admin rights are sent to their profile.
func (s *Service) Index(c *fiber.Ctx) error {
	p := auth.FromContext(c)
	if !p.IsAdmin() {
		return c.Redirect(ProfilePath)
	}

	return s.renderIndex(c, fiber.StatusOK, formFromSnapshot(s.settings.Snapshot()), viewMessages{
		Message: session.PopFlash(c),
	})
}

// Update persists every submitted setting that differs from the current snapshot.
func (s *Service) Update(c *fiber.Ctx) error {
	p := auth.FromContext(c)
	if !p.IsAdmin() {
		return c.Redirect(ProfilePath)
	}

	form := new(Form)
	if err := c.BodyParser(form); err != nil {
		log.Warn().Err(err).Msg("failed to parse settings form")

		return s.renderIndex(c, fiber.StatusBadRequest, form, viewMessages{Error: msgInvalidForm})
	}

	if err := s.validator.Struct(form); err != nil {
		return s.renderIndex(c, fiber.StatusBadRequest, form, viewMessages{Errors: validationMessages(err)})
	}

	changed, err := s.settings.Apply(c.UserContext(), form.snapshot())
	if err != nil {
		log.Error().Err(err).Strs("saved", changed).Msg("failed to save application settings")

		return s.renderIndex(c, fiber.StatusInternalServerError, form, viewMessages{Error: msgSaveFailed})
	}

	log.Info().Str("user", p.UserName()).Strs("keys", changed).Msg("application settings saved")

	setFlash(c, handler.MsgUpdated)

	return c.Redirect(Path)
}

func (s *Service) renderIndex(c *fiber.Ctx, status int, form *Form, msgs viewMessages) error {
	list, err := themes.List(s.themes)
	if err != nil {
		return err
	}

	nav := navigation.NewContext("Settings", navigation.SectionSettings, navigation.PageGeneral).
		AddBreadcrumb("Settings", Path, true).
		WithMenu(true)

	return c.Status(status).Render(TemplateName, msgs.apply(fiber.Map{
		"Navigation": nav,
		"IsAdmin":    true,
		"Form":       form,
		"Themes":     list,
	}), handler.BaseLayout)
}

// Users renders one page of authors, newest first.
func (s *Service) Users(c *fiber.Ctx) error {
	p := auth.FromContext(c)
	if !p.IsAdmin() {
		return c.Redirect(ProfilePath)
	}

	pgr := pager.New(c.QueryInt("page", 1), s.settings.Snapshot().ItemsPerPage)

	authors, err := s.authors.GetItems(c.UserContext(), time.Time{}, pgr)
	if err != nil {
		return err
	}

	nav := navigation.NewContext("Users", navigation.SectionSettings, navigation.PageUsers).
		AddBreadcrumb("Settings", Path, false).
		AddBreadcrumb("Users", UsersPath, true).
		WithMenu(true)

	return c.Render(TemplateUsers, viewMessages{Message: session.PopFlash(c)}.apply(fiber.Map{
		"Navigation": nav,
		"IsAdmin":    true,
		"Authors":    authors,
		"Pager":      pgr,
	}), handler.BaseLayout)
}

func setFlash(c *fiber.Ctx, msg string) {
	if err := session.SetFlash(c, msg); err != nil && !errors.Is(err, session.ErrNoSession) {
		log.Warn().Err(err).Msg("failed to store flash message")
	}
}
