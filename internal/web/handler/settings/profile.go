package settings

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/user135711/Blogifier/internal/db/controller/author"
	"github.com/user135711/Blogifier/internal/web/handler"
	"github.com/user135711/Blogifier/internal/web/middleware/auth"
	"github.com/user135711/Blogifier/internal/web/navigation"
	"github.com/user135711/Blogifier/internal/web/session"
)

// Profile renders the profile of the signed in author.
func (s *Service) Profile(c *fiber.Ctx) error {
	p := auth.FromContext(c)

	form := &ProfileForm{
		ID:          p.Author.ID,
		UserName:    p.Author.UserName,
		DisplayName: p.Author.DisplayName,
		Email:       p.Author.Email,
	}

	return s.renderProfile(c, fiber.StatusOK, p, form, viewMessages{Message: session.PopFlash(c)})
}

// UpdateProfile saves display name and email of an author.
func (s *Service) UpdateProfile(c *fiber.Ctx) error {
	p := auth.FromContext(c)

	form := new(ProfileForm)
	if err := c.BodyParser(form); err != nil {
		log.Warn().Err(err).Msg("failed to parse profile form")

		return s.renderProfile(c, fiber.StatusBadRequest, p, form, viewMessages{Error: msgInvalidForm})
	}

	if err := s.validator.Struct(form); err != nil {
		return s.renderProfile(c, fiber.StatusBadRequest, p, form, viewMessages{Errors: validationMessages(err)})
	}

	if !p.IsAdmin() && form.ID != p.Author.ID {
		log.Warn().Str("user", p.UserName()).Uint64("id", form.ID).Msg("profile update for foreign author denied")

		return s.renderProfile(c, fiber.StatusForbidden, p, form, viewMessages{Error: msgProfileNotOwned})
	}

	a, err := s.authors.GetByID(c.UserContext(), form.ID)
	if err != nil {
		return err
	}

	form.UserName = a.UserName
	a.DisplayName = form.DisplayName
	a.Email = form.Email

	res := s.authors.SaveUser(c.UserContext(), a)
	if !res.Succeeded {
		status := fiber.StatusBadRequest
		if len(res.Errors) > 0 && res.Errors[0].Code == author.CodeDatabaseError {
			status = fiber.StatusInternalServerError
		}

		return s.renderProfile(c, status, p, form, viewMessages{Error: res.FirstError()})
	}

	log.Info().Str("user", p.UserName()).Uint64("id", a.ID).Msg("profile saved")

	setFlash(c, handler.MsgUpdated)

	return c.Redirect(ProfilePath)
}

func (s *Service) renderProfile(c *fiber.Ctx, status int, p *auth.Principal, form *ProfileForm, msgs viewMessages) error {
	nav := navigation.NewContext("Profile", navigation.SectionSettings, navigation.PageProfile).
		AddBreadcrumb("Settings", Path, false).
		AddBreadcrumb("Profile", ProfilePath, true).
		WithMenu(p.IsAdmin())

	return c.Status(status).Render(TemplateProfile, msgs.apply(fiber.Map{
		"Navigation": nav,
		"IsAdmin":    p.IsAdmin(),
		"Form":       form,
	}), handler.BaseLayout)
}
