package settings

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/user135711/Blogifier/internal/appsettings"
)

const (
	msgInvalidForm     = "The submitted form could not be read."
	msgSaveFailed      = "The settings could not be saved, please try again."
	msgProfileNotOwned = "You can only edit your own profile."

	msgWrongPassword    = "The current password is incorrect."
	msgPasswordPolicy   = "The new password must be at least %d characters long."
	msgAccountNotFound  = "Your account could not be found."
	msgPasswordFailed   = "The password could not be changed."
	msgPasswordMismatch = "The new password and its confirmation do not match."
)

// Form is the application settings form.
type Form struct {
	Title        string `form:"Title"              validate:"required,max=160"`
	Description  string `form:"Description"        validate:"required,max=255"`
	Logo         string `form:"Logo"               validate:"max=255"`
	Cover        string `form:"Cover"              validate:"max=255"`
	Theme        string `form:"Theme"              validate:"required,max=120"`
	ItemsPerPage int    `form:"ItemsPerPage"       validate:"required,min=1,max=100"`
	PostListType string `form:"app-post-list-type" validate:"max=50"`
}

func formFromSnapshot(s appsettings.Snapshot) *Form {
	return &Form{
		Title:        s.Title,
		Description:  s.Description,
		Logo:         s.Logo,
		Cover:        s.DefaultCover,
		Theme:        s.Theme,
		ItemsPerPage: s.ItemsPerPage,
		PostListType: s.PostListType,
	}
}

func (f *Form) snapshot() appsettings.Snapshot {
	return appsettings.Snapshot{
		Title:        f.Title,
		Description:  f.Description,
		Logo:         f.Logo,
		DefaultCover: f.Cover,
		Theme:        f.Theme,
		ItemsPerPage: f.ItemsPerPage,
		PostListType: f.PostListType,
	}
}

// ProfileForm is the profile form.
type ProfileForm struct {
	ID          uint64 `form:"ID"`
	UserName    string `form:"-"`
	DisplayName string `form:"DisplayName" validate:"required,max=160"`
	Email       string `form:"Email"       validate:"required,email,max=255"`
}

// PasswordForm is the password change form, UserName is always the signed in author.
type PasswordForm struct {
	UserName        string `form:"-"               validate:"required"`
	OldPassword     string `form:"OldPassword"     validate:"required"`
	NewPassword     string `form:"NewPassword"     validate:"required"`
	ConfirmPassword string `form:"ConfirmPassword" validate:"required,eqfield=NewPassword"`
}

// viewMessages are the feedback values every settings view understands.
type viewMessages struct {
	Message string
	Error   string
	Errors  []string
}

func (m viewMessages) apply(data fiber.Map) fiber.Map {
	if m.Message != "" {
		data["Message"] = m.Message
	}

	if m.Error != "" {
		data["Error"] = m.Error
	}

	if len(m.Errors) > 0 {
		data["Errors"] = m.Errors
	}

	return data
}

func validationMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		log.Error().Err(err).Msg("unexpected validation error")

		return []string{msgInvalidForm}
	}

	messages := make([]string, 0, len(validationErrors))

	for _, ve := range validationErrors {
		if ve.Tag() == "eqfield" {
			messages = append(messages, msgPasswordMismatch)

			continue
		}

		messages = append(messages, "Field '"+ve.Field()+"' failed validation tag '"+ve.Tag()+"'")
	}

	log.Debug().Strs("errors", messages).Msg("form validation failed")

	return messages
}
