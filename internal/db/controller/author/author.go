// Package author provides persistence for blog author accounts.
package author

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/user135711/Blogifier/internal/db/models"
	"github.com/user135711/Blogifier/internal/pager"
)

const (
	whereID       = "id = ?"
	whereUserName = "user_name = ?"

	defaultMinPasswordLength = 6
)

var (
	// ErrAuthorNotFound is returned when no author matches the lookup.
	ErrAuthorNotFound = errors.New("author not found")
	// ErrInvalidCurrentPassword is returned when the current password does not match on a password change.
	ErrInvalidCurrentPassword = errors.New("invalid current password")
	// ErrPasswordPolicy is returned when a new password does not satisfy the password policy.
	ErrPasswordPolicy = errors.New("password does not satisfy the password policy")
	// ErrUserNameOrEmailExists is returned when creating an author with a taken user name or email.
	ErrUserNameOrEmailExists = errors.New("author with user name or email already exists")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Controller reads and writes authors.
type Controller struct {
	db                *gorm.DB
	validate          *validator.Validate
	minPasswordLength int
}

// New creates an author controller, minPasswordLength below 1 uses the default policy.
func New(db *gorm.DB, minPasswordLength int) *Controller {
	if minPasswordLength < 1 {
		minPasswordLength = defaultMinPasswordLength
	}

	return &Controller{
		db:                db,
		validate:          validator.New(),
		minPasswordLength: minPasswordLength,
	}
}

func (c *Controller) first(ctx context.Context, query string, arg interface{}) (*models.Author, error) {
	if c.db == nil {
		return nil, ErrDBNil
	}

	var a models.Author

	err := c.db.WithContext(ctx).Where(query, arg).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuthorNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query author: %w", err)
	}

	return &a, nil
}

// GetByUserName returns the author with the given user name.
func (c *Controller) GetByUserName(ctx context.Context, userName string) (*models.Author, error) {
	return c.first(ctx, whereUserName, userName)
}

// GetByID returns the author with the given id.
func (c *Controller) GetByID(ctx context.Context, id uint64) (*models.Author, error) {
	return c.first(ctx, whereID, id)
}

// GetItems returns the page of authors created after createdAfter, newest first.
// The pager is configured with the total number of matching authors.
func (c *Controller) GetItems(ctx context.Context, createdAfter time.Time, p *pager.Pager) ([]models.Author, error) {
	if c.db == nil {
		return nil, ErrDBNil
	}

	var (
		total   int64
		authors []models.Author
		query   = c.db.WithContext(ctx).Model(&models.Author{}).
			Where("created > ?", createdAfter).
			Session(&gorm.Session{})
	)

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count authors: %w", err)
	}

	p.Configure(int(total))

	err := query.Order("created DESC").Order("id DESC").
		Offset(p.Skip()).
		Limit(p.Take()).
		Find(&authors).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	return authors, nil
}

// Count returns the number of authors.
func (c *Controller) Count(ctx context.Context) (int64, error) {
	if c.db == nil {
		return 0, ErrDBNil
	}

	var total int64

	if err := c.db.WithContext(ctx).Model(&models.Author{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return total, nil
}

// Create registers a new author with a hashed password.
func (c *Controller) Create(
	ctx context.Context,
	userName, displayName, email, password string,
	isAdmin bool,
) (*models.Author, error) {
	if c.db == nil {
		return nil, ErrDBNil
	}

	if err := c.checkPolicy(password); err != nil {
		return nil, err
	}

	db := c.db.WithContext(ctx)

	var existing models.Author

	err := db.Where("user_name = ? OR email = ?", userName, email).First(&existing).Error
	if err == nil {
		return nil, ErrUserNameOrEmailExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing author: %w", err)
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := models.Author{
		UserName:    userName,
		DisplayName: displayName,
		Email:       email,
		Password:    hash,
		IsAdmin:     isAdmin,
	}

	if err := db.Create(&a).Error; err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &a, nil
}

func (c *Controller) checkPolicy(password string) error {
	if len([]rune(password)) < c.minPasswordLength {
		return fmt.Errorf("%w: at least %d characters required", ErrPasswordPolicy, c.minPasswordLength)
	}

	return nil
}

// SaveUser validates and persists the profile fields of a.
// Failures are reported in the result, never as a returned error.
func (c *Controller) SaveUser(ctx context.Context, a *models.Author) Result {
	if c.db == nil {
		return Failed(CodeDatabaseError, ErrDBNil.Error())
	}

	a.DisplayName = strings.TrimSpace(a.DisplayName)
	a.Email = strings.TrimSpace(a.Email)

	var errs []Error

	if a.DisplayName == "" {
		errs = append(errs, Error{Code: CodeInvalidDisplayName, Description: "Display name can not be empty."})
	}

	if c.validate.Var(a.Email, "required,email") != nil {
		errs = append(errs, Error{Code: CodeInvalidEmail, Description: fmt.Sprintf("Email '%s' is invalid.", a.Email)})
	}

	if len(errs) > 0 {
		return Result{Errors: errs}
	}

	db := c.db.WithContext(ctx)

	var taken int64

	err := db.Model(&models.Author{}).Where("email = ? AND id <> ?", a.Email, a.ID).Count(&taken).Error
	if err != nil {
		return Failed(CodeDatabaseError, err.Error())
	}

	if taken > 0 {
		return Failed(CodeDuplicateEmail, fmt.Sprintf("Email '%s' is already taken.", a.Email))
	}

	err = db.Model(&models.Author{}).Where(whereID, a.ID).Updates(map[string]interface{}{
		"display_name": a.DisplayName,
		"email":        a.Email,
		"updated_at":   time.Now(),
	}).Error
	if err != nil {
		return Failed(CodeDatabaseError, err.Error())
	}

	return Success()
}

// ChangePassword verifies the current password of the author and stores the new one.
func (c *Controller) ChangePassword(ctx context.Context, req PasswordChange) error {
	a, err := c.GetByUserName(ctx, req.UserName)
	if err != nil {
		return err
	}

	if !a.VerifyPassword(req.OldPassword) {
		return ErrInvalidCurrentPassword
	}

	if err = c.checkPolicy(req.NewPassword); err != nil {
		return err
	}

	hash, err := models.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	err = c.db.WithContext(ctx).Model(&models.Author{}).Where(whereID, a.ID).Updates(map[string]interface{}{
		"password":   hash,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
