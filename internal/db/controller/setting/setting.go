// Package setting provides persistence for the key/value application settings.
package setting

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/user135711/Blogifier/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when attempting to read or write a setting with an empty name.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var setting models.Setting

	result := db.Where(nameQueryPattern, name).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &setting, nil
}

// GetAll retrieves all settings ordered by name.
func GetAll(db *gorm.DB) ([]models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var settings []models.Setting

	result := db.Order("name").Find(&settings)
	if result.Error != nil {
		return nil, result.Error
	}

	return settings, nil
}

// Set creates or updates a setting by name in a single upsert statement.
func Set(db *gorm.DB, name, value string) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&models.Setting{Name: name, Value: value})

	return result.Error
}

// Store exposes the settings table as the backend of the application settings snapshot.
type Store struct {
	db *gorm.DB
}

// NewStore returns a Store using db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// SaveSetting upserts a single key.
func (s *Store) SaveSetting(ctx context.Context, key, value string) error {
	if s.db == nil {
		return ErrDBNil
	}

	if err := Set(s.db.WithContext(ctx), key, value); err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}

	return nil
}

// LoadSettings returns every persisted setting keyed by name.
func (s *Store) LoadSettings(ctx context.Context) (map[string]string, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	settings, err := GetAll(s.db.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	out := make(map[string]string, len(settings))
	for _, st := range settings {
		out[st.Name] = st.Value
	}

	return out, nil
}
