package models

import "time"

// Setting is one persisted application setting, keyed by name (e.g. app-title).
// Values are always strings, numeric settings are stored in their decimal form.
type Setting struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null"`
	Value     string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
