package config

import (
	"errors"
)

var (
	// ErrConfigNil error if no configuration was passed.
	ErrConfigNil = errors.New("config is nil")

	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormEngine is not one of mysql, postgres or sqlite.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be mysql, postgres or sqlite")

	// ErrItemsPerPageOutOfRange error if the default items per page is not between 1 and 100.
	ErrItemsPerPageOutOfRange = errors.New("toml config blog.defaults.itemsPerPage must be between 1 and 100")
)
