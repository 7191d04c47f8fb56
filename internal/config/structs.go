package config

import (
	"time"

	"github.com/user135711/Blogifier/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Blog      Blog
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool    // enable static file browsing (for development purposes only)
	DisableRecover bool    // disable recover middleware
	Port           int     // listening port for the webserver
	ShutDownTime   int     // wait time for shutdown
	URL            string  // base url for the webserver
	LoginURL       string  // where unauthenticated requests are sent, the login flow lives outside this service
	Session        Session // session settings
}

// Blog holds the blog specific settings of the admin area.
type Blog struct {
	ThemesDir         string // directory scanned for installed themes
	MinPasswordLength int
	RefreshSchedule   string // cron spec for reloading settings from the database, empty disables it
	SeedAdminUser     string // user name of the admin author created on an empty database
	SeedAdminPassword string
	SeedAdminEmail    string
	Defaults          Defaults // values used for settings which were never saved
}

// Defaults are the application settings used before anything was persisted.
type Defaults struct {
	Title        string
	Description  string
	Logo         string
	Cover        string
	Theme        string
	ItemsPerPage int
	PostListType string
}
