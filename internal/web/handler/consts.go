// Package handler holds what the web handlers share.
package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// ErrNilACDFatalLogMsg is used if app, cfg or one of the stores is nil.
	ErrNilACDFatalLogMsg = "app, cfg or store is nil"

	// MsgUpdated is the flash message shown after a successful change.
	MsgUpdated = "Updated"

	// ForbiddenPath is where authors without the needed rights are sent.
	ForbiddenPath = "/error/403"
)
