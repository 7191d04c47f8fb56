// Package auth provides the principal middleware for the web application.
//
// The middleware resolves the signed in author once per request and makes
// it available to handlers and templates. Login itself happens elsewhere,
// this package only reads the session it left behind.
//
// The middleware performs the following tasks:
//   - Reads the session cookie and redirects to the login URL if it is missing or unknown
//   - Loads the author named by the session and stores a Principal in fiber.Locals
//   - Allows public access to static files, health, metrics and error pages
//
// Usage:
//
//	app.Use(auth.New(auth.Config{Authors: authors, LoginURL: cfg.Webserver.LoginURL}))
//
// Handlers read the principal with auth.FromContext. The admin flag is taken
// from the author record loaded for this request, nothing is cached between
// requests.
package auth
