// Package main starts the Blogifier admin service. It serves the settings area of the blog:
// application settings persisted per key, the theme list, the author list, the profile and
// the password form of the signed in author. Storage is gorm on mysql, postgres or sqlite.
package main
