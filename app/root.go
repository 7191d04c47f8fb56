// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var (
	configPath string // directory of main.toml

	rootCmd = &cobra.Command{
		Use:   "blogifier",
		Short: "Blogifier admin serves the settings area of a Blogifier blog",
		Long: `Blogifier admin serves the settings area of a Blogifier blog:
application settings, themes, authors, profiles and passwords.`,
		Args: cobra.OnlyValidArgs,
	}
)

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "directory holding main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
