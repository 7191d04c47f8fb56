package daemon

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/user135711/Blogifier/internal/config"
	"github.com/user135711/Blogifier/internal/db/controller/author"
)

const defaultSeedPassword = "changeme"

// seed creates the configured admin author when no author exists yet.
func seed(ctx context.Context, cfg *config.Config, authors *author.Controller) error {
	if cfg.Blog.SeedAdminUser == "" {
		return nil
	}

	count, err := authors.Count(ctx)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	a, err := authors.Create(ctx,
		cfg.Blog.SeedAdminUser,
		cfg.Blog.SeedAdminUser,
		cfg.Blog.SeedAdminEmail,
		cfg.Blog.SeedAdminPassword,
		true,
	)
	if err != nil {
		return fmt.Errorf("failed to seed admin author: %w", err)
	}

	if cfg.Blog.SeedAdminPassword == defaultSeedPassword {
		log.Warn().Str("user", a.UserName).Msg("admin author seeded with the default password, change it")
	} else {
		log.Info().Str("user", a.UserName).Msg("admin author seeded")
	}

	return nil
}
