// Package daemon wires storage, settings and the web service of the admin area.
package daemon

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/user135711/Blogifier/internal/appsettings"
	"github.com/user135711/Blogifier/internal/config"
	"github.com/user135711/Blogifier/internal/db/controller/author"
	"github.com/user135711/Blogifier/internal/db/controller/setting"
	"github.com/user135711/Blogifier/internal/themes"
	"github.com/user135711/Blogifier/internal/web"
	"github.com/user135711/Blogifier/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	refresh    *cron.Cron
	webService *web.Service
}

// New connects the database, loads the settings and builds the web service.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, config.ErrConfigNil
	}

	ctx := context.Background()

	db, err := openDB(cfg)
	if err != nil {
		return nil, err
	}

	authors := author.New(db, cfg.Blog.MinPasswordLength)

	if err = seed(ctx, cfg, authors); err != nil {
		return nil, err
	}

	store := appsettings.NewStore(setting.NewStore(db), defaults(cfg.Blog.Defaults))
	if err = store.Reload(ctx); err != nil {
		return nil, fmt.Errorf("failed to load application settings: %w", err)
	}

	session.Init(sessionStorage(cfg), cfg.Webserver.Session.ExpiryTime)

	d := &Daemon{
		cfg: cfg,
		db:  db,
		webService: web.New(cfg, authors, store, themes.DirStorage{
			Dir: cfg.Blog.ThemesDir,
		}),
	}

	if cfg.Blog.RefreshSchedule != "" {
		if d.refresh, err = appsettings.StartRefresh(store, cfg.Blog.RefreshSchedule); err != nil {
			return nil, err
		}
	}

	if cfg.DevMode {
		devSession(cfg)
	}

	return d, nil
}

// Start serves http until a termination signal arrives, then releases the daemon resources.
func (d *Daemon) Start() error {
	go d.webService.WaitShutdown()

	err := d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port))

	if closeErr := d.Close(); closeErr != nil {
		log.Error().Err(closeErr).Msg("failed to close daemon")
	}

	return err
}

// Close stops the settings refresh and closes the database connections.
func (d *Daemon) Close() error {
	if d.refresh != nil {
		<-d.refresh.Stop().Done()
	}

	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	if err = sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}

func defaults(d config.Defaults) appsettings.Snapshot {
	return appsettings.Snapshot{
		Title:        d.Title,
		Description:  d.Description,
		Logo:         d.Logo,
		DefaultCover: d.Cover,
		Theme:        d.Theme,
		ItemsPerPage: d.ItemsPerPage,
		PostListType: d.PostListType,
	}
}

// devSession issues a session for the seeded admin, sign in lives outside this service.
func devSession(cfg *config.Config) {
	if cfg.Blog.SeedAdminUser == "" {
		return
	}

	id, err := session.GenerateSessionID()
	if err != nil {
		log.Error().Err(err).Msg("failed to generate dev session")

		return
	}

	if err = (&session.Data{UserName: cfg.Blog.SeedAdminUser}).Write(id, cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write dev session")

		return
	}

	log.Warn().
		Str("user", cfg.Blog.SeedAdminUser).
		Str("cookie", session.CookieName+"="+id).
		Msg("dev mode: set this cookie to use the admin area")
}
