package appsettings

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// StartRefresh reloads the store from its backend on schedule (standard cron spec or @every).
// Several instances sharing one database converge on the latest persisted settings this way.
// The returned cron must be stopped by the caller.
func StartRefresh(store *Store, schedule string) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if err := store.Reload(context.Background()); err != nil {
			log.Error().Err(err).Msg("scheduled settings reload failed")

			return
		}

		log.Debug().Uint64("version", store.Snapshot().Version).Msg("settings reloaded")
	})
	if err != nil {
		return nil, fmt.Errorf("invalid settings refresh schedule %q: %w", schedule, err)
	}

	c.Start()

	return c, nil
}
