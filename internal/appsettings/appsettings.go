// Package appsettings holds the process wide application settings snapshot.
//
// Readers get an immutable copy through Store.Snapshot. Writes are serialized and persist one
// key per changed field; each successful save replaces the whole snapshot with a new version.
// Fields are saved independently: a failure leaves earlier fields persisted.
package appsettings

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

// Keys of the persisted settings.
const (
	KeyTitle        = "app-title"
	KeyDescription  = "app-desc"
	KeyLogo         = "app-logo"
	KeyCover        = "app-cover"
	KeyTheme        = "app-theme"
	KeyItemsPerPage = "app-items-per-page"
	KeyPostListType = "app-post-list-type"
)

var writes = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "app_settings_writes_total",
		Help: "Number of persisted application setting writes, differentiated by key and result.",
	},
	[]string{"key", "result"},
)

// Snapshot is one immutable version of the application settings.
type Snapshot struct {
	Version      uint64
	Title        string
	Description  string
	Logo         string
	DefaultCover string
	Theme        string
	ItemsPerPage int
	PostListType string
}

// Backend persists settings by key.
type Backend interface {
	SaveSetting(ctx context.Context, key, value string) error
	LoadSettings(ctx context.Context) (map[string]string, error)
}

// Store owns the current snapshot.
type Store struct {
	backend  Backend
	defaults Snapshot

	mu      sync.Mutex // serializes writers
	current atomic.Pointer[Snapshot]
}

// NewStore returns a store whose first snapshot is defaults.
// Call Reload to pick up persisted values.
func NewStore(backend Backend, defaults Snapshot) *Store {
	s := &Store{
		backend:  backend,
		defaults: defaults,
	}

	defaults.Version = 0
	s.current.Store(&defaults)

	return s
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Snapshot {
	return *s.current.Load()
}

// Apply persists every field of in that differs from the current snapshot, in a fixed order,
// one backend call per changed field. It returns the keys saved before any failure.
func (s *Store) Apply(ctx context.Context, in Snapshot) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed []string

	for _, f := range fields {
		cur := s.current.Load()

		value := f.get(&in)
		if value == f.get(cur) {
			continue
		}

		next := *cur
		if err := f.set(&next, value); err != nil {
			return changed, fmt.Errorf("apply %s: %w", f.key, err)
		}

		if err := s.backend.SaveSetting(ctx, f.key, value); err != nil {
			writes.WithLabelValues(f.key, "error").Inc()

			return changed, fmt.Errorf("save %s: %w", f.key, err)
		}

		writes.WithLabelValues(f.key, "ok").Inc()

		next.Version = cur.Version + 1
		s.current.Store(&next)

		changed = append(changed, f.key)
	}

	if len(changed) > 0 {
		log.Info().Strs("keys", changed).Uint64("version", s.current.Load().Version).Msg("application settings updated")
	}

	return changed, nil
}

// Reload replaces the snapshot with the persisted settings, missing keys use the defaults.
// Values that can not be parsed keep the default and are logged. The load runs under the writer
// lock so a concurrent Apply is never overwritten by an older read.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.backend.LoadSettings(ctx)
	if err != nil {
		return fmt.Errorf("reload application settings: %w", err)
	}

	cur := s.current.Load()
	next := s.defaults

	for _, f := range fields {
		value, ok := stored[f.key]
		if !ok {
			continue
		}

		if err := f.set(&next, value); err != nil {
			log.Warn().Err(err).Str("key", f.key).Str("value", value).Msg("ignoring invalid stored setting")
		}
	}

	next.Version = cur.Version
	if !equal(cur, &next) {
		next.Version++
	}

	s.current.Store(&next)

	return nil
}

func equal(a, b *Snapshot) bool {
	for _, f := range fields {
		if f.get(a) != f.get(b) {
			return false
		}
	}

	return true
}
