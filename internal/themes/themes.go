// Package themes enumerates the blog themes an admin can select.
package themes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
)

// Default is the built-in theme, always selectable.
const Default = "Simple"

// Storage lists installed theme names.
type Storage interface {
	Themes() ([]string, error)
}

// DirStorage reads themes from the sub-directories of Dir.
type DirStorage struct {
	Dir string
}

// Themes returns the sorted sub-directory names of Dir, hidden directories are skipped.
// A missing directory yields no themes.
func (s DirStorage) Themes() ([]string, error) {
	entries, err := os.ReadDir(s.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("path", s.Dir).Msg("themes directory does not exist")

		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var names []string

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	return names, nil
}

// List returns the selectable themes, Default first followed by the storage themes in order.
// Names are not deduplicated.
func List(s Storage) ([]string, error) {
	out := []string{Default}

	if s == nil {
		return out, nil
	}

	names, err := s.Themes()
	if err != nil {
		return nil, err
	}

	return append(out, names...), nil
}
