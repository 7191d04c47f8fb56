package appsettings

import (
	"errors"
	"strconv"
)

// ErrInvalidItemsPerPage is returned for an items per page value that is not a positive number.
var ErrInvalidItemsPerPage = errors.New("items per page must be a positive number")

type field struct {
	key string
	get func(s *Snapshot) string
	set func(s *Snapshot, value string) error
}

// fields in persistence order.
var fields = []field{ //nolint:gochecknoglobals
	{
		key: KeyTitle,
		get: func(s *Snapshot) string { return s.Title },
		set: func(s *Snapshot, v string) error { s.Title = v; return nil },
	},
	{
		key: KeyDescription,
		get: func(s *Snapshot) string { return s.Description },
		set: func(s *Snapshot, v string) error { s.Description = v; return nil },
	},
	{
		key: KeyLogo,
		get: func(s *Snapshot) string { return s.Logo },
		set: func(s *Snapshot, v string) error { s.Logo = v; return nil },
	},
	{
		key: KeyCover,
		get: func(s *Snapshot) string { return s.DefaultCover },
		set: func(s *Snapshot, v string) error { s.DefaultCover = v; return nil },
	},
	{
		key: KeyTheme,
		get: func(s *Snapshot) string { return s.Theme },
		set: func(s *Snapshot, v string) error { s.Theme = v; return nil },
	},
	{
		key: KeyItemsPerPage,
		get: func(s *Snapshot) string { return strconv.Itoa(s.ItemsPerPage) },
		set: func(s *Snapshot, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return ErrInvalidItemsPerPage
			}

			s.ItemsPerPage = n

			return nil
		},
	},
	{
		key: KeyPostListType,
		get: func(s *Snapshot) string { return s.PostListType },
		set: func(s *Snapshot, v string) error { s.PostListType = v; return nil },
	},
}

// Keys returns the persisted setting keys in persistence order.
func Keys() []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, f.key)
	}

	return out
}
