package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultCategoryName is used when no WithDefaultCategory option is given
const DefaultCategoryName = "General"

// Option configures a Store
type Option func(*Store)

// WithDefaultCategory sets the name of the category created when none exist
func WithDefaultCategory(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.defaultName = name
		}
	}
}

// WithClock replaces time.Now for CreatedAt stamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the UUIDv7 id source
func WithIDGenerator(next func() string) Option {
	return func(s *Store) { s.newID = next }
}

// WithLogger sets the store's logger
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// newUUID returns a time-ordered id. NewV7 only fails when the random
// source does, in which case a v4 id is still unique.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
