package persistence

import (
	"context"
	"errors"
)

// Store persists the single high score value
type Store interface {
	// Load returns the stored score; 0 when nothing was stored yet
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, score int) error
	Close() error
}

var (
	// ErrCorrupt is returned when stored data is not a non-negative integer
	ErrCorrupt = errors.New("high score data corrupt")
)

// DefaultFileName is the high score file used when no path is configured
const DefaultFileName = "snake_highscore.dat"

// Open returns a PostgreSQL store when dsn is set, a file store otherwise
func Open(ctx context.Context, path, dsn string) (Store, error) {
	if dsn != "" {
		return NewPostgresStore(ctx, dsn)
	}
	if path == "" {
		path = DefaultFileName
	}
	return NewFileStore(path), nil
}
