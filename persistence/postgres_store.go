package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps the high score in a single-row PostgreSQL table
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects, pings and ensures the schema exists
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return store, nil
}

func (s *PostgresStore) initSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS snake_high_score (
		id SMALLINT PRIMARY KEY CHECK (id = 1),
		score INTEGER NOT NULL CHECK (score >= 0),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *PostgresStore) Load(ctx context.Context) (int, error) {
	var score int
	err := s.db.QueryRowContext(ctx, `SELECT score FROM snake_high_score WHERE id = 1`).Scan(&score)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("load high score: %w", err)
	}
	return score, nil
}

func (s *PostgresStore) Save(ctx context.Context, score int) error {
	query := `
	INSERT INTO snake_high_score (id, score)
	VALUES (1, $1)
	ON CONFLICT (id)
	DO UPDATE SET score = $1, updated_at = NOW()
	`
	if _, err := s.db.ExecContext(ctx, query, score); err != nil {
		return fmt.Errorf("save high score: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	log.Println("persistence: closing database connection")
	return s.db.Close()
}
