package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/careercompass/compass/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Single-writer local database tuning: WAL for concurrent readers,
// a busy timeout instead of immediate SQLITE_BUSY errors.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Store owns the SQLite connection and the ent client, and hands out
// repositories backed by them.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open connects to the SQLite database at dsn, applies pragmas, and
// runs ent auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("init sequence counter: %w", err)
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the raw connection for queries ent cannot express.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

func (s *Store) UserStateRepo() UserStateRepo {
	return &userStateRepo{client: s.client}
}

func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, db: s.db, seq: s.seq}
}

// DefaultDBPath picks the database location: COMPASS_DB wins, then
// $XDG_DATA_HOME/compass/compass.db, then ~/.local/share/compass/compass.db.
// The parent directory is created if missing.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("COMPASS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "compass", "compass.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
