package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out the global ordering sequence for event
// rows. Each event table has its own auto-increment ID, so a single
// database-backed counter provides a total order across tables. The
// increment runs as one UPDATE ... RETURNING statement, atomic at the
// database level; the mutex keeps in-process callers from interleaving
// on the shared connection pool.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

const (
	createSequenceSQL = `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`
	seedSequenceSQL = `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`
	nextSequenceSQL = `UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`
)

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	if _, err := db.Exec(createSequenceSQL); err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	if _, err := db.Exec(seedSequenceSQL); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next reserves and returns the next sequence number.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	if err := sc.db.QueryRowContext(ctx, nextSequenceSQL).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}
