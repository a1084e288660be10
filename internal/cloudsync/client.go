// Package cloudsync mirrors user state to a remote Postgres database.
// The local SQLite store stays authoritative; the mirror exists so a
// user's state survives machine loss and can be pulled onto another
// machine. All remote writes are best-effort.
package cloudsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careercompass/compass/internal/userstate"
)

// Client wraps a pgx connection pool for the user_states mirror table.
type Client struct {
	pool *pgxpool.Pool
}

// DSNFromEnv returns the remote DSN from COMPASS_SYNC_DSN, or "" when
// sync is not configured.
func DSNFromEnv() string {
	return os.Getenv("COMPASS_SYNC_DSN")
}

// Connect opens a pool against the remote database and verifies the
// connection.
func Connect(ctx context.Context, dsn string) (*Client, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping remote database: %w", err)
	}

	c := &Client{pool: pool}
	if err := c.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return c, nil
}

// Close releases the connection pool.
func (c *Client) Close() {
	c.pool.Close()
}

func (c *Client) ensureSchema(ctx context.Context) error {
	_, err := c.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_states (
			user_id    TEXT PRIMARY KEY,
			data       JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure remote schema: %w", err)
	}
	return nil
}

// Save upserts the state document for its user.
func (c *Client) Save(ctx context.Context, state userstate.UserState) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal user state: %w", err)
	}

	_, err = c.pool.Exec(ctx, `
		INSERT INTO user_states (user_id, data, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id)
		DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		state.UserID, doc)
	if err != nil {
		return fmt.Errorf("upsert user state: %w", err)
	}
	return nil
}

// Load fetches the state document for userID. The second return is
// false when no remote state exists.
func (c *Client) Load(ctx context.Context, userID string) (userstate.UserState, bool, error) {
	var doc []byte
	err := c.pool.QueryRow(ctx,
		`SELECT data FROM user_states WHERE user_id = $1`, userID,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return userstate.UserState{}, false, nil
		}
		return userstate.UserState{}, false, fmt.Errorf("query remote state: %w", err)
	}

	var state userstate.UserState
	if err := json.Unmarshal(doc, &state); err != nil {
		return userstate.UserState{}, false, fmt.Errorf("unmarshal remote state: %w", err)
	}
	return state, true, nil
}

// Delete removes the remote state for userID.
func (c *Client) Delete(ctx context.Context, userID string) error {
	_, err := c.pool.Exec(ctx,
		`DELETE FROM user_states WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete remote state: %w", err)
	}
	return nil
}
