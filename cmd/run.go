package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/app"
	"github.com/careercompass/compass/internal/cloudsync"
	"github.com/careercompass/compass/internal/screen"
	"github.com/careercompass/compass/internal/store"
	"github.com/careercompass/compass/internal/userstate"
)

// runApp opens the store, loads the user's state, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	_, repo, cleanup, err := openRepos(ctx, cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	state, err := loadState(ctx, repo, userID(cmd))
	if err != nil {
		return err
	}

	session := &screen.Session{State: state, Repo: repo}
	return app.Run(session)
}

// openRepos opens the SQLite store and, when COMPASS_SYNC_DSN is set,
// wraps the state repo with the Postgres mirror. Remote failures are
// reported and ignored; local storage stays authoritative.
func openRepos(ctx context.Context, cmd *cobra.Command) (*store.Store, store.UserStateRepo, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	repo := st.UserStateRepo()
	cleanup := func() { st.Close() }

	if dsn := cloudsync.DSNFromEnv(); dsn != "" {
		client, err := cloudsync.Connect(ctx, dsn)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Cloud sync unavailable:", err)
		} else {
			repo = cloudsync.NewPersister(repo, client)
			cleanup = func() {
				client.Close()
				st.Close()
			}
		}
	}

	return st, repo, cleanup, nil
}

// loadState fetches the user's state, pointing at `compass init` when
// none exists yet.
func loadState(ctx context.Context, repo store.UserStateRepo, id string) (userstate.UserState, error) {
	state, err := repo.Load(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return userstate.UserState{}, fmt.Errorf("no data for user %q; run `compass init` first", id)
	}
	if err != nil {
		return userstate.UserState{}, fmt.Errorf("load user state: %w", err)
	}
	return state, nil
}
