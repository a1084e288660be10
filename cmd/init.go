package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/store"
	"github.com/careercompass/compass/internal/userstate"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a user with the default roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		demo, _ := cmd.Flags().GetBool("demo")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		college, _ := cmd.Flags().GetString("college")
		role, _ := cmd.Flags().GetString("role")

		_, repo, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		id := userID(cmd)
		if _, err := repo.Load(ctx, id); err == nil {
			return fmt.Errorf("user %q already exists; run `compass reset` to start over", id)
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("load user state: %w", err)
		}

		now := time.Now()
		var state userstate.UserState
		if demo {
			state = userstate.DemoState(now)
			state.UserID = id
		} else {
			state = userstate.NewState(id, userstate.Profile{
				Name:    name,
				Email:   email,
				College: college,
				Role:    role,
			}, now)
		}

		if err := repo.Save(ctx, state); err != nil {
			return fmt.Errorf("save user state: %w", err)
		}

		fmt.Printf("Initialized user %q with %d roadmap topics.\n", id, len(state.Roadmap.Topics))
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("demo", false, "Seed with demo data (partially completed roadmap, sample projects and tests)")
	initCmd.Flags().String("name", "", "Display name")
	initCmd.Flags().String("email", "", "Email address")
	initCmd.Flags().String("college", "", "College name")
	initCmd.Flags().String("role", "", "Target role, e.g. 'Backend Engineer'")
}
