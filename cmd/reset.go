package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		yes, _ := cmd.Flags().GetBool("yes")

		id := userID(cmd)
		if !yes {
			return fmt.Errorf("this deletes all data for user %q; re-run with --yes to confirm", id)
		}

		_, repo, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		if err := repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete user state: %w", err)
		}

		fmt.Printf("Deleted all data for user %q.\n", id)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
