package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update compass to the latest version",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
		defer cancel()

		out := cmd.OutOrStdout()
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))
		input := &selfupdate.UpdateInput{CurrentVersion: version}

		err := checker.Update(ctx, input, func(p selfupdate.UpdateProgress) {
			fmt.Fprintln(out, p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(out, "Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintln(out, "Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo compass update", err)
		default:
			return err
		}
	},
}
