package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/userstate"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage portfolio projects",
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if len(state.Projects) == 0 {
			fmt.Println("No projects yet. Run `compass project add` to track one.")
			return nil
		}

		for _, p := range state.Projects {
			mark := "○"
			if p.Completed {
				mark = "●"
			}
			fmt.Printf("%s %-38s %-28s", mark, p.ID, p.Title)
			if len(p.TechStack) > 0 {
				fmt.Printf(" [%s]", strings.Join(p.TechStack, ", "))
			}
			fmt.Println()
		}
		return nil
	},
}

var projectAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		desc, _ := cmd.Flags().GetString("desc")
		tech, _ := cmd.Flags().GetStringSlice("tech")
		done, _ := cmd.Flags().GetBool("done")

		_, repo, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		state, err := loadState(ctx, repo, userID(cmd))
		if err != nil {
			return err
		}

		next, err := userstate.AddProject(state, userstate.ProjectInput{
			Title:       args[0],
			Description: desc,
			TechStack:   tech,
			Completed:   done,
		}, time.Now())
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, next); err != nil {
			return fmt.Errorf("save user state: %w", err)
		}

		added := next.Projects[len(next.Projects)-1]
		fmt.Printf("Added project %q (%s).\n", added.Title, added.ID)
		return nil
	},
}

var projectDoneCmd = &cobra.Command{
	Use:   "done <project-id>",
	Short: "Mark a project as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProjectCompletion(cmd, args[0], true)
	},
}

var projectUndoneCmd = &cobra.Command{
	Use:   "undone <project-id>",
	Short: "Mark a project as not completed (reverses the skill credit)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProjectCompletion(cmd, args[0], false)
	},
}

func setProjectCompletion(cmd *cobra.Command, projectID string, completed bool) error {
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

	next, err := userstate.SetProjectCompletion(state, projectID, completed, time.Now())
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save user state: %w", err)
	}

	if completed {
		fmt.Printf("Project %q completed.\n", projectID)
	} else {
		fmt.Printf("Project %q marked not completed.\n", projectID)
	}
	return nil
}

func init() {
	projectAddCmd.Flags().String("desc", "", "Project description")
	projectAddCmd.Flags().StringSlice("tech", nil, "Tech stack, comma-separated")
	projectAddCmd.Flags().Bool("done", false, "Mark as already completed")

	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectDoneCmd)
	projectCmd.AddCommand(projectUndoneCmd)
}
