package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/userstate"
)

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "List and update roadmap topics",
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List roadmap topics with their states",
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

		topics := state.Roadmap.Topics
		if len(topics) == 0 {
			fmt.Println("No roadmap yet. Run `compass roadmap generate` to create one.")
			return nil
		}

		fmt.Printf("Roadmap (%s)\n\n", state.Roadmap.Source)
		for _, t := range topics {
			ts := roadmap.StateOf(t, topics, nil)
			fmt.Printf("%s %-28s %-24s %-14s %-8s %s\n",
				ts.Icon(), t.ID, t.Title, t.Category.DisplayName(), t.Difficulty, ts.Label())
		}
		return nil
	},
}

var topicCompleteCmd = &cobra.Command{
	Use:   "complete <topic-id>",
	Short: "Mark a topic as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTopicCompletion(cmd, args[0], true)
	},
}

var topicUncompleteCmd = &cobra.Command{
	Use:   "uncomplete <topic-id>",
	Short: "Mark a topic as not completed (earned skill is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setTopicCompletion(cmd, args[0], false)
	},
}

var topicVerifyCmd = &cobra.Command{
	Use:   "verify <topic-id> <score>",
	Short: "Settle a test-gated completion with a verification score",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		score, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[1], err)
		}

		_, repo, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		state, err := loadState(ctx, repo, userID(cmd))
		if err != nil {
			return err
		}

		next, passed, err := userstate.ResolveVerification(state, args[0], score, time.Now())
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, next); err != nil {
			return fmt.Errorf("save user state: %w", err)
		}

		if passed {
			fmt.Printf("Passed with %d%%. Topic %q is now completed.\n", score, args[0])
		} else {
			fmt.Printf("Scored %d%%, below the passing mark of %d%%. Topic %q stays unlocked.\n",
				score, roadmap.PassingScore, args[0])
		}
		return nil
	},
}

func setTopicCompletion(cmd *cobra.Command, topicID string, completed bool) error {
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

	next, err := userstate.SetTopicCompletion(state, topicID, completed, time.Now())
	if err != nil {
		return err
	}
	if err := repo.Save(ctx, next); err != nil {
		return fmt.Errorf("save user state: %w", err)
	}

	if completed {
		fmt.Printf("Topic %q completed.\n", topicID)
	} else {
		fmt.Printf("Topic %q marked not completed.\n", topicID)
	}
	return nil
}

func init() {
	topicCmd.AddCommand(topicListCmd)
	topicCmd.AddCommand(topicCompleteCmd)
	topicCmd.AddCommand(topicUncompleteCmd)
	topicCmd.AddCommand(topicVerifyCmd)
}
