package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/llm"
	"github.com/careercompass/compass/internal/mocktest"
	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/userstate"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Generate and record mock tests",
}

var testGenerateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a mock test, take it, and record the result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		categoryFlag, _ := cmd.Flags().GetString("category")
		count, _ := cmd.Flags().GetInt("count")

		category := roadmap.Category(categoryFlag)

		st, repo, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		state, err := loadState(ctx, repo, userID(cmd))
		if err != nil {
			return err
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := mocktest.NewService(provider, mocktest.DefaultConfig())
		set, err := svc.Generate(ctx, mocktest.GenerateInput{
			Topic:      args[0],
			Category:   category,
			Count:      count,
			SkillLevel: state.Skills.Get(category),
		})
		if err != nil {
			return err
		}

		answers, err := runQuiz(set)
		if err != nil {
			return err
		}

		correct := mocktest.Grade(*set, answers)
		next, err := userstate.RecordMockTest(state, userstate.MockTestInput{
			Topic:          set.Topic,
			Category:       set.Category,
			TotalQuestions: len(set.Questions),
			CorrectAnswers: correct,
		}, time.Now())
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, next); err != nil {
			return fmt.Errorf("save user state: %w", err)
		}

		recorded := next.MockTests[len(next.MockTests)-1]
		fmt.Printf("\nScore: %d%% (%d/%d correct). %s skill is now %d.\n",
			recorded.Score, correct, len(set.Questions),
			category.DisplayName(), next.Skills.Get(category))
		return nil
	},
}

var testRecordCmd = &cobra.Command{
	Use:   "record <topic>",
	Short: "Record a test result taken elsewhere",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		categoryFlag, _ := cmd.Flags().GetString("category")
		total, _ := cmd.Flags().GetInt("total")
		correct, _ := cmd.Flags().GetInt("correct")

		_, repo, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		state, err := loadState(ctx, repo, userID(cmd))
		if err != nil {
			return err
		}

		next, err := userstate.RecordMockTest(state, userstate.MockTestInput{
			Topic:          args[0],
			Category:       roadmap.Category(categoryFlag),
			TotalQuestions: total,
			CorrectAnswers: correct,
		}, time.Now())
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, next); err != nil {
			return fmt.Errorf("save user state: %w", err)
		}

		recorded := next.MockTests[len(next.MockTests)-1]
		fmt.Printf("Recorded %d%% on %q.\n", recorded.Score, recorded.Topic)
		return nil
	},
}

// runQuiz asks each question on stdin and returns the chosen option
// indexes. Unanswerable input counts as a wrong answer (-1).
func runQuiz(set *mocktest.QuestionSet) ([]int, error) {
	reader := bufio.NewReader(os.Stdin)
	answers := make([]int, 0, len(set.Questions))

	fmt.Printf("Mock test: %s (%s), %d questions\n\n", set.Topic, set.Category.DisplayName(), len(set.Questions))

	for i, q := range set.Questions {
		fmt.Printf("Q%d. %s\n", i+1, q.Prompt)
		for j, opt := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, opt)
		}
		fmt.Printf("Your answer [1-%d]: ", len(q.Options))

		line, err := reader.ReadString('\n')
		if err != nil {
			return nil, fmt.Errorf("read answer: %w", err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(q.Options) {
			answers = append(answers, -1)
		} else {
			answers = append(answers, choice-1)
		}

		if answers[i] == q.AnswerIndex {
			fmt.Println("Correct.")
		} else {
			fmt.Printf("Incorrect. %s\n", q.Explanation)
		}
		fmt.Println()
	}

	return answers, nil
}

func init() {
	testGenerateCmd.Flags().String("category", string(roadmap.CategoryDSA), "Test category: dsa or fundamentals")
	testGenerateCmd.Flags().Int("count", 0, "Number of questions (default 5, max 20)")

	testRecordCmd.Flags().String("category", string(roadmap.CategoryDSA), "Test category: dsa or fundamentals")
	testRecordCmd.Flags().Int("total", 0, "Total questions")
	testRecordCmd.Flags().Int("correct", 0, "Correct answers")

	testCmd.AddCommand(testGenerateCmd)
	testCmd.AddCommand(testRecordCmd)
}
