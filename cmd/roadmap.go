package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/llm"
	"github.com/careercompass/compass/internal/roadmap"
	"github.com/careercompass/compass/internal/roadmapgen"
	"github.com/careercompass/compass/internal/userstate"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate and edit the roadmap with AI",
}

var roadmapGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Replace the roadmap with a freshly generated one",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		goal, _ := cmd.Flags().GetString("goal")

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

		svc := roadmapgen.NewService(provider, roadmapgen.DefaultConfig())
		payload, err := svc.Generate(ctx, roadmapgen.GenerateInput{
			Profile: state.Profile,
			Skills:  state.Skills,
			Goal:    goal,
		})
		if err != nil {
			return err
		}

		next, err := userstate.ReplaceRoadmap(state, payload.Topics, roadmap.SourceAI, time.Now())
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, next); err != nil {
			return fmt.Errorf("save user state: %w", err)
		}

		fmt.Printf("Generated a roadmap with %d topics.\n", len(payload.Topics))
		return nil
	},
}

var roadmapEditCmd = &cobra.Command{
	Use:   "edit <instruction>",
	Short: "Edit the roadmap with a natural-language instruction",
	Long: "Sends the current roadmap and your instruction to the AI, validates the result, " +
		"and merges it in. Completion you have already earned is preserved unless " +
		"--trust-incoming is set.",
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		trustIncoming, _ := cmd.Flags().GetBool("trust-incoming")

		st, repo, cleanup, err := openRepos(ctx, cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		state, err := loadState(ctx, repo, userID(cmd))
		if err != nil {
			return err
		}
		if len(state.Roadmap.Topics) == 0 {
			return fmt.Errorf("no roadmap to edit; run `compass roadmap generate` first")
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		svc := roadmapgen.NewService(provider, roadmapgen.DefaultConfig())
		payload, err := svc.Edit(ctx, roadmapgen.EditInput{
			Current:     state.Roadmap.Topics,
			Instruction: strings.Join(args, " "),
		})
		if err != nil {
			return err
		}

		policy := roadmap.PreserveExisting
		if trustIncoming {
			policy = roadmap.TrustIncoming
		}

		next, err := userstate.ApplyRoadmapEdit(state, payload, policy, time.Now())
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, next); err != nil {
			return fmt.Errorf("save user state: %w", err)
		}

		fmt.Printf("Roadmap updated: %d topics.\n", len(next.Roadmap.Topics))
		fmt.Printf("AI: %s\n", payload.Explanation)
		return nil
	},
}

func init() {
	roadmapGenerateCmd.Flags().String("goal", "placement at a product company", "Preparation goal to steer generation")
	roadmapEditCmd.Flags().Bool("trust-incoming", false, "Let the edit overwrite completion flags")

	roadmapCmd.AddCommand(roadmapGenerateCmd)
	roadmapCmd.AddCommand(roadmapEditCmd)
}
