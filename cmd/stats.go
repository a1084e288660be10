package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/metrics"
	"github.com/careercompass/compass/internal/roadmap"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show readiness score and progress breakdown",
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

		d := metrics.Compute(state)

		fmt.Printf("Placement Readiness: %d%%\n", d.ReadinessScore)
		fmt.Println(strings.Repeat("─", 40))

		fmt.Println("Skills")
		for _, c := range roadmap.Categories() {
			fmt.Printf("  %-15s %3d/100\n", c.DisplayName(), state.Skills.Get(c))
		}
		fmt.Printf("  %-15s %3d/100\n", "Average", d.SkillsAverage)
		fmt.Println()

		fmt.Printf("Roadmap   %d/%d topics (%d%%)\n", d.CompletedTopicsCount, d.TotalTopicsCount, d.RoadmapProgress)
		fmt.Printf("Projects  %d completed (score %d)\n", d.CompletedProjectsCount, d.ProjectsScore)
		fmt.Printf("Tests     %d taken, average %d%%\n", len(state.MockTests), d.AverageMockTestScore)
		fmt.Println()

		fmt.Printf("Strongest: %s (%d)\n", d.StrongestSkill.Name, d.StrongestSkill.Value)
		fmt.Printf("Weakest:   %s (%d)\n", d.WeakestSkill.Name, d.WeakestSkill.Value)
		return nil
	},
}
