package cmd

import (
	"github.com/spf13/cobra"

	"github.com/careercompass/compass/internal/store"
	"github.com/careercompass/compass/internal/userstate"
)

var rootCmd = &cobra.Command{
	Use:   "compass",
	Short: "Placement preparation tracker",
	Long:  "Compass — terminal app that tracks skills, roadmap progress, projects, and mock tests on the road to placement.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COMPASS_DB env var)")
	rootCmd.PersistentFlags().String("user", userstate.DemoUserID, "User ID to operate on")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(topicCmd)
	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COMPASS_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func userID(cmd *cobra.Command) string {
	id, _ := cmd.Flags().GetString("user")
	if id == "" {
		return userstate.DemoUserID
	}
	return id
}
