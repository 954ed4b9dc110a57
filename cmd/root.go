package cmd

import (
	"github.com/spf13/cobra"

	"github.com/priyamvada/skillscope/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "skillscope",
	Short: "Terminal client for skill gap analysis",
	Long:  "Skillscope — terminal client for the skill gap analysis service: manage profiles, run analyses, and browse gap reports.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("server", "", "Analysis service base URL (overrides SKILLSCOPE_SERVER_URL env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite journal file (overrides SKILLSCOPE_DB env var)")

	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(reportsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the journal path using --db flag (highest
// priority), then SKILLSCOPE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, envPath string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if envPath != "" {
		return envPath, store.EnsureDir(envPath)
	}
	return store.DefaultDBPath()
}
