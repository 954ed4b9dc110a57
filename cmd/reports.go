package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyamvada/skillscope/internal/analysis"
)

var reportsCmd = &cobra.Command{
	Use:   "reports <profile-id>",
	Short: "List past gap reports for a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, st, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		reports, err := client.ListReports(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("%s", analysis.MessageFor(err))
		}

		if len(reports) == 0 {
			fmt.Println("No reports found.")
			return nil
		}
		for _, r := range reports {
			fmt.Printf("%-36s  %-28s  score %.2f  %s\n", r.ID, r.TargetRole, r.OverallGapScore, r.CreatedAt)
		}
		return nil
	},
}
