package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyamvada/skillscope/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show analysis statistics from the local journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, st, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profileID, _ := cmd.Flags().GetString("profile")
		records, err := st.EventRepo().QueryAnalyses(cmd.Context(), store.QueryOpts{ProfileID: profileID})
		if err != nil {
			return fmt.Errorf("query journal: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No analyses recorded yet.")
			return nil
		}

		var succeeded, scored int
		var scoreSum, latencySum float64
		for _, r := range records {
			if r.Success {
				succeeded++
			}
			if r.HasScore {
				scored++
				scoreSum += r.GapScore
			}
			latencySum += float64(r.LatencyMs)
		}

		fmt.Printf("Analyses run:    %d\n", len(records))
		fmt.Printf("Succeeded:       %d (%.0f%%)\n", succeeded, 100*float64(succeeded)/float64(len(records)))
		if scored > 0 {
			fmt.Printf("Avg gap score:   %.2f\n", scoreSum/float64(scored))
		}
		fmt.Printf("Avg latency:     %.0f ms\n", latencySum/float64(len(records)))
		fmt.Printf("Last run:        %s\n", records[0].Timestamp.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	statsCmd.Flags().String("profile", "", "Restrict stats to one profile id")
}
