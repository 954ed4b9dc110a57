package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/priyamvada/skillscope/internal/analysis"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage profiles without entering the TUI",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all profiles on the service",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, st, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		profiles, err := client.ListProfiles(cmd.Context())
		if err != nil {
			return fmt.Errorf("%s", analysis.MessageFor(err))
		}

		if len(profiles) == 0 {
			fmt.Println("No profiles found.")
			return nil
		}
		for _, p := range profiles {
			fmt.Printf("%-36s  %-24s  %s\n", p.ID, p.Name, p.CurrentRole)
		}
		return nil
	},
}

var profilesDeleteCmd = &cobra.Command{
	Use:   "delete <profile-id>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, st, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if err := client.DeleteProfile(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("%s", analysis.MessageFor(err))
		}
		fmt.Println("Profile deleted.")
		return nil
	},
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesDeleteCmd)
}
