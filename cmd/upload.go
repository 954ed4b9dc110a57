package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/priyamvada/skillscope/internal/analysis"
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Create a profile from a free-text resume or bio file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			return fmt.Errorf("--file is required")
		}

		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		_, client, st, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		name, _ := cmd.Flags().GetString("name")
		role, _ := cmd.Flags().GetString("role")

		result, err := client.UploadProfile(cmd.Context(), analysis.UploadInput{
			ProfileText: string(text),
			Name:        name,
			CurrentRole: role,
		})
		if err != nil {
			return fmt.Errorf("%s", analysis.MessageFor(err))
		}

		fmt.Println("Profile created:", result.ProfileID)
		if result.Message != "" {
			fmt.Println(result.Message)
		}
		return nil
	},
}

func init() {
	uploadCmd.Flags().String("file", "", "Path to a plain-text resume or bio")
	uploadCmd.Flags().String("name", "", "Profile name (optional, extracted from text otherwise)")
	uploadCmd.Flags().String("role", "", "Current role (optional)")
}
