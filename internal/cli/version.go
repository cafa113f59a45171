package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakgate/leakgate/internal/update"
)

func init() {
	var noUpdateCheck bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the leakgate version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("leakgate", version)
			if latest, newer, _ := update.Check(version, noUpdateCheck); newer {
				fmt.Fprintf(os.Stderr, "A newer release is available: %s (run 'leakgate self-update')\n", latest)
			}
		},
	}
	cmd.Flags().BoolVar(&noUpdateCheck, "no-update-check", false, "disable the release check")
	rootCmd.AddCommand(cmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "self-update",
		Short: "Update leakgate to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			return selfUpdate()
		},
	})
}
