// Package cli wires the leakgate command tree. Commands resolve
// configuration (CLI > local file > global file) and render results; all
// detection happens in the engine.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON    bool
	flagTable   bool
	flagNoColor bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the leakgate CLI.
var rootCmd = &cobra.Command{
	Use:           "leakgate",
	Short:         "Catch secrets before they reach version control",
	Long:          "Leakgate scans staged files, explicit file lists or whole trees for secret-shaped strings and reports them with file/line attribution.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the leakgate CLI. It should be called by the main package.
// Exit codes: 0 clean, 1 findings or usage error, 2 internal error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "render findings as a bordered table")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
}
