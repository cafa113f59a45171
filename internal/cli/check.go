package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakgate/leakgate/internal/engine"
	"github.com/leakgate/leakgate/internal/report"
	"github.com/leakgate/leakgate/pkg/core"
)

var checkMaxBytes int64

// check is the plain engine invocation: explicit file arguments in, report
// out. Missing, oversized and binary files are silently skipped; findings
// exit 1 so an enclosing hook or script can gate on the status.
func init() {
	cmd := &cobra.Command{
		Use:   "check <file> [file...]",
		Short: "Scan the given files for secrets",
		RunE:  runCheck,
	}
	cmd.Flags().Int64Var(&checkMaxBytes, "max-bytes", 0, "skip files larger than this (default 1 MiB)")
	rootCmd.AddCommand(cmd)
}

func runCheck(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: leakgate check <file> [file...]")
		os.Exit(1)
	}
	res, err := engine.ScanWithStats(engine.Config{
		Paths:    args,
		MaxBytes: checkMaxBytes,
		NoColor:  flagNoColor,
	})
	if err != nil {
		return err
	}
	switch {
	case flagJSON:
		if err := core.MarshalFindings(os.Stdout, res.Findings); err != nil {
			return err
		}
	case flagTable:
		report.PrintTable(os.Stdout, res.Findings, printOptions(res))
	default:
		report.PrintText(os.Stdout, res.Findings, printOptions(res))
	}
	if len(res.Findings) > 0 {
		os.Exit(1)
	}
	return nil
}

func printOptions(res engine.Result) report.PrintOptions {
	return report.PrintOptions{
		NoColor:      flagNoColor,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
	}
}
