package cli

import (
	"github.com/spf13/cobra"

	"github.com/leakgate/leakgate/internal/engine"
	"github.com/leakgate/leakgate/internal/tui"
	"github.com/leakgate/leakgate/internal/types"
)

func init() {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Scan and browse findings interactively",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg := resolveScanConfig()
			rescan := func() ([]types.Finding, error) {
				return engine.Scan(cfg)
			}
			findings, err := rescan()
			if err != nil {
				return err
			}
			return tui.Run(findings, cfg.Root, rescan)
		},
	}
	// browse reuses the scan selection flags
	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 1 MiB)")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list")
	rootCmd.AddCommand(cmd)
}
