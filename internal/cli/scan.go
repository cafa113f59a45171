package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/leakgate/leakgate/internal/config"
	"github.com/leakgate/leakgate/internal/engine"
	"github.com/leakgate/leakgate/internal/report"
	"github.com/leakgate/leakgate/pkg/core"
)

var (
	flagPath            string
	flagInclude         string
	flagExclude         string
	flagMaxBytes        int64
	flagDefaultExcludes bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a working tree for secrets",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "path to scan")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
	cmd.Flags().Int64Var(&flagMaxBytes, "max-bytes", 0, "skip files larger than this (default 1 MiB)")
	cmd.Flags().BoolVar(&flagDefaultExcludes, "default-excludes", true, "apply built-in exclude list (node_modules, dist, images, etc.)")
}

func runScan(_ *cobra.Command, _ []string) error {
	cfg := resolveScanConfig()
	res, err := engine.ScanWithStats(cfg)
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

// resolveScanConfig merges CLI flags over local and global file config.
func resolveScanConfig() engine.Config {
	abs, _ := filepath.Abs(flagPath)
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal(abs); err == nil {
		lcfg = c
	}
	// --default-excludes=false always disables; config may disable the default.
	de := flagDefaultExcludes
	if de {
		if lcfg.DefaultExcludes != nil {
			de = *lcfg.DefaultExcludes
		} else if gcfg.DefaultExcludes != nil {
			de = *gcfg.DefaultExcludes
		}
	}
	return engine.Config{
		Root:            abs,
		IncludeGlobs:    pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs:    pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		MaxBytes:        pickInt64(flagMaxBytes, lcfg.MaxBytes, gcfg.MaxBytes),
		DefaultExcludes: de,
		NoColor:         pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor),
	}
}
