package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakgate/leakgate/internal/config"
	"github.com/leakgate/leakgate/internal/hook"
)

var (
	hookNonInteractive bool
	hookMaxBytes       int64
)

// hook is what the installed pre-commit script runs. It scans the staged
// files and, on findings, asks the operator for an override on the
// controlling terminal; piped/CI runs block without asking.
func init() {
	cmd := &cobra.Command{
		Use:   "hook",
		Short: "Run the pre-commit check against staged files",
		Run: func(_ *cobra.Command, _ []string) {
			var lcfg config.FileConfig
			if c, err := config.LoadLocal("."); err == nil {
				lcfg = c
			}
			nonInteractive := hookNonInteractive
			if lcfg.Interactive != nil && !*lcfg.Interactive {
				nonInteractive = true
			}
			os.Exit(hook.Run(hook.Options{
				MaxBytes:       pickInt64(hookMaxBytes, lcfg.MaxBytes, nil),
				NoColor:        pickBool(flagNoColor, lcfg.NoColor, nil),
				NonInteractive: nonInteractive,
			}))
		},
	}
	cmd.Flags().BoolVar(&hookNonInteractive, "non-interactive", false, "never prompt; block on any finding")
	cmd.Flags().Int64Var(&hookMaxBytes, "max-bytes", 0, "skip files larger than this (default 1 MiB)")
	rootCmd.AddCommand(cmd)

	var force bool
	install := &cobra.Command{
		Use:   "install-hook",
		Short: "Install the pre-commit hook into the current repository",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := hook.Install(".", force)
			if err != nil {
				return err
			}
			fmt.Println("Installed", path)
			return nil
		},
	}
	install.Flags().BoolVar(&force, "force", false, "overwrite an existing foreign pre-commit hook")
	rootCmd.AddCommand(install)

	uninstall := &cobra.Command{
		Use:   "uninstall-hook",
		Short: "Remove the pre-commit hook if leakgate installed it",
		RunE: func(_ *cobra.Command, _ []string) error {
			return hook.Uninstall(".")
		},
	}
	rootCmd.AddCommand(uninstall)
}
