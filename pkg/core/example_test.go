package core_test

import (
	"fmt"
	"os"

	"github.com/leakgate/leakgate/pkg/core"
)

// ExampleScan demonstrates scanning a directory tree.
func ExampleScan() {
	cfg := core.Config{
		Root:            ".",
		IncludeGlobs:    "**/*.env",
		MaxBytes:        1024 * 1024,
		DefaultExcludes: true,
	}

	findings, err := core.Scan(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", err)
		return
	}

	if len(findings) == 0 {
		fmt.Println("No secrets found.")
	} else {
		fmt.Printf("Found %d potential secrets.\n", len(findings))
		_ = core.MarshalFindings(os.Stdout, findings)
	}
}

// ExampleScan_fileList shows the explicit-path mode used by hooks: files
// are scanned in argument order and unreadable paths are silently skipped.
func ExampleScan_fileList() {
	findings, err := core.Scan(core.Config{
		Paths: []string{"config.env", "deploy/secrets.yml"},
	})
	if err != nil {
		panic(err)
	}
	for _, f := range findings {
		fmt.Printf("%s:%d - Potential %s\n", f.Path, f.Line, f.Rule)
	}
}
