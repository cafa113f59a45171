// Package hook is the pre-commit collaborator around the scan engine. The
// engine itself never prompts or blocks; deciding whether a flagged commit
// proceeds is this package's job.
package hook

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/leakgate/leakgate/internal/engine"
	"github.com/leakgate/leakgate/internal/git"
	"github.com/leakgate/leakgate/internal/report"
)

// Options configures one hook run.
type Options struct {
	Root           string
	MaxBytes       int64
	NoColor        bool
	NonInteractive bool // never prompt, even on a terminal
	Out            io.Writer
	Err            io.Writer
}

// Run scans the staged files and returns the hook exit code: 0 lets the
// commit proceed, 1 blocks it. Findings plus an operator override also
// yield 0; the override question is asked on the controlling terminal so
// it works when git pipes stdin.
func Run(opts Options) int {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	root := opts.Root
	if root == "" {
		root = "."
	}

	wtRoot, staged, err := git.StagedFiles(root)
	if err != nil {
		fmt.Fprintln(opts.Err, "leakgate:", err)
		return 1
	}
	if len(staged) == 0 {
		return 0
	}

	res, err := engine.ScanWithStats(engine.Config{
		Paths:    staged,
		Root:     wtRoot,
		MaxBytes: opts.MaxBytes,
		NoColor:  opts.NoColor,
	})
	if err != nil {
		fmt.Fprintln(opts.Err, "leakgate:", err)
		return 1
	}
	if len(res.Findings) == 0 {
		return 0
	}

	repo, _, branch := git.RepoMetadata(wtRoot)
	report.PrintText(opts.Out, res.Findings, report.PrintOptions{
		NoColor:      opts.NoColor,
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		Repo:         repo,
		Branch:       branch,
	})
	if opts.NonInteractive || !term.IsTerminal(int(os.Stderr.Fd())) {
		return 1
	}
	if confirmOverride(opts.Err) {
		return 0
	}
	return 1
}

// confirmOverride asks on /dev/tty and defaults to no.
func confirmOverride(errw io.Writer) bool {
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	defer tty.Close()
	fmt.Fprint(errw, "Commit anyway? [y/N] ")
	answer, err := bufio.NewReader(tty).ReadString('\n')
	if err != nil {
		return false
	}
	return ParseAnswer(answer)
}

// ParseAnswer interprets an override reply; anything but yes blocks.
func ParseAnswer(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}
