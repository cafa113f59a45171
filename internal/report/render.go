// Package report renders findings for humans. The one-line-per-finding
// format is a stable contract consumed by the surrounding hook:
// <path>:<line> - Potential <rule>.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/leakgate/leakgate/internal/types"
)

type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int

	// Repo and Branch, when known, identify where the findings came from.
	Repo   string
	Branch string
}

// PrintText writes the alert banner and one line per finding, in the order
// the findings were produced (file argument order, then line number).
func PrintText(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
		printFooter(w, findings, opts)
		return
	}
	fmt.Fprintln(w, "⚠️  Potential secrets detected! Review before committing.")
	for _, f := range findings {
		line := fmt.Sprintf("%s:%d - Potential %s", f.Path, f.Line, f.Rule)
		if opts.NoColor {
			fmt.Fprintln(w, line)
		} else {
			fmt.Fprintf(w, "%s%s\x1b[0m\n", severityColor(f.Severity), line)
		}
	}
	printFooter(w, findings, opts)
}

func printFooter(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	high, med, low := 0, 0, 0
	for _, f := range findings {
		switch f.Severity {
		case types.SevHigh:
			high++
		case types.SevMed:
			med++
		default:
			low++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Findings: %d (high: %d, medium: %d, low: %d)\n", len(findings), high, med, low)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files scanned: %d\n", opts.FilesScanned)
	}
	if opts.Repo != "" {
		if opts.Branch != "" {
			fmt.Fprintf(w, "Repository: %s (%s)\n", opts.Repo, opts.Branch)
		} else {
			fmt.Fprintf(w, "Repository: %s\n", opts.Repo)
		}
	}
}

// MaskValue hides the middle of a matched value so reports can be shared
// without re-leaking the secret.
func MaskValue(s string) string {
	if len(s) <= 8 {
		return "********"
	}
	return s[:4] + "…" + s[len(s)-4:]
}

func severityColor(s types.Severity) string {
	switch s {
	case types.SevHigh:
		return "\x1b[31m" // red
	case types.SevMed:
		return "\x1b[33m" // yellow
	default:
		return "\x1b[36m" // cyan
	}
}
