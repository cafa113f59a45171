package report

import (
	"fmt"
	"io"

	"github.com/leakgate/leakgate/internal/types"
	"github.com/olekukonko/tablewriter"
)

// PrintTable renders findings as a bordered table with masked matches.
// Row order follows the finding order, same as PrintText.
func PrintTable(w io.Writer, findings []types.Finding, opts PrintOptions) {
	if len(findings) == 0 {
		fmt.Fprintln(w, "No secrets found ✅")
		printFooter(w, findings, opts)
		return
	}
	table := tablewriter.NewWriter(w)
	table.Header("SEVERITY", "RULE", "LOCATION", "MATCH")
	for _, f := range findings {
		_ = table.Append([]string{
			string(f.Severity),
			f.Rule,
			fmt.Sprintf("%s:%d", f.Path, f.Line),
			MaskValue(f.Match),
		})
	}
	_ = table.Render()
	printFooter(w, findings, opts)
}
