package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakgate/leakgate/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List detection rules in evaluation order",
		RunE: func(_ *cobra.Command, _ []string) error {
			if flagJSON {
				type ruleJSON struct {
					Name     string `json:"name"`
					Severity string `json:"severity"`
					Pattern  string `json:"pattern"`
				}
				var out []ruleJSON
				for _, r := range rules.Registry() {
					out = append(out, ruleJSON{r.Name, string(r.Severity), r.Pattern.String()})
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}
			for _, r := range rules.Registry() {
				fmt.Printf("%-22s %-7s %s\n", r.Name, r.Severity, r.Pattern.String())
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
