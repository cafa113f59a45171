package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/leakgate/leakgate/internal/rules"
)

// gendocs regenerates the rules table in README.md between the markers
// <!-- BEGIN:RULES --> and <!-- END:RULES -->.
func init() {
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Regenerate the README rules table",
		RunE: func(_ *cobra.Command, _ []string) error {
			path := "README.md"
			b, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			start := []byte("<!-- BEGIN:RULES -->")
			end := []byte("<!-- END:RULES -->")
			i := bytes.Index(b, start)
			j := bytes.Index(b, end)
			if i < 0 || j < 0 || j <= i {
				return fmt.Errorf("markers not found in README.md")
			}

			var buf bytes.Buffer
			buf.WriteString("\n| Rule | Severity |\n|---|---|\n")
			for _, r := range rules.Registry() {
				fmt.Fprintf(&buf, "| %s | %s |\n", r.Name, r.Severity)
			}

			out := append([]byte{}, b[:i+len(start)]...)
			out = append(out, buf.Bytes()...)
			out = append(out, b[j:]...)
			if err := os.WriteFile(path, out, 0644); err != nil {
				return err
			}
			fmt.Println("Updated rules table in", path)
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
