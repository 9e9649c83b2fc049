package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/loader"
)

func (a *app) newValidateCmd() *cobra.Command {
	var (
		asJSON bool
		fix    string
	)
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a schema document and list the repairs import applies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, report, err := a.loadSchema(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if fix != "" {
				data, err := loader.Export(schema)
				if err != nil {
					return err
				}
				if err := writeOutput(fix, data, nil); err != nil {
					return err
				}
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			for _, r := range report.Repairs {
				fmt.Fprintf(out, "repaired %s: %s\n", r.Path, r.Message)
			}
			mode := "flat"
			if schema.StepMode() {
				mode = fmt.Sprintf("%d steps", len(schema.Groups()))
			}
			fmt.Fprintf(out, "%s: valid (%s, locales %v)\n", args[0], mode, schema.SupportedLocales)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the repair report as JSON")
	cmd.Flags().StringVar(&fix, "fix", "", "write the repaired schema as JSON to this path")
	return cmd
}
