package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
)

func (a *app) newFillCmd() *cobra.Command {
	var (
		values string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "fill FILE",
		Short: "Fill a schema interactively in the terminal and print the submission",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bindFlags(cmd, "locale", "format")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format := tui.OutputFormat(a.v.GetString("format"))
			switch format {
			case tui.OutputFormatJSON, tui.OutputFormatFormURLEncoded, tui.OutputFormatPrettyText:
			default:
				return fmt.Errorf("cli: unknown format %q (want json, form or pretty)", format)
			}

			schema, _, err := a.loadSchema(args[0])
			if err != nil {
				return err
			}
			prefill, err := loadValues(values)
			if err != nil {
				return err
			}

			filler := tui.New(
				tui.WithPromptDriver(a.prompts),
				tui.WithOutputFormat(format),
				tui.WithLogger(a.logger),
			)
			data, err := filler.Run(cmd.Context(), schema, a.v.GetString("locale"), prefill)
			if err != nil {
				return err
			}
			return writeOutput(out, data, func(b []byte) error {
				_, err := cmd.OutOrStdout().Write(append(b, '\n'))
				return err
			})
		},
	}
	cmd.Flags().String("locale", "", "locale to fill in (defaults to the schema default)")
	cmd.Flags().String("format", string(tui.OutputFormatJSON), "submission format (json, form, pretty)")
	cmd.Flags().StringVar(&values, "values", "", "JSON or YAML file with prefilled answers")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout if empty)")
	return cmd
}
