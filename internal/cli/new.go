package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/loader"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

func (a *app) newNewCmd() *cobra.Command {
	var (
		title   string
		format  string
		steps   int
		locales []string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a schema document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b := builder.NewEmpty(title, builder.WithLogger(a.logger))
			for _, locale := range locales {
				if err := b.AddLocale(locale); err != nil {
					return err
				}
			}
			if _, err := b.AddField(model.FieldTypeText, ""); err != nil {
				return err
			}
			if steps > 1 {
				if err := b.EnableStepMode(); err != nil {
					return err
				}
				// Enabling step mode already produced two steps.
				for i := 2; i < steps; i++ {
					if _, err := b.AddField(model.FieldTypeGroup, ""); err != nil {
						return err
					}
				}
			}

			var (
				data []byte
				err  error
			)
			switch format {
			case "yaml", "yml":
				data, err = loader.ExportYAML(b.Schema())
			case "json":
				data, err = loader.Export(b.Schema())
			default:
				return fmt.Errorf("cli: unknown format %q (want yaml or json)", format)
			}
			if err != nil {
				return err
			}
			return writeOutput(out, data, func(b []byte) error {
				_, err := cmd.OutOrStdout().Write(b)
				return err
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "Untitled form", "form title")
	cmd.Flags().StringVar(&format, "format", "yaml", "document format (yaml, json)")
	cmd.Flags().IntVar(&steps, "steps", 0, "number of steps (0 or 1 for a flat form)")
	cmd.Flags().StringSliceVar(&locales, "locale", nil, "additional supported locales")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout if empty)")
	return cmd
}
