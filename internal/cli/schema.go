package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/internal/docschema"
)

func (a *app) newSchemaCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of form documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := docschema.Generate()
			if err != nil {
				return err
			}
			return writeOutput(out, data, func(b []byte) error {
				_, err := cmd.OutOrStdout().Write(append(b, '\n'))
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout if empty)")
	return cmd
}
