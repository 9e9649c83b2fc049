package cli

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
)

func (a *app) newPreviewCmd() *cobra.Command {
	var (
		step      int
		values    string
		action    string
		templates string
		out       string
	)
	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render one step of a schema as HTML or as a JSON render plan",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.bindFlags(cmd, "locale", "renderer")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _, err := a.loadSchema(args[0])
			if err != nil {
				return err
			}
			prefill, err := loadValues(values)
			if err != nil {
				return err
			}

			var htmlOpts []html.Option
			if templates != "" {
				htmlOpts = append(htmlOpts, html.WithTemplatesDir(templates))
			}
			htmlRenderer, err := html.New(htmlOpts...)
			if err != nil {
				return err
			}
			registry, err := render.NewDefaultRegistry(htmlRenderer)
			if err != nil {
				return err
			}

			locale := a.v.GetString("locale")
			name := a.v.GetString("renderer")
			plan := render.Project(schema, locale, prefill, render.WithStep(step))
			a.logger.Debug().
				Str("renderer", name).
				Str("locale", plan.Locale).
				Int("step", plan.Step.Index).
				Msg("rendering preview")

			data, err := registry.Render(cmd.Context(), name, plan, render.RenderOptions{Action: action})
			if err != nil {
				return err
			}
			return writeOutput(out, data, func(b []byte) error {
				_, err := cmd.OutOrStdout().Write(append(b, '\n'))
				return err
			})
		},
	}
	cmd.Flags().String("locale", "", "locale to render (defaults to the schema default)")
	cmd.Flags().String("renderer", "html", "renderer name (html, json)")
	cmd.Flags().IntVar(&step, "step", 0, "zero-based step index")
	cmd.Flags().StringVar(&values, "values", "", "JSON or YAML file with prefilled answers")
	cmd.Flags().StringVar(&action, "action", "", "form action URL")
	cmd.Flags().StringVar(&templates, "templates", "", "directory overriding the built-in HTML templates")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (stdout if empty)")
	return cmd
}
