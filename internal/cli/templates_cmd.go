package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/report"
)

func newTemplatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Create sample document templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := report.NewGenerator(app.TemplatesDir, app.OutputDir, app.Log)
			if err != nil {
				return err
			}
			if err := gen.CreateSampleTemplates(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Templates ready in %s\n", app.TemplatesDir)
			return nil
		},
	}
}
