package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/pipeline"
)

func newProcessCmd(app *App) *cobra.Command {
	var output, model, apiKey string
	var noChart bool

	cmd := &cobra.Command{
		Use:   "process <pdf>",
		Short: "Process one questionnaire PDF into reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, _ := app.buildStack(model, apiKey)

			outDir := output
			if outDir == "" {
				outDir = app.OutputDir
			}

			reports, err := p.ProcessFile(cmd.Context(), args[0], outDir, pipeline.Options{NoChart: noChart})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Generated files:")
			printReports(cmd, reports)
			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output directory for generated reports")
	cmd.Flags().StringVar(&model, "model", "", "LLM backend (openrouter, local)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for the openrouter backend")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip radar chart generation")

	return cmd
}

func printReports(cmd *cobra.Command, reports domain.ReportSet) {
	kinds := make([]string, 0, len(reports))
	for k := range reports {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-11s %s\n", k+":", reports[domain.ReportKind(k)])
	}
}
