package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/pipeline"
)

func newBatchCmd(app *App) *cobra.Command {
	var model, apiKey string
	var noChart bool

	cmd := &cobra.Command{
		Use:   "batch <pdf-dir> <output-dir>",
		Short: "Process every questionnaire PDF in a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, _ := app.buildStack(model, apiKey)

			result, err := p.ProcessBatch(cmd.Context(), args[0], args[1], pipeline.Options{NoChart: noChart})
			if err != nil {
				return err
			}

			for _, item := range result.Items {
				if item.Err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "  FAIL %s: %v\n", item.File, item.Err)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "  OK   %s (%d artifacts)\n", item.File, len(item.Reports))
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d/%d files processed successfully\n",
				result.Succeeded(), len(result.Items))

			if result.Failed() > 0 {
				return fmt.Errorf("%d of %d files failed", result.Failed(), len(result.Items))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "LLM backend (openrouter, local)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for the openrouter backend")
	cmd.Flags().BoolVar(&noChart, "no-chart", false, "Skip radar chart generation")

	return cmd
}
