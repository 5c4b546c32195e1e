package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newValidateCmd(app *App) *cobra.Command {
	var model, apiKey string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check directories and LLM connectivity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, requester, client := app.buildStack(model, apiKey)

			checks := []struct {
				name string
				ok   bool
			}{
				{"output directory", dirUsable(app.OutputDir)},
				{"templates directory", dirUsable(app.TemplatesDir)},
				{"llm reachable", client.Available(cmd.Context())},
				{"llm responding", requester.TestConnection(cmd.Context())},
			}

			failed := 0
			for _, c := range checks {
				mark := "ok"
				if !c.ok {
					mark = "FAIL"
					failed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %-20s %s\n", c.name, mark)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d checks failed", failed, len(checks))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "All checks passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "", "LLM backend (openrouter, local)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for the openrouter backend")

	return cmd
}

// dirUsable reports whether the directory exists or can be created.
func dirUsable(dir string) bool {
	if dir == "" {
		return false
	}
	return os.MkdirAll(dir, 0o755) == nil
}
