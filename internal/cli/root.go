// Package cli defines the plangen command tree.
package cli

import (
	"go.uber.org/zap"

	"github.com/spf13/cobra"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/chart"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/content"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/llm"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/logger"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/pdfdoc"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/pipeline"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/report"
)

// App holds the configuration and wiring shared by all commands.
type App struct {
	LLMConfig    llm.Config
	TemplatesDir string
	OutputDir    string
	Log          *zap.Logger
}

// NewRootCmd creates the top-level "plangen" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:           "plangen",
		Short:         "Generate fitness and nutrition plans from questionnaire PDFs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			app.Log = logger.New(logLevel, logFormat)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "auto", "Log format (auto, console, json)")

	root.AddCommand(
		newProcessCmd(app),
		newBatchCmd(app),
		newValidateCmd(app),
		newTemplatesCmd(app),
	)

	return root
}

// buildStack wires a pipeline for one invocation, applying per-command
// backend overrides on top of the loaded configuration.
func (app *App) buildStack(model, apiKey string) (*pipeline.Pipeline, content.Requester, llm.Client) {
	cfg := app.LLMConfig
	if model != "" {
		cfg.Backend = llm.Backend(model)
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}

	client := llm.NewClient(cfg, llm.NewZapObserver(app.Log))
	requester := content.NewRequester(client)

	factory := func(outputDir string) (pipeline.Generator, error) {
		gen, err := report.NewGenerator(app.TemplatesDir, outputDir, app.Log)
		if err != nil {
			return nil, err
		}
		if err := gen.CreateSampleTemplates(); err != nil {
			return nil, err
		}
		return gen, nil
	}

	p := pipeline.New(pdfdoc.NewReader(), requester, chart.NewRenderer(), factory, app.Log)
	return p, requester, client
}
