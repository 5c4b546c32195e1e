package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/cli"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/llm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Local .env is optional; environment variables win when both are set.
	_ = godotenv.Load()

	templatesDir := os.Getenv("PLANGEN_TEMPLATES_DIR")
	if templatesDir == "" {
		templatesDir = "templates"
	}
	outputDir := os.Getenv("PLANGEN_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "output"
	}

	app := &cli.App{
		LLMConfig:    llm.LoadConfig(),
		TemplatesDir: templatesDir,
		OutputDir:    outputDir,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
