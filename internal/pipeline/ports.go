package pipeline

import (
	"context"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/pdfdoc"
)

// Reader opens a source document. Satisfied by pdfdoc.NewReader.
type Reader interface {
	Open(path string) (*pdfdoc.Content, error)
}

// Requester produces the narrative content set. Satisfied by
// content.NewRequester; always total, failures resolve to fallbacks inside.
type Requester interface {
	RequestAll(ctx context.Context, rec *domain.QuestionnaireRecord) domain.GeneratedContent
}

// Renderer draws the assessment chart. Satisfied by chart.NewRenderer.
type Renderer interface {
	Render(scales map[string]int, outPath, title string) (string, error)
}

// Generator assembles the Word documents for one output directory.
type Generator interface {
	GenerateAll(rec *domain.QuestionnaireRecord, content domain.GeneratedContent, chartPath string) (domain.ReportSet, error)
}

// GeneratorFactory builds a Generator bound to an output directory. Batch
// runs need one per file subdirectory.
type GeneratorFactory func(outputDir string) (Generator, error)
