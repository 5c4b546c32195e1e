// Package pipeline orchestrates a full questionnaire run: read the source
// document, extract structured data, render the assessment chart and request
// narrative content concurrently, then assemble the Word documents.
package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/questionnaire"
)

// ErrNoInput indicates a batch directory contains no PDF files.
var ErrNoInput = errors.New("no pdf files found")

// Options tune a single run.
type Options struct {
	// NoChart skips chart rendering entirely; the summary document is built
	// without an assessment overview section.
	NoChart bool
}

// Pipeline wires the processing stages together through ports, so each
// stage can be replaced in tests.
type Pipeline struct {
	reader       Reader
	requester    Requester
	renderer     Renderer
	newGenerator GeneratorFactory
	log          *zap.Logger
	now          func() time.Time
}

// New creates a Pipeline from its stage implementations.
func New(reader Reader, requester Requester, renderer Renderer, factory GeneratorFactory, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		reader:       reader,
		requester:    requester,
		renderer:     renderer,
		newGenerator: factory,
		log:          log,
		now:          time.Now,
	}
}

// ProcessFile runs the full pipeline for one source document. Reader and
// assembly failures are fatal; extraction gaps, generation failures and
// chart trouble all degrade inside their stages and never surface here.
func (p *Pipeline) ProcessFile(ctx context.Context, pdfPath, outputDir string, opts Options) (domain.ReportSet, error) {
	log := p.log.With(zap.String("file", pdfPath))
	log.Info("processing questionnaire")

	content, err := p.reader.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", pdfPath, err)
	}

	rec := questionnaire.Extract(content.Text)
	questionnaire.Overlay(rec, content.FormFields)
	log.Info("extraction complete",
		zap.Int("personal_info", len(rec.PersonalInfo)),
		zap.Int("scale_responses", len(rec.ScaleResponses)),
		zap.Int("goals", len(rec.FitnessGoals)))

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	debugPath, err := p.dumpRecord(rec, outputDir)
	if err != nil {
		return nil, err
	}

	// Chart rendering and content generation have no data dependency on
	// each other, only on the extracted record.
	var (
		chartPath string
		generated domain.GeneratedContent
		wg        sync.WaitGroup
	)
	if !opts.NoChart {
		wg.Add(1)
		go func() {
			defer wg.Done()
			out := filepath.Join(outputDir, fmt.Sprintf("health_assessment_chart_%s_%s.png",
				p.now().Format("20060102_150405"), uuid.NewString()[:8]))
			path, err := p.renderer.Render(rec.ScaleResponses, out, "")
			if err != nil {
				// Even the placeholder failed to write; the summary document
				// just goes out without a chart.
				log.Warn("chart rendering failed", zap.Error(err))
				return
			}
			chartPath = path
		}()
	}
	generated = p.requester.RequestAll(ctx, rec)
	wg.Wait()

	gen, err := p.newGenerator(outputDir)
	if err != nil {
		return nil, fmt.Errorf("preparing generator: %w", err)
	}
	reports, err := gen.GenerateAll(rec, generated, chartPath)
	if err != nil {
		return nil, err
	}

	if chartPath != "" {
		reports[domain.ReportChart] = chartPath
	}
	reports[domain.ReportDebugData] = debugPath

	log.Info("processing complete", zap.Int("artifacts", len(reports)))
	return reports, nil
}

// dumpRecord writes the extracted record as indented JSON next to the
// reports, for inspection when extraction goes sideways.
func (p *Pipeline) dumpRecord(rec *domain.QuestionnaireRecord, outputDir string) (string, error) {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding record: %w", err)
	}
	path := filepath.Join(outputDir, fmt.Sprintf("parsed_data_%s_%s.json",
		p.now().Format("20060102_150405"), uuid.NewString()[:8]))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing record dump: %w", err)
	}
	return path, nil
}

// ItemResult is the outcome for one file in a batch.
type ItemResult struct {
	File    string
	Reports domain.ReportSet
	Err     error
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Items []ItemResult
}

// Succeeded counts items that produced a report set.
func (b *BatchResult) Succeeded() int {
	n := 0
	for _, it := range b.Items {
		if it.Err == nil {
			n++
		}
	}
	return n
}

// Failed counts items that errored.
func (b *BatchResult) Failed() int { return len(b.Items) - b.Succeeded() }

// ProcessBatch runs ProcessFile for every PDF in pdfDir, writing each
// file's artifacts into a subdirectory of outputDir named after the file
// stem. One bad file never aborts the batch; per-item errors are captured
// in the result. The only batch-level errors are an unreadable directory
// and a directory with no PDFs at all.
func (p *Pipeline) ProcessBatch(ctx context.Context, pdfDir, outputDir string, opts Options) (*BatchResult, error) {
	entries, err := os.ReadDir(pdfDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pdfDir, err)
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	if len(pdfs) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, pdfDir)
	}

	p.log.Info("starting batch", zap.Int("files", len(pdfs)), zap.String("dir", pdfDir))

	result := &BatchResult{Items: make([]ItemResult, 0, len(pdfs))}
	for i, name := range pdfs {
		p.log.Info("batch item", zap.Int("index", i+1), zap.Int("total", len(pdfs)), zap.String("file", name))

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		reports, err := p.ProcessFile(ctx, filepath.Join(pdfDir, name), filepath.Join(outputDir, stem), opts)
		if err != nil {
			p.log.Error("batch item failed", zap.String("file", name), zap.Error(err))
		}
		result.Items = append(result.Items, ItemResult{File: name, Reports: reports, Err: err})
	}

	p.log.Info("batch complete",
		zap.Int("succeeded", result.Succeeded()),
		zap.Int("failed", result.Failed()))
	return result, nil
}
