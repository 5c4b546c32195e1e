// Package report assembles the generated narratives, extracted data and
// chart artifacts into Word documents. Sections with no backing data are
// omitted; any write failure aborts the whole generation call.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fumiama/go-docx"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

// Run sizes are half-points.
const (
	sizeTitle   = "40"
	sizeDate    = "24"
	sizeHeading = "28"
	sizeBody    = "22"
	sizeFooter  = "20"
)

var templateNames = map[domain.ReportKind]string{
	domain.ReportSummary:   "summary_template.docx",
	domain.ReportTraining:  "training_template.docx",
	domain.ReportNutrition: "nutrition_template.docx",
}

var filePrefixes = map[domain.ReportKind]string{
	domain.ReportSummary:   "Summary_Report",
	domain.ReportTraining:  "Training_Plan",
	domain.ReportNutrition: "Nutrition_Plan",
}

// Generator writes the three report documents for a questionnaire record.
type Generator struct {
	templatesDir string
	outputDir    string
	log          *zap.Logger
	now          func() time.Time
}

// NewGenerator creates a Generator, ensuring both directories exist.
func NewGenerator(templatesDir, outputDir string, log *zap.Logger) (*Generator, error) {
	for _, dir := range []string{templatesDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		templatesDir: templatesDir,
		outputDir:    outputDir,
		log:          log,
		now:          time.Now,
	}, nil
}

// OutputDir returns the directory generated documents are written to.
func (g *Generator) OutputDir() string { return g.outputDir }

// GenerateAll builds the summary, training and nutrition documents. A
// failure on any of the three aborts the call; partially written files from
// earlier kinds may remain.
func (g *Generator) GenerateAll(rec *domain.QuestionnaireRecord, content domain.GeneratedContent, chartPath string) (domain.ReportSet, error) {
	now := g.now()

	builds := []struct {
		kind domain.ReportKind
		secs []Section
	}{
		{domain.ReportSummary, buildSummarySections(rec, content.Summary, chartPath, now)},
		{domain.ReportTraining, buildTrainingSections(rec, content.Training, now)},
		{domain.ReportNutrition, buildNutritionSections(rec, content.Nutrition, now)},
	}

	reports := make(domain.ReportSet, len(builds))
	for _, b := range builds {
		path, err := g.writeDocument(b.kind, b.secs, now)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrAssembly, b.kind, err)
		}
		g.log.Info("report generated",
			zap.String("kind", string(b.kind)),
			zap.String("path", path))
		reports[b.kind] = path
	}
	return reports, nil
}

func (g *Generator) writeDocument(kind domain.ReportKind, secs []Section, now time.Time) (string, error) {
	doc, err := g.loadOrCreate(templateNames[kind])
	if err != nil {
		return "", err
	}

	for _, sec := range secs {
		g.renderSection(doc, sec)
	}

	name := fmt.Sprintf("%s_%s_%s.docx",
		filePrefixes[kind],
		now.Format("20060102_150405"),
		uuid.NewString()[:8])
	path := filepath.Join(g.outputDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return "", err
	}
	return path, nil
}

// loadOrCreate opens the named template when present, otherwise starts a
// fresh document. A template that exists but fails to parse is an error, not
// a silent fresh start: a broken template is worth surfacing.
func (g *Generator) loadOrCreate(name string) (*docx.Docx, error) {
	path := filepath.Join(g.templatesDir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return docx.New().WithDefaultTheme(), nil
		}
		return nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	doc, err := docx.Parse(f, fi.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, name, err)
	}
	g.log.Debug("template loaded", zap.String("template", name))
	return doc, nil
}

func (g *Generator) renderSection(doc *docx.Docx, sec Section) {
	if sec.Title != "" {
		p := doc.AddParagraph()
		p.AddText(sec.Title).Size(sizeTitle).Bold()
		p.Justification("center")
	}
	if sec.Heading != "" {
		doc.AddParagraph().AddText(sec.Heading).Size(sizeHeading).Bold()
	}
	for _, line := range sec.Lines {
		g.renderLine(doc, sec, line)
	}
	doc.AddParagraph() // spacing between sections
}

func (g *Generator) renderLine(doc *docx.Docx, sec Section, line Line) {
	p := doc.AddParagraph()
	if line.Center {
		p.Justification("center")
	}

	switch {
	case line.Rule:
		p.AddText(strings.Repeat("_", separatorWidth)).Size(sizeBody)
		p.Justification("center")
	case line.Image != "":
		if _, err := p.AddInlineDrawingFrom(line.Image); err != nil {
			// Image trouble degrades to a note; the document still ships.
			g.log.Warn("chart image skipped", zap.String("path", line.Image), zap.Error(err))
			p.AddText("Chart could not be displayed.").Size(sizeBody)
		}
	default:
		size := sizeBody
		if sec.Title != "" {
			size = sizeDate
		} else if line.Italic {
			size = sizeFooter
		}
		text := line.Text
		if line.Bullet {
			text = "• " + text
		}
		if line.Label != "" {
			p.AddText(line.Label).Size(size).Bold()
		}
		run := p.AddText(text).Size(size)
		if line.Italic {
			run.Italic()
		}
	}
}

// CreateSampleTemplates seeds placeholder template files for each report
// kind, skipping any that already exist.
func (g *Generator) CreateSampleTemplates() error {
	for _, name := range templateNames {
		path := filepath.Join(g.templatesDir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		doc := docx.New().WithDefaultTheme()
		doc.AddParagraph().AddText("Template: " + name).Size(sizeHeading).Bold()
		doc.AddParagraph().AddText("This is a placeholder template. Content will be replaced during report generation.").Size(sizeBody)

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating template %s: %w", name, err)
		}
		if _, err := doc.WriteTo(f); err != nil {
			f.Close()
			return fmt.Errorf("writing template %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		g.log.Info("sample template created", zap.String("template", name))
	}
	return nil
}
