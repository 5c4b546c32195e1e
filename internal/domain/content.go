package domain

type ContentType string

const (
	ContentSummary   ContentType = "summary_report"
	ContentTraining  ContentType = "training_plan"
	ContentNutrition ContentType = "nutrition_plan"
)

type ReportKind string

const (
	ReportSummary   ReportKind = "summary"
	ReportTraining  ReportKind = "training"
	ReportNutrition ReportKind = "nutrition"
	ReportChart     ReportKind = "chart"
	ReportDebugData ReportKind = "debug_data"
)

// GeneratedContent holds the three narrative texts for one run. Each is
// either model output or the static fallback for its content type. Created
// once, never mutated, consumed once by the assembler.
type GeneratedContent struct {
	Summary   string
	Training  string
	Nutrition string
}

// ReportSet maps report kinds to output file paths. It is the terminal
// artifact of a run and immutable once returned.
type ReportSet map[ReportKind]string
