package report

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

var fixedTime = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func testRecord() *domain.QuestionnaireRecord {
	rec := domain.NewQuestionnaireRecord()
	rec.PersonalInfo["name"] = "John Doe"
	rec.PersonalInfo["age"] = "30"
	rec.HealthMetrics["bmi"] = "24.5"
	rec.ScaleResponses["fitness_level"] = 6
	rec.ScaleResponses["motivation"] = 8
	rec.FitnessGoals = []string{"lose weight", "gain muscle"}
	rec.DietaryPrefs.Restrictions = []string{"vegetarian"}
	rec.DietaryPrefs.Allergies = []string{"nuts"}
	rec.Checkboxes["equipment_available"] = []string{"dumbbells"}
	return rec
}

func headings(secs []Section) []string {
	var out []string
	for _, s := range secs {
		if s.Heading != "" {
			out = append(out, s.Heading)
		}
	}
	return out
}

func TestBuildSummarySections_Order(t *testing.T) {
	secs := buildSummarySections(testRecord(), "Narrative body.", "/tmp/chart.png", fixedTime)

	require.NotEmpty(t, secs)
	assert.Equal(t, "HEALTH & FITNESS SUMMARY REPORT", secs[0].Title)
	assert.Equal(t, []string{
		"PERSONAL INFORMATION",
		"HEALTH ASSESSMENT OVERVIEW",
		"ASSESSMENT SCORES (1-10 SCALE)",
		"ASSESSMENT SUMMARY",
		"YOUR FITNESS GOALS",
	}, headings(secs))
}

func TestBuildSummarySections_EmptyRecordOmitsDataSections(t *testing.T) {
	secs := buildSummarySections(domain.NewQuestionnaireRecord(), "", "", fixedTime)

	// Only the narrative section survives, with the stand-in paragraph.
	assert.Equal(t, []string{"ASSESSMENT SUMMARY"}, headings(secs))
	narrative := secs[1]
	require.Len(t, narrative.Lines, 1)
	assert.Equal(t, emptyNarrative, narrative.Lines[0].Text)
}

func TestBuildTrainingSections(t *testing.T) {
	secs := buildTrainingSections(testRecord(), "Week one.\n\nWeek two.", fixedTime)

	assert.Equal(t, []string{
		"PERSONAL INFORMATION",
		"FITNESS ASSESSMENT",
		"YOUR 4-WEEK TRAINING PROGRAM",
		"EQUIPMENT & PREFERENCES",
		"PROGRESS TRACKING",
	}, headings(secs))
}

func TestBuildNutritionSections(t *testing.T) {
	secs := buildNutritionSections(testRecord(), "Eat well.", fixedTime)

	assert.Equal(t, []string{
		"PERSONAL INFORMATION",
		"DIETARY PREFERENCES & RESTRICTIONS",
		"YOUR PERSONALIZED NUTRITION GUIDE",
		"HEALTH METRICS",
	}, headings(secs))
}

func TestNarrativeSection_SplitsOnBlankLines(t *testing.T) {
	sec := narrativeSection("X", "First paragraph.\n\nSecond paragraph.\n\n\n\nThird.")

	require.Len(t, sec.Lines, 3)
	assert.Equal(t, "First paragraph.", sec.Lines[0].Text)
	assert.Equal(t, "Third.", sec.Lines[2].Text)
}

func TestFitnessAssessmentSection(t *testing.T) {
	tests := []struct {
		name   string
		scales map[string]int
		want   string
		ok     bool
	}{
		{"beginner", map[string]int{"fitness_level": 3}, "Beginner (Average Score: 3.0/10)", true},
		{"intermediate", map[string]int{"fitness_level": 6, "strength_level": 5}, "Intermediate (Average Score: 5.5/10)", true},
		{"advanced", map[string]int{"fitness_level": 8}, "Advanced (Average Score: 8.0/10)", true},
		{"no fitness scores", map[string]int{"motivation": 9}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sec, ok := fitnessAssessmentSection(tt.scales)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, sec.Lines[0].Text)
			}
		})
	}
}

func TestGoalsSection_TitleCasesBullets(t *testing.T) {
	sec, ok := goalsSection([]string{"lose weight", "gain muscle"})

	require.True(t, ok)
	assert.Equal(t, "Lose Weight", sec.Lines[0].Text)
	assert.True(t, sec.Lines[0].Bullet)
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(filepath.Join(t.TempDir(), "templates"), filepath.Join(t.TempDir(), "output"), zap.NewNop())
	require.NoError(t, err)
	g.now = func() time.Time { return fixedTime }
	return g
}

func TestGenerateAll_WritesThreeDocuments(t *testing.T) {
	g := newTestGenerator(t)

	reports, err := g.GenerateAll(testRecord(), domain.GeneratedContent{
		Summary:   "Summary text.",
		Training:  "Training text.",
		Nutrition: "Nutrition text.",
	}, "")

	require.NoError(t, err)
	require.Len(t, reports, 3)

	patterns := map[domain.ReportKind]*regexp.Regexp{
		domain.ReportSummary:   regexp.MustCompile(`^Summary_Report_20250314_092653_[0-9a-f]{8}\.docx$`),
		domain.ReportTraining:  regexp.MustCompile(`^Training_Plan_20250314_092653_[0-9a-f]{8}\.docx$`),
		domain.ReportNutrition: regexp.MustCompile(`^Nutrition_Plan_20250314_092653_[0-9a-f]{8}\.docx$`),
	}
	for kind, re := range patterns {
		path, ok := reports[kind]
		require.True(t, ok, kind)
		assert.Regexp(t, re, filepath.Base(path))
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Positive(t, fi.Size())
	}
}

func TestGenerateAll_SameSecondFilenamesDiffer(t *testing.T) {
	g := newTestGenerator(t)
	content := domain.GeneratedContent{Summary: "s", Training: "t", Nutrition: "n"}

	first, err := g.GenerateAll(testRecord(), content, "")
	require.NoError(t, err)
	second, err := g.GenerateAll(testRecord(), content, "")
	require.NoError(t, err)

	// Clock is pinned, so only the random suffix keeps these apart.
	assert.NotEqual(t, first[domain.ReportSummary], second[domain.ReportSummary])
}

func TestGenerateAll_UsesTemplateWhenPresent(t *testing.T) {
	g := newTestGenerator(t)
	require.NoError(t, g.CreateSampleTemplates())

	reports, err := g.GenerateAll(testRecord(), domain.GeneratedContent{}, "")

	require.NoError(t, err)
	assert.Len(t, reports, 3)
}

func TestCreateSampleTemplates_Idempotent(t *testing.T) {
	g := newTestGenerator(t)

	require.NoError(t, g.CreateSampleTemplates())
	require.NoError(t, g.CreateSampleTemplates())

	for _, name := range templateNames {
		_, err := os.Stat(filepath.Join(g.templatesDir, name))
		assert.NoError(t, err)
	}
}

func TestTitleWords(t *testing.T) {
	assert.Equal(t, "Fitness Level", titleWords("fitness_level"))
	assert.Equal(t, "Lose Weight", titleWords("lose weight"))
	assert.Equal(t, "Bmi", titleWords("bmi"))
}
