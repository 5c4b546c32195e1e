package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

// Line is one paragraph within a section. Label renders as a bold prefix
// run; Image is a path to an inline picture; the style flags map onto run
// and paragraph formatting when the section is written out.
type Line struct {
	Label  string
	Text   string
	Image  string
	Bullet bool
	Italic bool
	Center bool
	Rule   bool
}

// Section is a heading plus its paragraphs. Builders return only sections
// with backing data; an empty section never reaches the document.
type Section struct {
	Heading string
	Title   string // document title, used by the header section only
	Lines   []Line
}

const (
	separatorWidth = 60
	emptyNarrative = "Content will be generated based on your questionnaire responses."
	disclaimer     = "This personalized plan was generated based on your questionnaire responses. " +
		"Please consult with healthcare professionals before starting any new fitness or nutrition program."
)

func buildSummarySections(rec *domain.QuestionnaireRecord, narrative, chartPath string, now time.Time) []Section {
	secs := []Section{headerSection("HEALTH & FITNESS SUMMARY REPORT", now)}
	secs = appendIfSome(secs, personalInfoSection(rec.PersonalInfo))
	secs = appendIfSome(secs, chartSection(chartPath, "HEALTH ASSESSMENT OVERVIEW"))
	secs = appendIfSome(secs, scaleResponsesSection(rec.ScaleResponses))
	secs = append(secs, narrativeSection("ASSESSMENT SUMMARY", narrative))
	secs = appendIfSome(secs, goalsSection(rec.FitnessGoals))
	return append(secs, footerSection())
}

func buildTrainingSections(rec *domain.QuestionnaireRecord, narrative string, now time.Time) []Section {
	secs := []Section{headerSection("PERSONALIZED TRAINING PLAN", now)}
	secs = appendIfSome(secs, personalInfoSection(rec.PersonalInfo))
	secs = appendIfSome(secs, fitnessAssessmentSection(rec.ScaleResponses))
	secs = append(secs, narrativeSection("YOUR 4-WEEK TRAINING PROGRAM", narrative))
	secs = appendIfSome(secs, equipmentSection(rec.Checkboxes))
	secs = append(secs, progressTrackingSection())
	return append(secs, footerSection())
}

func buildNutritionSections(rec *domain.QuestionnaireRecord, narrative string, now time.Time) []Section {
	secs := []Section{headerSection("PERSONALIZED NUTRITION PLAN", now)}
	secs = appendIfSome(secs, personalInfoSection(rec.PersonalInfo))
	secs = appendIfSome(secs, dietarySection(rec.DietaryPrefs))
	secs = append(secs, narrativeSection("YOUR PERSONALIZED NUTRITION GUIDE", narrative))
	secs = appendIfSome(secs, healthMetricsSection(rec.HealthMetrics))
	return append(secs, footerSection())
}

func appendIfSome(secs []Section, s Section, ok bool) []Section {
	if !ok {
		return secs
	}
	return append(secs, s)
}

func headerSection(title string, now time.Time) Section {
	return Section{
		Title: title,
		Lines: []Line{
			{Text: "Generated on: " + now.Format("January 2, 2006"), Center: true},
			{Rule: true},
		},
	}
}

func footerSection() Section {
	return Section{
		Lines: []Line{
			{Rule: true},
			{Text: disclaimer, Italic: true, Center: true},
		},
	}
}

// personalInfoFields fixes the display order; the extraction map has no
// inherent one.
var personalInfoFields = []struct{ key, label string }{
	{"name", "Name"},
	{"age", "Age"},
	{"gender", "Gender"},
	{"height", "Height"},
	{"weight", "Weight"},
}

func personalInfoSection(info map[string]string) (Section, bool) {
	var lines []Line
	for _, f := range personalInfoFields {
		if v := info[f.key]; v != "" {
			lines = append(lines, Line{Label: f.label + ": ", Text: v})
		}
	}
	if len(lines) == 0 {
		return Section{}, false
	}
	return Section{Heading: "PERSONAL INFORMATION", Lines: lines}, true
}

func chartSection(chartPath, heading string) (Section, bool) {
	if chartPath == "" {
		return Section{}, false
	}
	return Section{Heading: heading, Lines: []Line{{Image: chartPath, Center: true}}}, true
}

func scaleResponsesSection(scales map[string]int) (Section, bool) {
	if len(scales) == 0 {
		return Section{}, false
	}
	lines := make([]Line, 0, len(scales))
	for _, k := range sortedKeys(scales) {
		lines = append(lines, Line{
			Label: titleWords(k) + ": ",
			Text:  fmt.Sprintf("%d/10", scales[k]),
		})
	}
	return Section{Heading: "ASSESSMENT SCORES (1-10 SCALE)", Lines: lines}, true
}

func narrativeSection(heading, narrative string) Section {
	var lines []Line
	for _, para := range strings.Split(narrative, "\n\n") {
		if p := strings.TrimSpace(para); p != "" {
			lines = append(lines, Line{Text: p})
		}
	}
	if len(lines) == 0 {
		lines = []Line{{Text: emptyNarrative}}
	}
	return Section{Heading: heading, Lines: lines}
}

func goalsSection(goals []string) (Section, bool) {
	if len(goals) == 0 {
		return Section{}, false
	}
	lines := make([]Line, 0, len(goals))
	for _, g := range goals {
		lines = append(lines, Line{Text: titleWords(g), Bullet: true})
	}
	return Section{Heading: "YOUR FITNESS GOALS", Lines: lines}, true
}

// fitnessAssessmentSection averages the fitness- and strength-related scale
// scores into a Beginner/Intermediate/Advanced label.
func fitnessAssessmentSection(scales map[string]int) (Section, bool) {
	sum, n := 0, 0
	for k, v := range scales {
		lk := strings.ToLower(k)
		if strings.Contains(lk, "fitness") || strings.Contains(lk, "strength") {
			sum += v
			n++
		}
	}
	if n == 0 {
		return Section{}, false
	}
	avg := float64(sum) / float64(n)
	level := "Advanced"
	switch {
	case avg < 4:
		level = "Beginner"
	case avg < 7:
		level = "Intermediate"
	}
	return Section{
		Heading: "FITNESS ASSESSMENT",
		Lines: []Line{{
			Label: "Assessed Fitness Level: ",
			Text:  fmt.Sprintf("%s (Average Score: %.1f/10)", level, avg),
		}},
	}, true
}

func equipmentSection(checkboxes map[string][]string) (Section, bool) {
	equipment := checkboxes["equipment_available"]
	times := checkboxes["workout_times"]
	if len(equipment) == 0 && len(times) == 0 {
		return Section{}, false
	}
	var lines []Line
	if len(equipment) > 0 {
		lines = append(lines, Line{Label: "Available Equipment: ", Text: strings.Join(equipment, ", ")})
	}
	if len(times) > 0 {
		lines = append(lines, Line{Label: "Preferred Workout Times: ", Text: strings.Join(times, ", ")})
	}
	return Section{Heading: "EQUIPMENT & PREFERENCES", Lines: lines}, true
}

func dietarySection(prefs domain.DietaryPreferences) (Section, bool) {
	var lines []Line
	if len(prefs.Restrictions) > 0 {
		lines = append(lines, Line{Label: "Dietary Restrictions: ", Text: strings.Join(prefs.Restrictions, ", ")})
	}
	if len(prefs.Allergies) > 0 {
		lines = append(lines, Line{Label: "Allergies: ", Text: strings.Join(prefs.Allergies, ", ")})
	}
	if len(lines) == 0 {
		return Section{}, false
	}
	return Section{Heading: "DIETARY PREFERENCES & RESTRICTIONS", Lines: lines}, true
}

func healthMetricsSection(metrics map[string]string) (Section, bool) {
	var lines []Line
	for _, k := range sortedKeys(metrics) {
		if v := metrics[k]; v != "" {
			lines = append(lines, Line{Label: titleWords(k) + ": ", Text: v})
		}
	}
	if len(lines) == 0 {
		return Section{}, false
	}
	return Section{Heading: "HEALTH METRICS", Lines: lines}, true
}

func progressTrackingSection() Section {
	return Section{
		Heading: "PROGRESS TRACKING",
		Lines: []Line{
			{Text: "Track your progress weekly by recording:"},
			{Text: "Workout completion and difficulty level", Bullet: true},
			{Text: "Weight lifted and repetitions achieved", Bullet: true},
			{Text: "Energy levels before and after workouts", Bullet: true},
			{Text: "Any modifications needed", Bullet: true},
			{Text: "Weekly body measurements (optional)", Bullet: true},
			{Text: "Adjust your plan if you consistently find workouts too easy or too difficult."},
		},
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func titleWords(s string) string {
	words := strings.Split(strings.ReplaceAll(s, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
