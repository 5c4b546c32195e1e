// Package questionnaire turns the raw text of a filled-in health and
// fitness questionnaire into a typed record. Extraction is best-effort: a
// field that does not match is simply absent from the result, and malformed
// values are dropped rather than reported. Extraction never fails.
package questionnaire

import (
	"strconv"
	"strings"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

const (
	scaleMin = 1
	scaleMax = 10

	// Trimmed free-text responses at or below this length carry no signal
	// and are discarded.
	minFreeTextLen = 5
)

// Extract applies the full pattern catalogue to raw questionnaire text.
// It is a pure function: identical input yields an identical record.
func Extract(raw string) *domain.QuestionnaireRecord {
	rec := domain.NewQuestionnaireRecord()

	extractFirstMatch(raw, personalInfoPatterns, rec.PersonalInfo)
	extractFirstMatch(raw, healthMetricPatterns, rec.HealthMetrics)
	rec.FitnessGoals = scanCatalogue(raw, goalCatalogue)
	rec.DietaryPrefs = extractDietaryPreferences(raw)
	rec.ScaleResponses = extractScaleResponses(raw)
	rec.FreeTextResponses = extractFreeText(raw)
	rec.Checkboxes = extractCheckboxes(raw)

	return rec
}

// extractFirstMatch fills dst with the first capture of each pattern.
// Later occurrences of the same label are ignored.
func extractFirstMatch(text string, patterns []fieldPattern, dst map[string]string) {
	for _, p := range patterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			dst[p.key] = strings.TrimSpace(m[1])
		}
	}
}

// scanCatalogue returns the labels whose patterns occur anywhere in the
// text, in catalogue order. Duplicate suppression falls out of the scan:
// each label is tested exactly once.
func scanCatalogue(text string, catalogue []catalogueEntry) []string {
	var found []string
	for _, entry := range catalogue {
		if entry.re.MatchString(text) {
			found = append(found, entry.label)
		}
	}
	return found
}

func extractDietaryPreferences(text string) domain.DietaryPreferences {
	prefs := domain.DietaryPreferences{
		Restrictions: scanCatalogue(text, restrictionCatalogue),
	}

	if m := allergyPattern.FindStringSubmatch(text); m != nil {
		for _, a := range strings.Split(m[1], ",") {
			if a = strings.TrimSpace(a); a != "" {
				prefs.Allergies = append(prefs.Allergies, a)
			}
		}
	}

	return prefs
}

func extractScaleResponses(text string) map[string]int {
	responses := map[string]int{}
	for _, p := range scalePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		// Out-of-range values are dropped, not clamped.
		if v < scaleMin || v > scaleMax {
			continue
		}
		responses[p.key] = v
	}
	return responses
}

func extractFreeText(text string) map[string]string {
	responses := map[string]string{}
	for _, p := range freeTextPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		answer := strings.TrimSpace(m[1])
		if len(answer) > minFreeTextLen {
			responses[p.key] = answer
		}
	}
	return responses
}

func extractCheckboxes(text string) map[string][]string {
	checkboxes := map[string][]string{}
	for _, cat := range checkboxCatalogues {
		if selected := scanCatalogue(text, cat.options); len(selected) > 0 {
			checkboxes[cat.category] = selected
		}
	}
	return checkboxes
}
