package questionnaire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

const sampleQuestionnaire = `
HEALTH & FITNESS QUESTIONNAIRE

Name: John Doe
Age: 30
Gender: male
Height: 180 cm
Weight: 82 kg
Email: john.doe@example.com

BMI: 24.5
Body Fat: 18.2%
Blood Pressure: 120/80
Resting Heart Rate: 62
Activity Level: moderate

Fitness Level: 6
Energy Level: 7
Stress Level: 4
Sleep Quality: 8
Motivation: 9
Nutrition Knowledge: 5

My goals are to lose weight and gain muscle this year.

I follow a vegetarian diet and prefer gluten-free options.
Allergies: peanuts, shellfish. I avoid processed sugar.

Describe your goals: I want to feel stronger and have more energy every day
Medical conditions: none
Exercise history: Played football in college, gym on and off since

Equipment: dumbbells, yoga mat, pull-up bar
Preferred workout times: morning or evening
Experience: intermediate
`

func TestExtractPersonalInfo(t *testing.T) {
	rec := Extract(sampleQuestionnaire)

	assert.Equal(t, "John Doe", rec.PersonalInfo["name"])
	assert.Equal(t, "30", rec.PersonalInfo["age"])
	assert.Equal(t, "male", rec.PersonalInfo["gender"])
	assert.Equal(t, "180 cm", rec.PersonalInfo["height"])
	assert.Equal(t, "82 kg", rec.PersonalInfo["weight"])
	assert.Equal(t, "john.doe@example.com", rec.PersonalInfo["email"])
}

func TestExtractHealthMetrics(t *testing.T) {
	rec := Extract(sampleQuestionnaire)

	assert.Equal(t, "24.5", rec.HealthMetrics["bmi"])
	assert.Equal(t, "18.2%", rec.HealthMetrics["body_fat"])
	assert.Equal(t, "120/80", rec.HealthMetrics["blood_pressure"])
	assert.Equal(t, "62", rec.HealthMetrics["resting_heart_rate"])
	assert.Equal(t, "moderate", rec.HealthMetrics["activity_level"])
}

func TestExtractScaleResponses(t *testing.T) {
	rec := Extract(sampleQuestionnaire)

	want := map[string]int{
		"fitness_level":       6,
		"energy_level":        7,
		"stress_level":        4,
		"sleep_quality":       8,
		"motivation":          9,
		"nutrition_knowledge": 5,
	}
	assert.Equal(t, want, rec.ScaleResponses)
}

func TestExtractScaleResponses_OutOfRangeDropped(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"above range", "Fitness Level: 15"},
		{"zero", "Fitness Level: 0"},
		{"far above", "Energy Level: 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Extract(tt.text)
			assert.Empty(t, rec.ScaleResponses, "out-of-range values must be absent, not clamped")
		})
	}
}

func TestExtractScaleResponses_BoundaryValuesKept(t *testing.T) {
	rec := Extract("Fitness Level: 1\nEnergy Level: 10")

	assert.Equal(t, 1, rec.ScaleResponses["fitness_level"])
	assert.Equal(t, 10, rec.ScaleResponses["energy_level"])
}

func TestExtractFitnessGoals_CatalogueOrder(t *testing.T) {
	// Text order is the reverse of catalogue order; output must follow the
	// catalogue.
	rec := Extract("I want to gain muscle and also lose weight")

	assert.Equal(t, []string{"lose weight", "gain muscle"}, rec.FitnessGoals)
}

func TestExtractDietaryRestrictions_CatalogueOrder(t *testing.T) {
	rec := Extract("I eat gluten-free and vegetarian meals")

	assert.Equal(t, []string{"vegetarian", "gluten-free"}, rec.DietaryPrefs.Restrictions)
}

func TestExtractDietaryRestrictions_SpacedVariant(t *testing.T) {
	rec := Extract("mostly dairy free and low carb")

	assert.Equal(t, []string{"dairy-free", "low-carb"}, rec.DietaryPrefs.Restrictions)
}

func TestExtractAllergies(t *testing.T) {
	rec := Extract("Allergies: peanuts, shellfish, tree nuts. Nothing else.")

	assert.Equal(t, []string{"peanuts", "shellfish", "tree nuts"}, rec.DietaryPrefs.Allergies)
}

func TestExtractAllergies_SingularLabel(t *testing.T) {
	rec := Extract("Allergy: latex")

	assert.Equal(t, []string{"latex"}, rec.DietaryPrefs.Allergies)
}

func TestExtractFreeText(t *testing.T) {
	rec := Extract(sampleQuestionnaire)

	assert.Equal(t, "I want to feel stronger and have more energy every day",
		rec.FreeTextResponses["goals_description"])
	assert.Equal(t, "Played football in college, gym on and off since",
		rec.FreeTextResponses["exercise_history"])
}

func TestExtractFreeText_ShortResponsesDropped(t *testing.T) {
	// "none" trims to 4 characters, below the meaningful threshold.
	rec := Extract("Medical conditions: none")

	_, ok := rec.FreeTextResponses["medical_conditions"]
	assert.False(t, ok)
}

func TestExtractFreeText_StopsAtQuestionMark(t *testing.T) {
	rec := Extract("Describe your goals: get stronger legs? Additional notes: prefer short sessions")

	assert.Equal(t, "get stronger legs", rec.FreeTextResponses["goals_description"])
	assert.Equal(t, "prefer short sessions", rec.FreeTextResponses["additional_notes"])
}

func TestExtractCheckboxes_CatalogueOrder(t *testing.T) {
	// "yoga mat" appears before "dumbbells" in the text; the output order is
	// the catalogue's.
	rec := Extract("I own a yoga mat, some dumbbells and a pull-up bar")

	assert.Equal(t, []string{"dumbbells", "yoga mat", "pull-up bar"},
		rec.Checkboxes["equipment_available"])
}

func TestExtractCheckboxes_EmptyCategoriesOmitted(t *testing.T) {
	rec := Extract("I train in the morning")

	assert.Equal(t, []string{"morning"}, rec.Checkboxes["workout_times"])
	_, ok := rec.Checkboxes["equipment_available"]
	assert.False(t, ok)
	_, ok = rec.Checkboxes["experience_level"]
	assert.False(t, ok)
}

func TestExtract_MalformedInputNeverFails(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"Name:",
		"Fitness Level: banana",
		"::::????",
		"Age: 999999999999999999999999999",
	}

	for _, in := range inputs {
		rec := Extract(in)
		require.NotNil(t, rec)
		assert.Empty(t, rec.FitnessGoals)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	first := Extract(sampleQuestionnaire)
	second := Extract(sampleQuestionnaire)

	assert.Equal(t, first, second)
}

func TestExtract_SpecScenario(t *testing.T) {
	rec := Extract("Name: John Doe\nAge: 30\nFitness Level: 6\n")

	assert.Equal(t, "John Doe", rec.PersonalInfo["name"])
	assert.Equal(t, "30", rec.PersonalInfo["age"])
	assert.Equal(t, 6, rec.ScaleResponses["fitness_level"])
}

func TestOverlay_FormFieldsWin(t *testing.T) {
	rec := Extract("Name: John Doe")

	Overlay(rec, map[string]domain.FormField{
		"name":  {Value: "Jane Roe", Type: "text"},
		"phone": {Value: "555-0100", Type: "text"},
		"empty": {Value: "", Type: "text"},
	})

	// Pattern channel is untouched; the form channel carries its own values.
	assert.Equal(t, "John Doe", rec.PersonalInfo["name"])
	assert.Equal(t, domain.FormField{Value: "Jane Roe", Type: "text"}, rec.FormFields["name"])
	assert.Equal(t, "555-0100", rec.FormFields["phone"].Value)
	_, ok := rec.FormFields["empty"]
	assert.False(t, ok, "unpopulated fields are skipped")
}

func TestOverlay_NoFields(t *testing.T) {
	rec := Extract("Name: John Doe")
	Overlay(rec, nil)

	assert.Nil(t, rec.FormFields)
}
