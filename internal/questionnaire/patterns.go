package questionnaire

import "regexp"

// The extraction rules are declarative tables rather than inline
// conditionals: each target field is one case-insensitive pattern with a
// single capturing group, and each multi-select category is an ordered
// catalogue of labels. Tests iterate the tables, and extending a catalogue
// never touches extraction logic.

type fieldPattern struct {
	key string
	re  *regexp.Regexp
}

type catalogueEntry struct {
	label string
	re    *regexp.Regexp
}

type checkboxCatalogue struct {
	category string
	options  []catalogueEntry
}

// Single-value personal fields. First match in the concatenated text wins;
// there is no positional scoping by questionnaire section.
var personalInfoPatterns = []fieldPattern{
	{"name", regexp.MustCompile(`(?i)name[:\s]+([a-zA-Z][a-zA-Z ]*)`)},
	{"age", regexp.MustCompile(`(?i)age[:\s]+(\d+)`)},
	{"gender", regexp.MustCompile(`(?i)gender[:\s]+(male|female|other)`)},
	{"height", regexp.MustCompile(`(?i)height[:\s]+(\d+['"]\s*\d*"*|\d+\s*cm|\d+\s*ft)`)},
	{"weight", regexp.MustCompile(`(?i)weight[:\s]+(\d+\s*lbs?|\d+\s*kg)`)},
	{"email", regexp.MustCompile(`(?i)email[:\s]+([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)},
}

var healthMetricPatterns = []fieldPattern{
	{"bmi", regexp.MustCompile(`(?i)bmi[:\s]+(\d+\.?\d*)`)},
	{"body_fat", regexp.MustCompile(`(?i)body\s*fat[:\s]+(\d+\.?\d*%?)`)},
	{"blood_pressure", regexp.MustCompile(`(?i)blood\s*pressure[:\s]+(\d+/\d+)`)},
	{"resting_heart_rate", regexp.MustCompile(`(?i)resting\s*heart\s*rate[:\s]+(\d+)`)},
	{"activity_level", regexp.MustCompile(`(?i)activity\s*level[:\s]+(sedentary|light|moderate|active|very\s*active)`)},
}

// 1-10 self-assessment scales. Values outside [1,10] are dropped entirely,
// never clamped.
var scalePatterns = []fieldPattern{
	{"fitness_level", regexp.MustCompile(`(?i)fitness\s*level[:\s]+(\d+)`)},
	{"energy_level", regexp.MustCompile(`(?i)energy\s*level[:\s]+(\d+)`)},
	{"stress_level", regexp.MustCompile(`(?i)stress\s*level[:\s]+(\d+)`)},
	{"sleep_quality", regexp.MustCompile(`(?i)sleep\s*quality[:\s]+(\d+)`)},
	{"motivation", regexp.MustCompile(`(?i)motivation[:\s]+(\d+)`)},
	{"nutrition_knowledge", regexp.MustCompile(`(?i)nutrition\s*knowledge[:\s]+(\d+)`)},
}

// Labeled free-text prompts. Capture runs to the next question mark or line
// break; responses of 5 characters or fewer after trimming are discarded.
var freeTextPatterns = []fieldPattern{
	{"goals_description", regexp.MustCompile(`(?i)describe\s+your\s+goals[:\s]+([^?\n]+)`)},
	{"medical_conditions", regexp.MustCompile(`(?i)medical\s+conditions[:\s]+([^?\n]+)`)},
	{"exercise_history", regexp.MustCompile(`(?i)exercise\s+history[:\s]+([^?\n]+)`)},
	{"food_preferences", regexp.MustCompile(`(?i)food\s+preferences[:\s]+([^?\n]+)`)},
	{"additional_notes", regexp.MustCompile(`(?i)additional\s+notes[:\s]+([^?\n]+)`)},
}

// allergyPattern captures the remainder of the labeled sentence; the capture
// is then split on commas.
var allergyPattern = regexp.MustCompile(`(?i)allergies?[:\s]+([^.\n]+)`)

// Catalogue scans emit labels in catalogue order, not order of appearance in
// the text. That ordering is load-bearing for reproducible fixtures.
var goalCatalogue = []catalogueEntry{
	{"lose weight", regexp.MustCompile(`(?i)\blose\s*weight\b`)},
	{"gain muscle", regexp.MustCompile(`(?i)\bgain\s*muscle\b`)},
	{"improve endurance", regexp.MustCompile(`(?i)\bimprove\s*endurance\b`)},
	{"increase strength", regexp.MustCompile(`(?i)\bincrease\s*strength\b`)},
	{"general fitness", regexp.MustCompile(`(?i)\bgeneral\s*fitness\b`)},
	{"sport specific", regexp.MustCompile(`(?i)\bsport\s*specific\b`)},
	{"rehabilitation", regexp.MustCompile(`(?i)\brehabilitation\b`)},
}

var restrictionCatalogue = []catalogueEntry{
	{"vegetarian", regexp.MustCompile(`(?i)\bvegetarian\b`)},
	{"vegan", regexp.MustCompile(`(?i)\bvegan\b`)},
	{"gluten-free", regexp.MustCompile(`(?i)\bgluten[-\s]*free\b`)},
	{"dairy-free", regexp.MustCompile(`(?i)\bdairy[-\s]*free\b`)},
	{"keto", regexp.MustCompile(`(?i)\bketo\b`)},
	{"paleo", regexp.MustCompile(`(?i)\bpaleo\b`)},
	{"low-carb", regexp.MustCompile(`(?i)\blow[-\s]*carb\b`)},
	{"mediterranean", regexp.MustCompile(`(?i)\bmediterranean\b`)},
}

var checkboxCatalogues = []checkboxCatalogue{
	{
		category: "equipment_available",
		options: []catalogueEntry{
			{"dumbbells", regexp.MustCompile(`(?i)\bdumbbells\b`)},
			{"barbells", regexp.MustCompile(`(?i)\bbarbells\b`)},
			{"resistance bands", regexp.MustCompile(`(?i)\bresistance bands\b`)},
			{"cardio machines", regexp.MustCompile(`(?i)\bcardio machines\b`)},
			{"yoga mat", regexp.MustCompile(`(?i)\byoga mat\b`)},
			{"pull-up bar", regexp.MustCompile(`(?i)\bpull-up bar\b`)},
		},
	},
	{
		category: "workout_times",
		options: []catalogueEntry{
			{"morning", regexp.MustCompile(`(?i)\bmorning\b`)},
			{"afternoon", regexp.MustCompile(`(?i)\bafternoon\b`)},
			{"evening", regexp.MustCompile(`(?i)\bevening\b`)},
			{"flexible", regexp.MustCompile(`(?i)\bflexible\b`)},
		},
	},
	{
		category: "experience_level",
		options: []catalogueEntry{
			{"beginner", regexp.MustCompile(`(?i)\bbeginner\b`)},
			{"intermediate", regexp.MustCompile(`(?i)\bintermediate\b`)},
			{"advanced", regexp.MustCompile(`(?i)\badvanced\b`)},
		},
	},
}
