package chart

import "strings"

// labelOverrides fix up title-cased category names that read badly on the
// chart. Applied in order after title casing.
var labelOverrides = []struct{ from, to string }{
	{"Bmi", "BMI"},
	{"Hr", "HR"},
	{"Resting Heart Rate", "Resting HR"},
	{"Body Fat", "Body Fat %"},
	{"Activity Level", "Activity"},
}

// FormatCategoryName turns a snake_case category key into a short display
// label, e.g. "fitness_level" -> "Fitness Level", "bmi" -> "BMI".
func FormatCategoryName(key string) string {
	words := strings.Split(strings.ReplaceAll(key, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	name := strings.Join(words, " ")
	for _, o := range labelOverrides {
		name = strings.ReplaceAll(name, o.from, o.to)
	}
	return name
}
