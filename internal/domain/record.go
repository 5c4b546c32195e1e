package domain

// FormField is one populated interactive form field read from the source
// document. Form fields are a second extraction channel, independent of the
// pattern scan over page text.
type FormField struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// DietaryPreferences groups the three independent dietary sub-lists.
// Preferences is reserved and currently never populated by extraction.
type DietaryPreferences struct {
	Restrictions []string `json:"restrictions"`
	Preferences  []string `json:"preferences"`
	Allergies    []string `json:"allergies"`
}

// QuestionnaireRecord is the typed result of field extraction. Every sub-map
// is independently optional: a missing key means the field was not found,
// which is the normal outcome, not an error. A zero record is well-formed.
type QuestionnaireRecord struct {
	PersonalInfo      map[string]string    `json:"personal_info"`
	HealthMetrics     map[string]string    `json:"health_metrics"`
	FitnessGoals      []string             `json:"fitness_goals"`
	DietaryPrefs      DietaryPreferences   `json:"dietary_preferences"`
	ScaleResponses    map[string]int       `json:"scale_responses"`
	FreeTextResponses map[string]string    `json:"free_text_responses"`
	Checkboxes        map[string][]string  `json:"checkboxes"`
	FormFields        map[string]FormField `json:"form_fields,omitempty"`
}

// NewQuestionnaireRecord returns a record with all maps allocated so callers
// can index sub-maps without nil checks.
func NewQuestionnaireRecord() *QuestionnaireRecord {
	return &QuestionnaireRecord{
		PersonalInfo:      map[string]string{},
		HealthMetrics:     map[string]string{},
		ScaleResponses:    map[string]int{},
		FreeTextResponses: map[string]string{},
		Checkboxes:        map[string][]string{},
	}
}

// Equipment returns the equipment checkbox selections, or nil.
func (r *QuestionnaireRecord) Equipment() []string {
	return r.Checkboxes["equipment_available"]
}

// WorkoutTimes returns the preferred workout time selections, or nil.
func (r *QuestionnaireRecord) WorkoutTimes() []string {
	return r.Checkboxes["workout_times"]
}

// ExperienceLevel returns the experience level selections, or nil.
func (r *QuestionnaireRecord) ExperienceLevel() []string {
	return r.Checkboxes["experience_level"]
}
