package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuestionnaireRecord_MapsReady(t *testing.T) {
	rec := NewQuestionnaireRecord()

	rec.PersonalInfo["name"] = "Jane"
	rec.ScaleResponses["fitness_level"] = 5
	rec.Checkboxes["equipment_available"] = []string{"dumbbells"}

	assert.Equal(t, "Jane", rec.PersonalInfo["name"])
	assert.Equal(t, []string{"dumbbells"}, rec.Equipment())
}

func TestCheckboxHelpers_EmptyWhenUnset(t *testing.T) {
	rec := NewQuestionnaireRecord()

	assert.Empty(t, rec.Equipment())
	assert.Empty(t, rec.WorkoutTimes())
	assert.Empty(t, rec.ExperienceLevel())
}
