package pdfdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"
)

// exportJSON matches the form-export layout produced by pdfcpu.
const exportJSON = `{
  "forms": [
    {
      "textfield": [
        {"pages": [1], "id": "30", "name": "name", "value": "John Doe", "multiline": false, "locked": false},
        {"pages": [1], "id": "31", "name": "age", "value": "30", "multiline": false, "locked": false},
        {"pages": [1], "id": "32", "name": "notes", "value": "", "multiline": true, "locked": false}
      ],
      "datefield": [
        {"pages": [1], "id": "33", "name": "birth_date", "value": "1995-03-14", "locked": false}
      ],
      "checkbox": [
        {"pages": [1], "id": "34", "name": "dumbbells", "value": true, "locked": false},
        {"pages": [1], "id": "35", "name": "barbells", "value": false, "locked": false}
      ],
      "radiobuttongroup": [
        {"pages": [1], "id": "36", "name": "gender", "value": "male", "locked": false}
      ],
      "combobox": [
        {"pages": [1], "id": "37", "name": "activity_level", "value": "moderate", "locked": false}
      ],
      "listbox": [
        {"pages": [1], "id": "38", "name": "workout_times", "values": ["morning", "evening"], "locked": false}
      ]
    }
  ]
}`

func TestParseFormExport(t *testing.T) {
	fields := parseFormExport([]byte(exportJSON))

	require.NotNil(t, fields)
	assert.Equal(t, domain.FormField{Value: "John Doe", Type: "text"}, fields["name"])
	assert.Equal(t, domain.FormField{Value: "30", Type: "text"}, fields["age"])
	assert.Equal(t, domain.FormField{Value: "1995-03-14", Type: "date"}, fields["birth_date"])
	assert.Equal(t, domain.FormField{Value: "Yes", Type: "checkbox"}, fields["dumbbells"])
	assert.Equal(t, domain.FormField{Value: "male", Type: "radio"}, fields["gender"])
	assert.Equal(t, domain.FormField{Value: "moderate", Type: "combo"}, fields["activity_level"])
	assert.Equal(t, domain.FormField{Value: "morning, evening", Type: "list"}, fields["workout_times"])

	// Unpopulated widgets never surface: empty text, unchecked box.
	assert.NotContains(t, fields, "notes")
	assert.NotContains(t, fields, "barbells")
}

func TestParseFormExport_Degenerate(t *testing.T) {
	assert.Nil(t, parseFormExport([]byte("not json")))
	assert.Nil(t, parseFormExport([]byte(`{"forms": []}`)))
	assert.Nil(t, parseFormExport([]byte(`{"forms": [{"textfield": [{"name": "x", "value": ""}]}]}`)))
}

func TestOpen_PlainDocumentHasNoFormFields(t *testing.T) {
	fields := exportFormFields("testdata/does-not-exist.pdf")

	assert.Nil(t, fields)
}
