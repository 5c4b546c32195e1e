package questionnaire

import "github.com/syedhassan0709/ai-nutrition-training-plan-generator/internal/domain"

// Overlay merges populated interactive form fields on top of a
// pattern-derived record. The two channels are independent and are not
// reconciled: form fields land under their own raw names, and on a repeated
// name the form value wins without conflict detection.
func Overlay(rec *domain.QuestionnaireRecord, fields map[string]domain.FormField) {
	if len(fields) == 0 {
		return
	}
	if rec.FormFields == nil {
		rec.FormFields = make(map[string]domain.FormField, len(fields))
	}
	for name, f := range fields {
		if name == "" || f.Value == "" {
			continue
		}
		rec.FormFields[name] = f
	}
}
