package engine

import "github.com/goliatone/go-surveyflow/pkg/survey"

// SectionResult aggregates per-field validation outcomes for one scope (a
// single section or the whole form). Errors is keyed by field id and only
// holds failing fields.
type SectionResult struct {
	Valid  bool
	Errors map[string]string
}

// ValidateSection runs the field validator over every field the indexed
// section owns, including its subsections' fields. Duplicate field ids do
// not double-report: the later declaration wins in the error map. The call
// is pure with respect to its inputs and recomputes the full error set for
// its scope on every invocation, so it is safe to call per keystroke.
//
// An out-of-range index yields a valid, empty result.
func ValidateSection(config survey.SurveyConfig, index int, formData map[string]any, catalogs survey.Catalogs) SectionResult {
	if index < 0 || index >= len(config.Sections) {
		return SectionResult{Valid: true, Errors: map[string]string{}}
	}
	return validateFields(config.Sections[index].FlattenedFields(), formData, catalogs)
}

// ValidateAllFields applies the section-validation semantics across every
// section in the config. Used at final submission and to compute the step
// indicator's per-section validity badges.
func ValidateAllFields(config survey.SurveyConfig, formData map[string]any, catalogs survey.Catalogs) SectionResult {
	return validateFields(config.AllFields(), formData, catalogs)
}

func validateFields(fields []survey.FieldDefinition, formData map[string]any, catalogs survey.Catalogs) SectionResult {
	errors := make(map[string]string)
	for _, field := range fields {
		msg := ValidateFieldValue(field, formData[field.ID], catalogs)
		if msg != "" {
			errors[field.ID] = msg
		} else {
			// Last write wins when a config erroneously repeats an id.
			delete(errors, field.ID)
		}
	}
	return SectionResult{Valid: len(errors) == 0, Errors: errors}
}

// FirstInvalidField returns the id of the first failing field in declared
// order within the given field list, or "".
func FirstInvalidField(fields []survey.FieldDefinition, errors map[string]string) string {
	for _, field := range fields {
		if _, ok := errors[field.ID]; ok {
			return field.ID
		}
	}
	return ""
}
