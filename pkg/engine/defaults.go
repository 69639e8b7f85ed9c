package engine

import "github.com/goliatone/go-surveyflow/pkg/survey"

// ApplyDefaults assigns catalog- or option-level defaults to every field
// that has no current value: single-choice fields take the option flagged
// isDefault, multi-value fields take every flagged option. Fields with no
// configured default, or whose catalog has not loaded yet, remain unset.
//
// The unset guard is key presence, not emptiness: a field the respondent
// cleared still has its (empty) key and is never re-defaulted. Re-running
// after a late catalog load reaches the same fixed point.
func ApplyDefaults(config survey.SurveyConfig, catalogs survey.Catalogs, formData map[string]any) {
	for _, field := range config.AllFields() {
		if _, set := formData[field.ID]; set {
			continue
		}
		options, ok := catalogs.OptionsFor(field)
		if !ok {
			continue
		}

		switch field.Type {
		case survey.FieldTypeMultiSelect, survey.FieldTypeMultiSelectDropdown:
			var defaults []string
			for _, opt := range options {
				if opt.IsDefault {
					defaults = append(defaults, opt.Value)
				}
			}
			if len(defaults) > 0 {
				formData[field.ID] = defaults
			}
		case survey.FieldTypeRating, survey.FieldTypeRadio, survey.FieldTypeSelect:
			for _, opt := range options {
				if opt.IsDefault {
					formData[field.ID] = opt.Value
					break
				}
			}
		}
	}
}
