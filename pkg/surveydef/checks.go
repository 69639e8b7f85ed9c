package surveydef

import (
	"fmt"

	"github.com/goliatone/go-surveyflow/pkg/survey"
)

var knownFieldTypes = func() map[survey.FieldType]struct{} {
	out := make(map[survey.FieldType]struct{})
	for _, ft := range survey.FieldTypes() {
		out[ft] = struct{}{}
	}
	return out
}()

// checkConfig enforces the structural invariants the engine assumes already
// hold: non-empty ids, known field types, field-id uniqueness within a
// section tree, and at most one option source per field.
func checkConfig(cfg survey.SurveyConfig, source string) error {
	if cfg.ID == "" {
		return fmt.Errorf("surveydef: file %s defines a survey without an id", source)
	}

	for _, section := range cfg.Sections {
		if section.ID == "" {
			return fmt.Errorf("surveydef: survey %q has a section without an id (file %s)", cfg.ID, source)
		}
		seen := make(map[string]struct{})
		for _, field := range section.FlattenedFields() {
			if err := checkField(cfg.ID, section.ID, field, source); err != nil {
				return err
			}
			if _, dup := seen[field.ID]; dup {
				return fmt.Errorf("surveydef: survey %q section %q repeats field id %q (file %s)",
					cfg.ID, section.ID, field.ID, source)
			}
			seen[field.ID] = struct{}{}
		}
	}
	return nil
}

func checkField(surveyID, sectionID string, field survey.FieldDefinition, source string) error {
	if field.ID == "" {
		return fmt.Errorf("surveydef: survey %q section %q has a field without an id (file %s)",
			surveyID, sectionID, source)
	}
	if _, ok := knownFieldTypes[field.Type]; !ok {
		return fmt.Errorf("surveydef: survey %q field %q has unknown type %q (file %s)",
			surveyID, field.ID, field.Type, source)
	}

	refs := field.CatalogRefs()
	if len(refs) > 1 {
		return fmt.Errorf("surveydef: survey %q field %q references multiple option catalogs (file %s)",
			surveyID, field.ID, source)
	}
	if len(refs) == 1 && len(field.Options) > 0 {
		return fmt.Errorf("surveydef: survey %q field %q mixes a catalog reference with inline options (file %s)",
			surveyID, field.ID, source)
	}
	return nil
}
