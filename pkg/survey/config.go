package survey

// Subsection groups related fields inside a section. Subsections never nest
// further.
type Subsection struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []FieldDefinition `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// SurveySection is one page of a paginated survey: its own ordered fields
// plus ordered subsections. Field ids are unique across a section and all of
// its subsections; the definition loader rejects configs that break this.
type SurveySection struct {
	ID          string            `json:"id" yaml:"id"`
	Title       string            `json:"title,omitempty" yaml:"title,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Fields      []FieldDefinition `json:"fields,omitempty" yaml:"fields,omitempty"`
	Subsections []Subsection      `json:"subsections,omitempty" yaml:"subsections,omitempty"`
}

// FlattenedFields returns the section's fields followed by every
// subsection's fields, in declared order.
func (s SurveySection) FlattenedFields() []FieldDefinition {
	out := make([]FieldDefinition, 0, len(s.Fields))
	out = append(out, s.Fields...)
	for _, sub := range s.Subsections {
		out = append(out, sub.Fields...)
	}
	return out
}

// SurveyConfig is the full section/field tree for one survey. The engine
// treats it as immutable for the lifetime of a respondent session.
type SurveyConfig struct {
	ID                  string          `json:"id" yaml:"id"`
	Title               string          `json:"title,omitempty" yaml:"title,omitempty"`
	Description         string          `json:"description,omitempty" yaml:"description,omitempty"`
	AllowBackNavigation bool            `json:"allowBackNavigation" yaml:"allowBackNavigation"`
	Sections            []SurveySection `json:"sections" yaml:"sections"`
}

// AllFields returns every field across every section and subsection, in
// declared order.
func (c SurveyConfig) AllFields() []FieldDefinition {
	var out []FieldDefinition
	for _, section := range c.Sections {
		out = append(out, section.FlattenedFields()...)
	}
	return out
}

// SectionOf returns the index of the section that declares the field id, or
// -1 when no section does.
func (c SurveyConfig) SectionOf(fieldID string) int {
	for idx, section := range c.Sections {
		for _, field := range section.FlattenedFields() {
			if field.ID == fieldID {
				return idx
			}
		}
	}
	return -1
}
