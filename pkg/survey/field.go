package survey

// FieldType enumerates the closed set of respondent-facing input kinds. The
// engine switches exhaustively on this set; unknown types fall through to the
// generic emptiness/falsy handling.
type FieldType string

const (
	FieldTypeText                FieldType = "text"
	FieldTypeEmail               FieldType = "email"
	FieldTypeNumber              FieldType = "number"
	FieldTypeTextarea            FieldType = "textarea"
	FieldTypeSelect              FieldType = "select"
	FieldTypeMultiSelect         FieldType = "multiselect"
	FieldTypeMultiSelectDropdown FieldType = "multiselectdropdown"
	FieldTypeRadio               FieldType = "radio"
	FieldTypeCheckbox            FieldType = "checkbox"
	FieldTypeRating              FieldType = "rating"
)

// FieldTypes lists every supported field type in a stable order, used by the
// definition loader to reject unknown types at load time.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText, FieldTypeEmail, FieldTypeNumber, FieldTypeTextarea,
		FieldTypeSelect, FieldTypeMultiSelect, FieldTypeMultiSelectDropdown,
		FieldTypeRadio, FieldTypeCheckbox, FieldTypeRating,
	}
}

const (
	RuleRequired      = "required"
	RuleEmail         = "email"
	RuleMin           = "min"
	RuleMax           = "max"
	RuleMinSelections = "minSelections"
	RuleMaxSelections = "maxSelections"
	RulePattern       = "pattern"
	RuleCustom        = "custom"
)

// ValidationRule is a single declarative constraint attached to a field.
// Rules run in declared order after the implicit required/type/membership
// checks; the first rule to fail wins. Message, when set, overrides the
// generated default for that rule.
type ValidationRule struct {
	Type    string `json:"type" yaml:"type"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Option is one selectable entry, either inline on a field or inside a
// catalog. Value is the stored answer token; Label is what respondents see.
type Option struct {
	Value     string `json:"value" yaml:"value"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty"`
	Order     int    `json:"order,omitempty" yaml:"order,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty" yaml:"isDefault,omitempty"`
}

// FieldDefinition describes one question. Option-bearing types reference at
// most one external catalog by id OR carry inline Options; the definition
// loader enforces that exclusivity so the engine can trust it. A field whose
// option source is absent entirely is treated as unconstrained.
type FieldDefinition struct {
	ID          string           `json:"id" yaml:"id"`
	Label       string           `json:"label,omitempty" yaml:"label,omitempty"`
	Type        FieldType        `json:"type" yaml:"type"`
	Required    bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Placeholder string           `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string           `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Validation  []ValidationRule `json:"validation,omitempty" yaml:"validation,omitempty"`

	RatingScaleID          string `json:"ratingScaleId,omitempty" yaml:"ratingScaleId,omitempty"`
	RadioOptionSetID       string `json:"radioOptionSetId,omitempty" yaml:"radioOptionSetId,omitempty"`
	SelectOptionSetID      string `json:"selectOptionSetId,omitempty" yaml:"selectOptionSetId,omitempty"`
	MultiSelectOptionSetID string `json:"multiSelectOptionSetId,omitempty" yaml:"multiSelectOptionSetId,omitempty"`

	Options []Option `json:"options,omitempty" yaml:"options,omitempty"`
}

// CatalogRefs returns the catalog ids the field references, in a stable
// order. Used by the loader to detect fields that carry both a catalog
// reference and inline options.
func (f FieldDefinition) CatalogRefs() []string {
	var refs []string
	for _, id := range []string{f.RatingScaleID, f.RadioOptionSetID, f.SelectOptionSetID, f.MultiSelectOptionSetID} {
		if id != "" {
			refs = append(refs, id)
		}
	}
	return refs
}

// IsMultiValue reports whether the field stores an array-of-string answer.
func (f FieldDefinition) IsMultiValue() bool {
	return f.Type == FieldTypeMultiSelect || f.Type == FieldTypeMultiSelectDropdown
}
