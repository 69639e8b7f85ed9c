package survey

// RatingScale is a reusable ordered scale (e.g. 1..5 stars) referenced by
// rating fields.
type RatingScale struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Options []Option `json:"options" yaml:"options"`
}

// RadioOptionSet is a reusable option list for radio fields.
type RadioOptionSet struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Options []Option `json:"options" yaml:"options"`
}

// SelectOptionSet is a reusable option list for select and
// multiselectdropdown fields.
type SelectOptionSet struct {
	ID      string   `json:"id" yaml:"id"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Options []Option `json:"options" yaml:"options"`
}

// MultiSelectOptionSet is a reusable option list for multiselect fields. It
// additionally constrains how many options may be picked; nil means the bound
// is not enforced.
type MultiSelectOptionSet struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name,omitempty" yaml:"name,omitempty"`
	Options       []Option `json:"options" yaml:"options"`
	MinSelections *int     `json:"minSelections,omitempty" yaml:"minSelections,omitempty"`
	MaxSelections *int     `json:"maxSelections,omitempty" yaml:"maxSelections,omitempty"`
}

// Catalogs is the full set of externally-resolved option lookups handed to
// the engine. Maps may be nil or partially populated while a data-loading
// collaborator is still resolving; every lookup degrades to "not found".
type Catalogs struct {
	RatingScales          map[string]RatingScale          `json:"ratingScales,omitempty" yaml:"ratingScales,omitempty"`
	RadioOptionSets       map[string]RadioOptionSet       `json:"radioOptionSets,omitempty" yaml:"radioOptionSets,omitempty"`
	SelectOptionSets      map[string]SelectOptionSet      `json:"selectOptionSets,omitempty" yaml:"selectOptionSets,omitempty"`
	MultiSelectOptionSets map[string]MultiSelectOptionSet `json:"multiSelectOptionSets,omitempty" yaml:"multiSelectOptionSets,omitempty"`
}

// RatingScale looks up a rating scale by id.
func (c Catalogs) RatingScale(id string) (RatingScale, bool) {
	cat, ok := c.RatingScales[id]
	return cat, ok && id != ""
}

// RadioOptionSet looks up a radio option set by id.
func (c Catalogs) RadioOptionSet(id string) (RadioOptionSet, bool) {
	cat, ok := c.RadioOptionSets[id]
	return cat, ok && id != ""
}

// SelectOptionSet looks up a select option set by id.
func (c Catalogs) SelectOptionSet(id string) (SelectOptionSet, bool) {
	cat, ok := c.SelectOptionSets[id]
	return cat, ok && id != ""
}

// MultiSelectOptionSet looks up a multi-select option set by id.
func (c Catalogs) MultiSelectOptionSet(id string) (MultiSelectOptionSet, bool) {
	cat, ok := c.MultiSelectOptionSets[id]
	return cat, ok && id != ""
}

// OptionsFor resolves the authoritative option list for a field: the
// referenced catalog when it exists, otherwise the field's inline options.
// The boolean reports whether any option source resolved at all; fields with
// no source have no constrained answer space.
func (c Catalogs) OptionsFor(field FieldDefinition) ([]Option, bool) {
	switch field.Type {
	case FieldTypeRating:
		if cat, ok := c.RatingScale(field.RatingScaleID); ok {
			return cat.Options, true
		}
	case FieldTypeRadio:
		if cat, ok := c.RadioOptionSet(field.RadioOptionSetID); ok {
			return cat.Options, true
		}
	case FieldTypeSelect, FieldTypeMultiSelectDropdown:
		if cat, ok := c.SelectOptionSet(field.SelectOptionSetID); ok {
			return cat.Options, true
		}
	case FieldTypeMultiSelect:
		if cat, ok := c.MultiSelectOptionSet(field.MultiSelectOptionSetID); ok {
			return cat.Options, true
		}
	}
	if len(field.Options) > 0 {
		return field.Options, true
	}
	return nil, false
}

// Merge folds another catalog set into this one, returning the receiver for
// chaining. Later entries win on id collisions.
func (c *Catalogs) Merge(other Catalogs) *Catalogs {
	for id, cat := range other.RatingScales {
		if c.RatingScales == nil {
			c.RatingScales = make(map[string]RatingScale)
		}
		c.RatingScales[id] = cat
	}
	for id, cat := range other.RadioOptionSets {
		if c.RadioOptionSets == nil {
			c.RadioOptionSets = make(map[string]RadioOptionSet)
		}
		c.RadioOptionSets[id] = cat
	}
	for id, cat := range other.SelectOptionSets {
		if c.SelectOptionSets == nil {
			c.SelectOptionSets = make(map[string]SelectOptionSet)
		}
		c.SelectOptionSets[id] = cat
	}
	for id, cat := range other.MultiSelectOptionSets {
		if c.MultiSelectOptionSets == nil {
			c.MultiSelectOptionSets = make(map[string]MultiSelectOptionSet)
		}
		c.MultiSelectOptionSets[id] = cat
	}
	return c
}
