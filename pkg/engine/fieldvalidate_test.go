package engine

import (
	"testing"

	"github.com/goliatone/go-surveyflow/pkg/survey"
	"github.com/goliatone/go-surveyflow/pkg/testsupport"
)

func TestValidateFieldValue_EmailField(t *testing.T) {
	field := survey.FieldDefinition{ID: "email", Type: survey.FieldTypeEmail, Required: true}
	catalogs := survey.Catalogs{}

	cases := []struct {
		value any
		want  string
	}{
		{"", MsgRequired},
		{"a@b", MsgInvalidEmail},
		{"a b@c.com", MsgInvalidEmail},
		{"a@b.com", ""},
	}
	for _, tc := range cases {
		if got := ValidateFieldValue(field, tc.value, catalogs); got != tc.want {
			t.Fatalf("value %q: got %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestValidateFieldValue_EmptyOptionalShortCircuit(t *testing.T) {
	// An optional, unanswered field passes regardless of any other rule.
	cases := []struct {
		field  survey.FieldDefinition
		values []any
	}{
		{survey.FieldDefinition{ID: "a", Type: survey.FieldTypeEmail}, []any{nil, "", "   "}},
		{survey.FieldDefinition{ID: "b", Type: survey.FieldTypeNumber, Validation: []survey.ValidationRule{{Type: survey.RuleMin, Value: 5}}}, []any{nil, "", "   "}},
		{survey.FieldDefinition{ID: "c", Type: survey.FieldTypeMultiSelect, MultiSelectOptionSetID: "channels"}, []any{nil, "", []string{}}},
		{survey.FieldDefinition{ID: "d", Type: survey.FieldTypeText, Validation: []survey.ValidationRule{{Type: survey.RulePattern, Value: `^\d+$`}}}, []any{nil, "", "   "}},
	}
	for _, tc := range cases {
		for _, value := range tc.values {
			if got := ValidateFieldValue(tc.field, value, testsupport.Catalogs()); got != "" {
				t.Fatalf("field %s value %#v: got %q, want no error", tc.field.ID, value, got)
			}
		}
	}
}

func TestValidateFieldValue_NumberField(t *testing.T) {
	field := survey.FieldDefinition{ID: "n", Type: survey.FieldTypeNumber, Required: true}

	if got := ValidateFieldValue(field, "abc", survey.Catalogs{}); got != MsgInvalidNumber {
		t.Fatalf("got %q, want %q", got, MsgInvalidNumber)
	}
	if got := ValidateFieldValue(field, "12.5", survey.Catalogs{}); got != "" {
		t.Fatalf("got %q, want valid", got)
	}
	if got := ValidateFieldValue(field, "Inf", survey.Catalogs{}); got != MsgInvalidNumber {
		t.Fatalf("non-finite input: got %q, want %q", got, MsgInvalidNumber)
	}
}

func TestValidateFieldValue_MultiSelectCatalog(t *testing.T) {
	field := survey.FieldDefinition{
		ID:                     "pick",
		Type:                   survey.FieldTypeMultiSelect,
		Required:               true,
		MultiSelectOptionSetID: "x",
	}
	catalogs := survey.Catalogs{
		MultiSelectOptionSets: map[string]survey.MultiSelectOptionSet{
			"x": {
				ID:            "x",
				MinSelections: testsupport.IntPtr(1),
				MaxSelections: testsupport.IntPtr(2),
				Options: []survey.Option{
					{Value: "a"}, {Value: "b"}, {Value: "c"},
				},
			},
		},
	}

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{"required empty", []string{}, MsgRequired},
		{"over max", []string{"a", "b", "c"}, "Please select at most 2 options"},
		{"stale member", []string{"a", "z"}, MsgStaleSelection},
		{"single valid", []string{"a"}, ""},
		{"two valid", []string{"b", "c"}, ""},
		{"scalar coerced", "a", ""},
		{"scalar coerced stale", "z", MsgStaleSelection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateFieldValue(field, tc.value, catalogs); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidateFieldValue_MinSelectionsSingular(t *testing.T) {
	field := survey.FieldDefinition{
		ID:                     "pick",
		Type:                   survey.FieldTypeMultiSelect,
		MultiSelectOptionSetID: "one",
	}
	catalogs := survey.Catalogs{
		MultiSelectOptionSets: map[string]survey.MultiSelectOptionSet{
			"one": {
				ID:            "one",
				MinSelections: testsupport.IntPtr(2),
				MaxSelections: testsupport.IntPtr(1),
				Options:       []survey.Option{{Value: "a"}, {Value: "b"}},
			},
		},
	}
	if got := ValidateFieldValue(field, []string{"a"}, catalogs); got != "Please select at least 2 options" {
		t.Fatalf("plural: got %q", got)
	}

	catalogs.MultiSelectOptionSets["one"] = survey.MultiSelectOptionSet{
		ID:            "one",
		MaxSelections: testsupport.IntPtr(1),
		Options:       []survey.Option{{Value: "a"}, {Value: "b"}},
	}
	if got := ValidateFieldValue(field, []string{"a", "b"}, catalogs); got != "Please select at most 1 option" {
		t.Fatalf("singular: got %q", got)
	}
}

func TestValidateFieldValue_StaleScalarMembership(t *testing.T) {
	catalogs := testsupport.Catalogs()

	radio := survey.FieldDefinition{ID: "role", Type: survey.FieldTypeRadio, RadioOptionSetID: "roles"}
	if got := ValidateFieldValue(radio, "astronaut", catalogs); got != MsgStaleOption {
		t.Fatalf("radio: got %q, want %q", got, MsgStaleOption)
	}
	if got := ValidateFieldValue(radio, "engineer", catalogs); got != "" {
		t.Fatalf("radio valid: got %q", got)
	}

	rating := survey.FieldDefinition{ID: "overall", Type: survey.FieldTypeRating, RatingScaleID: "stars"}
	if got := ValidateFieldValue(rating, "9", catalogs); got != MsgStaleRating {
		t.Fatalf("rating: got %q, want %q", got, MsgStaleRating)
	}

	sel := survey.FieldDefinition{ID: "referral", Type: survey.FieldTypeSelect, SelectOptionSetID: "sources"}
	if got := ValidateFieldValue(sel, "billboard", catalogs); got != MsgStaleOption {
		t.Fatalf("select: got %q, want %q", got, MsgStaleOption)
	}
}

func TestValidateFieldValue_MissingCatalogIsUnconstrained(t *testing.T) {
	// A deleted or still-loading catalog degrades to no constraint; the
	// field must not fail closed.
	field := survey.FieldDefinition{ID: "role", Type: survey.FieldTypeRadio, RadioOptionSetID: "gone"}
	if got := ValidateFieldValue(field, "anything", survey.Catalogs{}); got != "" {
		t.Fatalf("got %q, want no error", got)
	}
}

func TestValidateFieldValue_InlineOptions(t *testing.T) {
	field := survey.FieldDefinition{
		ID:   "mood",
		Type: survey.FieldTypeSelect,
		Options: []survey.Option{
			{Value: "happy"}, {Value: "sad"},
		},
	}
	if got := ValidateFieldValue(field, "confused", survey.Catalogs{}); got != MsgStaleOption {
		t.Fatalf("got %q, want %q", got, MsgStaleOption)
	}
	if got := ValidateFieldValue(field, "happy", survey.Catalogs{}); got != "" {
		t.Fatalf("got %q, want no error", got)
	}
}

func TestValidateFieldValue_CustomRules(t *testing.T) {
	cases := []struct {
		name  string
		field survey.FieldDefinition
		value any
		want  string
	}{
		{
			"min string length with override",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeTextarea, Validation: []survey.ValidationRule{
				{Type: survey.RuleMin, Value: 10, Message: "Tell us a bit more"},
			}},
			"short",
			"Tell us a bit more",
		},
		{
			"min string length passing",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeTextarea, Validation: []survey.ValidationRule{
				{Type: survey.RuleMin, Value: 5},
			}},
			"long enough",
			"",
		},
		{
			"max string length default message",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeText, Validation: []survey.ValidationRule{
				{Type: survey.RuleMax, Value: 3},
			}},
			"toolong",
			"Must be at most 3 characters",
		},
		{
			"min numeric comparison",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeRating, Validation: []survey.ValidationRule{
				{Type: survey.RuleMin, Value: 3},
			}},
			float64(2),
			"Must be at least 3",
		},
		{
			"min selection count on arrays",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeMultiSelect, Validation: []survey.ValidationRule{
				{Type: survey.RuleMinSelections, Value: 2},
			}},
			[]string{"a"},
			"Please select at least 2 options",
		},
		{
			"pattern mismatch",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeText, Validation: []survey.ValidationRule{
				{Type: survey.RulePattern, Value: `^\d{4}$`},
			}},
			"12a4",
			MsgInvalidFormat,
		},
		{
			"invalid pattern degrades to no constraint",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeText, Validation: []survey.ValidationRule{
				{Type: survey.RulePattern, Value: `([`},
			}},
			"anything",
			"",
		},
		{
			"email rule on non-email field",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeText, Validation: []survey.ValidationRule{
				{Type: survey.RuleEmail},
			}},
			"not-an-email",
			MsgInvalidEmail,
		},
		{
			"first failing rule wins",
			survey.FieldDefinition{ID: "c", Type: survey.FieldTypeText, Validation: []survey.ValidationRule{
				{Type: survey.RuleMin, Value: 10, Message: "first"},
				{Type: survey.RulePattern, Value: `^\d+$`, Message: "second"},
			}},
			"abc",
			"first",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidateFieldValue(tc.field, tc.value, survey.Catalogs{}); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
