package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-surveyflow/pkg/survey"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateFieldValue checks one field's current value against the implicit
// required/type/membership checks and then the field's declared rules, in
// that order, short-circuiting at the first failure. It returns the
// respondent-facing message for the failure or "" when every applicable
// check passed.
//
// Catalog lookups that miss (a deleted or still-loading catalog) degrade to
// "no constraint from that source"; the membership checks are the sanctioned
// way answers referencing deleted options surface as stale.
func ValidateFieldValue(field survey.FieldDefinition, value any, catalogs survey.Catalogs) string {
	if field.IsMultiValue() {
		return validateMultiValue(field, normalizeMulti(value), catalogs)
	}

	if field.Required && IsEmpty(field, value) {
		return MsgRequired
	}
	if IsEmpty(field, value) {
		// An optional, unanswered field is always valid.
		return ""
	}

	switch field.Type {
	case survey.FieldTypeEmail:
		if !emailPattern.MatchString(stringForm(value)) {
			return MsgInvalidEmail
		}
	case survey.FieldTypeNumber:
		if _, ok := parseNumber(value); !ok {
			return MsgInvalidNumber
		}
	case survey.FieldTypeRadio:
		if msg := checkScalarMembership(value, radioOptions(field, catalogs), MsgStaleOption); msg != "" {
			return msg
		}
	case survey.FieldTypeSelect:
		if msg := checkScalarMembership(value, selectOptions(field, catalogs), MsgStaleOption); msg != "" {
			return msg
		}
	case survey.FieldTypeRating:
		if msg := checkScalarMembership(value, ratingOptions(field, catalogs), MsgStaleRating); msg != "" {
			return msg
		}
	}

	return applyRules(field, value)
}

func validateMultiValue(field survey.FieldDefinition, selected []string, catalogs survey.Catalogs) string {
	if field.Required && len(selected) == 0 {
		return MsgRequired
	}
	if len(selected) == 0 {
		return ""
	}

	var optionSource []survey.Option
	haveSource := false

	if cat, ok := catalogs.MultiSelectOptionSet(field.MultiSelectOptionSetID); ok {
		if cat.MinSelections != nil && len(selected) < *cat.MinSelections {
			return msgMinSelections(*cat.MinSelections)
		}
		if cat.MaxSelections != nil && len(selected) > *cat.MaxSelections {
			return msgMaxSelections(*cat.MaxSelections)
		}
		optionSource, haveSource = cat.Options, true
	}
	if !haveSource {
		if cat, ok := catalogs.SelectOptionSet(field.SelectOptionSetID); ok {
			optionSource, haveSource = cat.Options, true
		}
	}
	if !haveSource && len(field.Options) > 0 {
		optionSource, haveSource = field.Options, true
	}

	if haveSource {
		valid := optionValueSet(optionSource)
		for _, v := range selected {
			if _, ok := valid[v]; !ok {
				return MsgStaleSelection
			}
		}
	}

	return applyRules(field, toAnySlice(selected))
}

// normalizeMulti coerces the raw value of a multi-value field into a string
// slice: arrays pass through, a non-empty scalar becomes a one-element
// slice, and everything else is treated as an empty selection.
func normalizeMulti(value any) []string {
	if arr, ok := asStringSlice(value); ok {
		return arr
	}
	if isFalsy(value) {
		return nil
	}
	return []string{stringForm(value)}
}

func checkScalarMembership(value any, options []survey.Option, staleMsg string) string {
	if options == nil {
		// No catalog and no inline options: unconstrained answer space.
		return ""
	}
	valid := optionValueSet(options)
	if _, ok := valid[stringForm(value)]; !ok {
		return staleMsg
	}
	return ""
}

func radioOptions(field survey.FieldDefinition, catalogs survey.Catalogs) []survey.Option {
	if cat, ok := catalogs.RadioOptionSet(field.RadioOptionSetID); ok {
		return cat.Options
	}
	if len(field.Options) > 0 {
		return field.Options
	}
	return nil
}

func selectOptions(field survey.FieldDefinition, catalogs survey.Catalogs) []survey.Option {
	if cat, ok := catalogs.SelectOptionSet(field.SelectOptionSetID); ok {
		return cat.Options
	}
	if len(field.Options) > 0 {
		return field.Options
	}
	return nil
}

func ratingOptions(field survey.FieldDefinition, catalogs survey.Catalogs) []survey.Option {
	if cat, ok := catalogs.RatingScale(field.RatingScaleID); ok {
		return cat.Options
	}
	if len(field.Options) > 0 {
		return field.Options
	}
	return nil
}

func optionValueSet(options []survey.Option) map[string]struct{} {
	out := make(map[string]struct{}, len(options))
	for _, opt := range options {
		out[opt.Value] = struct{}{}
	}
	return out
}

// applyRules evaluates the field's declared rules in order; the first rule
// to fail wins. Rules with unparseable parameters degrade to no constraint
// rather than failing closed.
func applyRules(field survey.FieldDefinition, value any) string {
	for _, rule := range field.Validation {
		if msg := applyRule(field, rule, value); msg != "" {
			return msg
		}
	}
	return ""
}

func applyRule(field survey.FieldDefinition, rule survey.ValidationRule, value any) string {
	switch rule.Type {
	case survey.RuleRequired:
		if IsEmpty(field, value) {
			return override(rule, MsgRequired)
		}
	case survey.RuleEmail:
		// The implicit type-format check already covered email-typed fields.
		if s, ok := value.(string); ok && field.Type != survey.FieldTypeEmail && !emailPattern.MatchString(s) {
			return override(rule, MsgInvalidEmail)
		}
	case survey.RuleMin:
		return checkMin(rule, value)
	case survey.RuleMax:
		return checkMax(rule, value)
	case survey.RuleMinSelections:
		if arr, ok := asStringSlice(value); ok {
			if n, ok := ruleInt(rule.Value); ok && len(arr) < n {
				return override(rule, msgMinSelections(n))
			}
		}
	case survey.RuleMaxSelections:
		if arr, ok := asStringSlice(value); ok {
			if n, ok := ruleInt(rule.Value); ok && len(arr) > n {
				return override(rule, msgMaxSelections(n))
			}
		}
	case survey.RulePattern:
		expr, _ := rule.Value.(string)
		if expr == "" {
			return ""
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return ""
		}
		if s, ok := value.(string); ok && !re.MatchString(s) {
			return override(rule, MsgInvalidFormat)
		}
	case survey.RuleCustom:
		// Custom rules are opaque to the engine; an external evaluator at
		// the UI boundary owns their semantics.
	}
	return ""
}

// checkMin applies a min rule to selection count for arrays, string length
// for strings, and numeric comparison for numbers.
func checkMin(rule survey.ValidationRule, value any) string {
	if arr, ok := asStringSlice(value); ok {
		if n, ok := ruleInt(rule.Value); ok && len(arr) < n {
			return override(rule, msgMinSelections(n))
		}
		return ""
	}
	if s, ok := value.(string); ok {
		if n, ok := ruleInt(rule.Value); ok && len(s) < n {
			return override(rule, msgMinLength(n))
		}
		return ""
	}
	if num, ok := numericValue(value); ok {
		if bound, bok := ruleFloat(rule.Value); bok && num < bound {
			return override(rule, msgMinNumber(bound))
		}
	}
	return ""
}

func checkMax(rule survey.ValidationRule, value any) string {
	if arr, ok := asStringSlice(value); ok {
		if n, ok := ruleInt(rule.Value); ok && len(arr) > n {
			return override(rule, msgMaxSelections(n))
		}
		return ""
	}
	if s, ok := value.(string); ok {
		if n, ok := ruleInt(rule.Value); ok && len(s) > n {
			return override(rule, msgMaxLength(n))
		}
		return ""
	}
	if num, ok := numericValue(value); ok {
		if bound, bok := ruleFloat(rule.Value); bok && num > bound {
			return override(rule, msgMaxNumber(bound))
		}
	}
	return ""
}

func override(rule survey.ValidationRule, fallback string) string {
	if rule.Message != "" {
		return rule.Message
	}
	return fallback
}

// parseNumber parses the string form of a value as a finite number.
func parseNumber(value any) (float64, bool) {
	if num, ok := numericValue(value); ok {
		return num, !math.IsNaN(num) && !math.IsInf(num, 0)
	}
	s := strings.TrimSpace(stringForm(value))
	if s == "" {
		return 0, false
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(num) || math.IsInf(num, 0) {
		return 0, false
	}
	return num, true
}

// numericValue unwraps values that already carry a numeric type.
func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func ruleInt(raw any) (int, bool) {
	if num, ok := numericValue(raw); ok {
		return int(num), true
	}
	if s, ok := raw.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		return n, err == nil
	}
	return 0, false
}

func ruleFloat(raw any) (float64, bool) {
	if num, ok := numericValue(raw); ok {
		return num, true
	}
	if s, ok := raw.(string); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return n, err == nil
	}
	return 0, false
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
