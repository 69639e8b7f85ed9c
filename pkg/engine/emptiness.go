package engine

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-surveyflow/pkg/survey"
)

// IsEmpty reports whether the current value counts as "no answer" for the
// field. Pure; never panics on unexpected value shapes.
//
// Per field type: multi-value fields are empty unless the value is a
// non-empty array; free-text and number fields are empty when the trimmed
// string form is empty; single-choice fields are empty on nil or "";
// everything else (checkbox included) is empty when the value is falsy.
func IsEmpty(field survey.FieldDefinition, value any) bool {
	if value == nil {
		return true
	}

	switch field.Type {
	case survey.FieldTypeMultiSelect, survey.FieldTypeMultiSelectDropdown:
		arr, ok := asStringSlice(value)
		return !ok || len(arr) == 0
	case survey.FieldTypeText, survey.FieldTypeEmail, survey.FieldTypeTextarea, survey.FieldTypeNumber:
		return strings.TrimSpace(stringForm(value)) == ""
	case survey.FieldTypeSelect, survey.FieldTypeRadio, survey.FieldTypeRating:
		s, isString := value.(string)
		return isString && s == ""
	default:
		return isFalsy(value)
	}
}

// asStringSlice converts array-shaped values into []string. The second
// return is false for anything that is not an array.
func asStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, stringForm(item))
		}
		return out, true
	default:
		return nil, false
	}
}

func stringForm(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

func isFalsy(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case float64:
		return v == 0
	case float32:
		return v == 0
	case int:
		return v == 0
	case int64:
		return v == 0
	case []string:
		return len(v) == 0
	case []any:
		return len(v) == 0
	default:
		return false
	}
}
