package engine

import (
	"regexp"
	"strings"

	"github.com/goliatone/go-surveyflow/pkg/survey"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lower-cases the input and collapses every run of non-alphanumeric
// characters into a single underscore. This is the persisted wire transform
// and must stay byte-stable across releases.
func slugify(input string) string {
	return slugPattern.ReplaceAllString(strings.ToLower(input), "_")
}

// ResponseKey derives the descriptive id a stored answer is keyed by:
// "{section_slug}_{field_slug}" from the section title and field label.
// ("Team Info", "Email Address") -> "team_info_email_address".
func ResponseKey(sectionTitle, fieldLabel string) string {
	return slugify(sectionTitle) + "_" + slugify(fieldLabel)
}

// BuildResponse re-keys answered fields from internal field ids to
// descriptive ids. Only fields with a recorded value appear; subsection
// fields key off their parent section's title.
func BuildResponse(config survey.SurveyConfig, formData map[string]any) map[string]any {
	out := make(map[string]any)
	for _, section := range config.Sections {
		for _, field := range section.FlattenedFields() {
			value, ok := formData[field.ID]
			if !ok {
				continue
			}
			out[ResponseKey(section.Title, field.Label)] = value
		}
	}
	return out
}
