// Package testsupport provides the shared survey fixture used by engine and
// runner tests so scenarios stay comparable across packages.
package testsupport

import "github.com/goliatone/go-surveyflow/pkg/survey"

// IntPtr returns a pointer to n, for catalog selection bounds.
func IntPtr(n int) *int { return &n }

// Config builds the two-section fixture survey used throughout the tests:
// a "Team Info" section (with a contact-preferences subsection) and a
// "Feedback" section covering every field type the engine dispatches on.
func Config() survey.SurveyConfig {
	return survey.SurveyConfig{
		ID:                  "team-onboarding",
		Title:               "Team Onboarding",
		AllowBackNavigation: true,
		Sections: []survey.SurveySection{
			{
				ID:    "team-info",
				Title: "Team Info",
				Fields: []survey.FieldDefinition{
					{ID: "name", Label: "Full Name", Type: survey.FieldTypeText, Required: true},
					{ID: "email", Label: "Email Address", Type: survey.FieldTypeEmail, Required: true},
					{ID: "role", Label: "Role", Type: survey.FieldTypeRadio, RadioOptionSetID: "roles"},
				},
				Subsections: []survey.Subsection{
					{
						ID:    "contact-prefs",
						Title: "Contact Preferences",
						Fields: []survey.FieldDefinition{
							{ID: "channels", Label: "Preferred Channels", Type: survey.FieldTypeMultiSelect, Required: true, MultiSelectOptionSetID: "channels"},
							{ID: "updates", Label: "Receive Updates", Type: survey.FieldTypeCheckbox},
						},
					},
				},
			},
			{
				ID:    "feedback",
				Title: "Feedback",
				Fields: []survey.FieldDefinition{
					{ID: "overall", Label: "Overall Rating", Type: survey.FieldTypeRating, Required: true, RatingScaleID: "stars"},
					{ID: "comments", Label: "Comments", Type: survey.FieldTypeTextarea, Validation: []survey.ValidationRule{
						{Type: survey.RuleMin, Value: 10, Message: "Tell us a bit more"},
					}},
					{ID: "team-size", Label: "Team Size", Type: survey.FieldTypeNumber},
					{ID: "referral", Label: "How did you hear about us?", Type: survey.FieldTypeSelect, SelectOptionSetID: "sources"},
				},
			},
		},
	}
}

// Catalogs builds the option catalogs referenced by Config.
func Catalogs() survey.Catalogs {
	return survey.Catalogs{
		RatingScales: map[string]survey.RatingScale{
			"stars": {
				ID:   "stars",
				Name: "Five Stars",
				Options: []survey.Option{
					{Value: "1", Label: "Poor", Order: 1},
					{Value: "2", Label: "Fair", Order: 2},
					{Value: "3", Label: "Good", Order: 3, IsDefault: true},
					{Value: "4", Label: "Great", Order: 4},
					{Value: "5", Label: "Excellent", Order: 5},
				},
			},
		},
		RadioOptionSets: map[string]survey.RadioOptionSet{
			"roles": {
				ID:   "roles",
				Name: "Team Roles",
				Options: []survey.Option{
					{Value: "engineer", Label: "Engineer", Order: 1},
					{Value: "designer", Label: "Designer", Order: 2},
					{Value: "manager", Label: "Manager", Order: 3},
				},
			},
		},
		SelectOptionSets: map[string]survey.SelectOptionSet{
			"sources": {
				ID:   "sources",
				Name: "Referral Sources",
				Options: []survey.Option{
					{Value: "search", Label: "Web Search", Order: 1},
					{Value: "friend", Label: "A Friend", Order: 2},
					{Value: "other", Label: "Other", Order: 3},
				},
			},
		},
		MultiSelectOptionSets: map[string]survey.MultiSelectOptionSet{
			"channels": {
				ID:            "channels",
				Name:          "Contact Channels",
				MinSelections: IntPtr(1),
				MaxSelections: IntPtr(2),
				Options: []survey.Option{
					{Value: "email", Label: "Email", Order: 1},
					{Value: "slack", Label: "Slack", Order: 2, IsDefault: true},
					{Value: "phone", Label: "Phone", Order: 3},
				},
			},
		},
	}
}
