package tui

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-surveyflow/pkg/engine"
	"github.com/goliatone/go-surveyflow/pkg/survey"
)

// Navigation labels shown after each section's fields.
const (
	choiceNext     = "Next section"
	choicePrevious = "Previous section"
	choiceSubmit   = "Submit responses"
	choiceReview   = "Edit this section again"
)

// Runner drives one respondent session through the engine on a terminal:
// prompt the current section's fields, attempt to advance, surface whatever
// errors the controller decides to show, and emit the descriptive-id
// response document on a successful submit.
type Runner struct {
	driver   PromptDriver
	theme    Theme
	pageSize int
}

// New constructs a Runner with the survey-backed prompt driver by default.
func New(options ...Option) *Runner {
	r := &Runner{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Run loops the respondent through the paginated survey until submission
// succeeds or the session is aborted. Restoration of a saved session runs
// first when the controller carries one. The returned bytes are the
// indented JSON response document.
func (r *Runner) Run(ctx context.Context, ctrl *engine.Controller) ([]byte, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("tui: controller is required")
	}
	if len(ctrl.Config().Sections) == 0 {
		return nil, ErrNoSections
	}

	ctrl.Restore(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		section := ctrl.CurrentSection()
		state := ctrl.Pagination()
		header := fmt.Sprintf("%s%s (section %d of %d)",
			r.theme.InfoPrefix, displayTitle(section), state.CurrentSectionIndex+1, state.TotalSections)
		if err := r.driver.Info(ctx, header); err != nil {
			return nil, err
		}

		for _, field := range section.FlattenedFields() {
			if err := r.promptField(ctx, ctrl, field); err != nil {
				return nil, err
			}
		}

		done, response, err := r.navigate(ctx, ctrl, state.IsLastSection)
		if err != nil {
			return nil, err
		}
		if done {
			return response, nil
		}
	}
}

func (r *Runner) navigate(ctx context.Context, ctrl *engine.Controller, last bool) (bool, []byte, error) {
	choices := []string{choiceNext}
	if last {
		choices = []string{choiceSubmit}
	}
	state := ctrl.Pagination()
	if state.AllowBackNavigation && !state.IsFirstSection {
		choices = append(choices, choicePrevious)
	}
	choices = append(choices, choiceReview)

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:  "Continue?",
		Options:  choices,
		PageSize: r.pageSize,
	})
	if err != nil {
		return false, nil, err
	}
	if idx < 0 || idx >= len(choices) {
		return false, nil, nil
	}

	switch choices[idx] {
	case choiceNext:
		result := ctrl.Next()
		if !result.Advanced {
			if err := r.showSectionErrors(ctx, ctrl); err != nil {
				return false, nil, err
			}
		}
	case choicePrevious:
		ctrl.Previous()
	case choiceSubmit:
		result := ctrl.Submit(ctx)
		if result.OK {
			data, err := json.MarshalIndent(result.Response, "", "  ")
			if err != nil {
				return false, nil, fmt.Errorf("tui: serialize response: %w", err)
			}
			return true, data, nil
		}
		if result.Err != nil {
			msg := fmt.Sprintf("%sSubmission failed: %v", r.theme.ErrorPrefix, result.Err)
			if err := r.driver.Info(ctx, msg); err != nil {
				return false, nil, err
			}
			// Respondent stays on the current section and may retry.
			return false, nil, nil
		}
		// Validation failed; the controller already jumped to the first
		// invalid section.
		if err := r.showSectionErrors(ctx, ctrl); err != nil {
			return false, nil, err
		}
	case choiceReview:
		// Re-prompt the same section on the next loop pass.
	}
	return false, nil, nil
}

func (r *Runner) promptField(ctx context.Context, ctrl *engine.Controller, field survey.FieldDefinition) error {
	value, err := r.collect(ctx, ctrl, field)
	if err != nil {
		return err
	}
	ctrl.SetValue(field.ID, value)

	// Live validation output only when the controller surfaces it.
	if msg, ok := ctrl.ErrorFor(field.ID); ok {
		return r.driver.Info(ctx, fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, displayLabel(field), msg))
	}
	return nil
}

func (r *Runner) collect(ctx context.Context, ctrl *engine.Controller, field survey.FieldDefinition) (any, error) {
	label := displayLabel(field)
	current, _ := ctrl.Value(field.ID)

	switch field.Type {
	case survey.FieldTypeTextarea:
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: label,
			Default: displayValue(current),
			Help:    field.HelpText,
		})
	case survey.FieldTypeCheckbox:
		checked, _ := current.(bool)
		return r.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: checked,
			Help:    field.HelpText,
		})
	case survey.FieldTypeSelect, survey.FieldTypeRadio, survey.FieldTypeRating:
		options, ok := ctrl.Catalogs().OptionsFor(field)
		if !ok {
			break
		}
		idx, err := r.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      optionLabels(options),
			DefaultIndex: optionIndex(options, displayValue(current)),
			Help:         field.HelpText,
			PageSize:     r.pageSize,
		})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(options) {
			return "", nil
		}
		return options[idx].Value, nil
	case survey.FieldTypeMultiSelect, survey.FieldTypeMultiSelectDropdown:
		options, ok := ctrl.Catalogs().OptionsFor(field)
		if !ok {
			break
		}
		selected, _ := current.([]string)
		indices, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  label,
			Options:  optionLabels(options),
			Defaults: optionIndices(options, selected),
			Help:     field.HelpText,
			PageSize: r.pageSize,
		})
		if err != nil {
			return nil, err
		}
		values := make([]string, 0, len(indices))
		for _, i := range indices {
			if i >= 0 && i < len(options) {
				values = append(values, options[i].Value)
			}
		}
		return values, nil
	}

	// text, email, number, and option-bearing fields with no option source
	// fall back to free input.
	return r.driver.Input(ctx, InputConfig{
		Message: label,
		Default: displayValue(current),
		Help:    field.HelpText,
	})
}

func (r *Runner) showSectionErrors(ctx context.Context, ctrl *engine.Controller) error {
	section := ctrl.CurrentSection()
	errs := ctrl.Errors()
	for _, field := range section.FlattenedFields() {
		msg, ok := errs[field.ID]
		if !ok {
			continue
		}
		line := fmt.Sprintf("%s%s: %s", r.theme.ErrorPrefix, displayLabel(field), msg)
		if err := r.driver.Info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func displayLabel(field survey.FieldDefinition) string {
	if field.Label != "" {
		return field.Label
	}
	return field.ID
}

func displayTitle(section survey.SurveySection) string {
	if section.Title != "" {
		return section.Title
	}
	return section.ID
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func optionLabels(options []survey.Option) []string {
	out := make([]string, len(options))
	for i, opt := range options {
		if opt.Label != "" {
			out[i] = opt.Label
		} else {
			out[i] = opt.Value
		}
	}
	return out
}

func optionIndex(options []survey.Option, value string) int {
	if value == "" {
		return -1
	}
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

func optionIndices(options []survey.Option, values []string) []int {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	var out []int
	for i, opt := range options {
		if _, ok := seen[opt.Value]; ok {
			out = append(out, i)
		}
	}
	return out
}
