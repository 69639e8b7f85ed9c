// Package surveyflow assembles typed, paginated surveys and runs respondent
// sessions through a validation engine with progressive error disclosure.
// The root package re-exports the common types and offers one-call entry
// points; the building blocks live in pkg/survey (data model), pkg/engine
// (validation + pagination core), pkg/surveydef (definition loading), and
// pkg/runner/tui (terminal sessions).
package surveyflow

import (
	"context"

	"github.com/goliatone/go-surveyflow/pkg/engine"
	"github.com/goliatone/go-surveyflow/pkg/runner/tui"
	"github.com/goliatone/go-surveyflow/pkg/survey"
)

// Re-exported model types so simple callers only import the root package.
type (
	SurveyConfig    = survey.SurveyConfig
	SurveySection   = survey.SurveySection
	Subsection      = survey.Subsection
	FieldDefinition = survey.FieldDefinition
	FieldType       = survey.FieldType
	ValidationRule  = survey.ValidationRule
	Option          = survey.Option
	Catalogs        = survey.Catalogs
)

// Controller aliases the engine controller owning one respondent session.
type Controller = engine.Controller

// PaginationState aliases the step-indicator snapshot.
type PaginationState = engine.PaginationState

// NewController mounts a respondent session for the given survey.
func NewController(config SurveyConfig, catalogs Catalogs, opts ...engine.Option) *Controller {
	return engine.New(config, catalogs, opts...)
}

// RunTUI mounts a session and drives it interactively on the terminal,
// returning the descriptive-id response document as indented JSON.
func RunTUI(ctx context.Context, config SurveyConfig, catalogs Catalogs, opts ...engine.Option) ([]byte, error) {
	ctrl := engine.New(config, catalogs, opts...)
	return tui.New().Run(ctx, ctrl)
}
