package engine

import (
	"context"

	"github.com/goliatone/go-surveyflow/pkg/survey"
)

// Controller composes the validators, the paginator, and the
// progressive-disclosure policy for one form-filling session. Field errors
// stay hidden until the respondent tries to advance past the owning section
// (or submits the whole form); from then on that scope is live-validated on
// every change.
//
// All operations run synchronously on the caller's goroutine; the Controller
// holds no locks and expects the single-threaded, event-driven usage the UI
// boundary provides.
type Controller struct {
	config   survey.SurveyConfig
	catalogs survey.Catalogs

	formData map[string]any
	errors   map[string]string
	dirty    map[string]struct{}

	pager             *Paginator
	validatedSections map[int]struct{}
	hasSubmitted      bool
	restored          bool

	session  Session
	reporter Reporter
	submit   SubmitFunc
}

// PaginationState is the read-only snapshot exposed to the step-indicator UI.
type PaginationState struct {
	CurrentSectionIndex int
	TotalSections       int
	VisitedSections     []int
	IsFirstSection      bool
	IsLastSection       bool
	AllowBackNavigation bool
}

// NextResult reports the outcome of a forward-navigation attempt. When the
// current section is invalid the index does not move and FocusField names
// the first invalid field (declared order) the UI should scroll to.
type NextResult struct {
	Advanced   bool
	FocusField string
}

// SubmitResult reports the outcome of a whole-form submission attempt. On
// validation failure the controller has already navigated to FocusSection.
// Err is set only when the external submit collaborator rejected.
type SubmitResult struct {
	OK           bool
	Response     map[string]any
	FocusSection int
	FocusField   string
	Err          error
}

// New mounts a session: empty form state, computed defaults applied, the
// paginator at section 0.
func New(config survey.SurveyConfig, catalogs survey.Catalogs, opts ...Option) *Controller {
	c := &Controller{
		config:   config,
		catalogs: catalogs,
		reporter: nopReporter{},
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(c)
	}
	c.mount()
	return c
}

func (c *Controller) mount() {
	c.formData = make(map[string]any)
	c.errors = make(map[string]string)
	c.dirty = make(map[string]struct{})
	c.validatedSections = make(map[int]struct{})
	c.hasSubmitted = false
	c.restored = false
	c.pager = NewPaginator(len(c.config.Sections), c.config.AllowBackNavigation)
	ApplyDefaults(c.config, c.catalogs, c.formData)
}

// Reset wipes form data and errors and re-mounts the session from scratch.
func (c *Controller) Reset() {
	c.mount()
}

// Config returns the immutable survey configuration for this session.
func (c *Controller) Config() survey.SurveyConfig { return c.config }

// Catalogs returns the current option-catalog snapshot.
func (c *Controller) Catalogs() survey.Catalogs { return c.catalogs }

// SetCatalogs swaps in a fresh catalog snapshot once a data-loading
// collaborator resolves, then re-runs default assignment. Re-running is
// idempotent: respondent-set and restored values are never overwritten.
func (c *Controller) SetCatalogs(catalogs survey.Catalogs) {
	c.catalogs = catalogs
	ApplyDefaults(c.config, c.catalogs, c.formData)
}

// FormData returns a copy of the current answers keyed by field id.
func (c *Controller) FormData() map[string]any {
	out := make(map[string]any, len(c.formData))
	for k, v := range c.formData {
		out[k] = v
	}
	return out
}

// Errors returns a copy of the currently-surfaced error map.
func (c *Controller) Errors() map[string]string {
	out := make(map[string]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// Value returns the current answer for a field id.
func (c *Controller) Value(fieldID string) (any, bool) {
	v, ok := c.formData[fieldID]
	return v, ok
}

// ErrorFor returns the surfaced error for a field, if any.
func (c *Controller) ErrorFor(fieldID string) (string, bool) {
	msg, ok := c.errors[fieldID]
	return msg, ok
}

// SetValue records a respondent edit. When the field's errors are already
// being surfaced (its section was submitted, the whole form was submitted,
// or the field carries an error) the single field is re-validated
// immediately and its error entry updated or cleared; otherwise the error
// map is left untouched so nothing flashes before the respondent tries to
// proceed.
func (c *Controller) SetValue(fieldID string, value any) {
	c.formData[fieldID] = value
	c.dirty[fieldID] = struct{}{}

	if !c.shouldShowError(fieldID) {
		return
	}
	field, ok := c.fieldByID(fieldID)
	if !ok {
		return
	}
	if msg := ValidateFieldValue(field, value, c.catalogs); msg != "" {
		c.errors[fieldID] = msg
	} else {
		delete(c.errors, fieldID)
	}
}

func (c *Controller) shouldShowError(fieldID string) bool {
	if c.hasSubmitted {
		return true
	}
	if _, carries := c.errors[fieldID]; carries {
		return true
	}
	sectionIdx := c.config.SectionOf(fieldID)
	if sectionIdx < 0 {
		return false
	}
	_, validated := c.validatedSections[sectionIdx]
	return validated
}

func (c *Controller) fieldByID(fieldID string) (survey.FieldDefinition, bool) {
	for _, field := range c.config.AllFields() {
		if field.ID == fieldID {
			return field, true
		}
	}
	return survey.FieldDefinition{}, false
}

// Next attempts to advance past the current section. The section is marked
// as validated regardless of outcome; on failure its errors merge into the
// surfaced map and pagination does not move.
func (c *Controller) Next() NextResult {
	if len(c.config.Sections) == 0 {
		return NextResult{}
	}
	current := c.pager.Current()
	c.validatedSections[current] = struct{}{}

	result := ValidateSection(c.config, current, c.formData, c.catalogs)
	c.mergeScopeErrors(c.config.Sections[current].FlattenedFields(), result.Errors)

	if !result.Valid {
		return NextResult{
			FocusField: FirstInvalidField(c.config.Sections[current].FlattenedFields(), result.Errors),
		}
	}
	return NextResult{Advanced: c.pager.Next()}
}

// Previous steps back one section when the configuration allows it.
func (c *Controller) Previous() bool {
	return c.pager.Previous()
}

// SelectSection handles step-indicator clicks: the target must be the
// current section or one already visited. Error navigation and restoration
// bypass this guard through the paginator directly.
func (c *Controller) SelectSection(index int) bool {
	if index != c.pager.Current() && !c.pager.HasVisited(index) {
		return false
	}
	return c.pager.GoTo(index)
}

// Submit runs whole-form validation and, when clean, hands the
// descriptive-id response document to the submit collaborator. On
// validation failure the controller merges every error, jumps to the first
// section containing an invalid field, and reports the field to focus. A
// collaborator rejection leaves state untouched (hasSubmitted stays true,
// errors stay surfaced) so the respondent can retry from the same section.
func (c *Controller) Submit(ctx context.Context) SubmitResult {
	c.hasSubmitted = true

	result := ValidateAllFields(c.config, c.formData, c.catalogs)
	c.mergeScopeErrors(c.config.AllFields(), result.Errors)

	if !result.Valid {
		focusSection, focusField := c.firstInvalidLocation(result.Errors)
		c.pager.GoTo(focusSection)
		return SubmitResult{FocusSection: focusSection, FocusField: focusField}
	}

	response := BuildResponse(c.config, c.formData)
	if c.submit != nil {
		if err := c.submit(ctx, response); err != nil {
			c.reporter.Report("submit", err)
			return SubmitResult{
				Response:     response,
				FocusSection: c.pager.Current(),
				Err:          err,
			}
		}
	}
	return SubmitResult{OK: true, Response: response, FocusSection: c.pager.Current()}
}

func (c *Controller) firstInvalidLocation(errors map[string]string) (int, string) {
	for idx, section := range c.config.Sections {
		if field := FirstInvalidField(section.FlattenedFields(), errors); field != "" {
			return idx, field
		}
	}
	return c.pager.Current(), ""
}

// mergeScopeErrors recomputes the surfaced entries for every field in the
// scope: failing fields are set, passing fields are cleared. Entries outside
// the scope are untouched.
func (c *Controller) mergeScopeErrors(fields []survey.FieldDefinition, errors map[string]string) {
	for _, field := range fields {
		if msg, ok := errors[field.ID]; ok {
			c.errors[field.ID] = msg
		} else {
			delete(c.errors, field.ID)
		}
	}
}

// Pagination returns the current pagination snapshot.
func (c *Controller) Pagination() PaginationState {
	return PaginationState{
		CurrentSectionIndex: c.pager.Current(),
		TotalSections:       c.pager.Total(),
		VisitedSections:     c.pager.Visited(),
		IsFirstSection:      c.pager.IsFirst(),
		IsLastSection:       c.pager.IsLast(),
		AllowBackNavigation: c.pager.AllowsBack(),
	}
}

// CurrentSection returns the section the respondent is on. Degenerate
// configs with no sections yield the zero value.
func (c *Controller) CurrentSection() survey.SurveySection {
	if len(c.config.Sections) == 0 {
		return survey.SurveySection{}
	}
	return c.config.Sections[c.pager.Current()]
}

// HasSubmitted reports whether a whole-form submission has been attempted.
func (c *Controller) HasSubmitted() bool { return c.hasSubmitted }

// SectionValidity recomputes the per-section validity badges for the step
// indicator. Pure: surfaced errors are not touched.
func (c *Controller) SectionValidity() []bool {
	out := make([]bool, len(c.config.Sections))
	for idx := range c.config.Sections {
		out[idx] = ValidateSection(c.config, idx, c.formData, c.catalogs).Valid
	}
	return out
}
