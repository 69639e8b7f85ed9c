package engine

import "context"

// Reporter receives non-fatal collaborator failures (session restore,
// submission) so an external error-reporting boundary can log them. The
// engine itself never logs.
type Reporter interface {
	Report(op string, err error)
}

type nopReporter struct{}

func (nopReporter) Report(string, error) {}

// SubmitFunc hands the descriptive-id response document to the external
// persistence collaborator. The engine does not retry on failure.
type SubmitFunc func(ctx context.Context, response map[string]any) error

// Session supplies a previously-saved partial answer set and page index for
// resumable sessions.
type Session interface {
	SavedAnswers(ctx context.Context) (map[string]any, error)
	// SavedPage returns the saved section index; the boolean is false when
	// no page was recorded.
	SavedPage(ctx context.Context) (int, bool, error)
}

// Option configures the Controller.
type Option func(*Controller)

// WithSession attaches a resumable-session collaborator; Restore consumes it.
func WithSession(session Session) Option {
	return func(c *Controller) {
		c.session = session
	}
}

// WithReporter routes collaborator failures to an external error reporter.
func WithReporter(reporter Reporter) Option {
	return func(c *Controller) {
		if reporter != nil {
			c.reporter = reporter
		}
	}
}

// WithSubmitHandler registers the persistence callback invoked on a
// successful whole-form submit.
func WithSubmitHandler(fn SubmitFunc) Option {
	return func(c *Controller) {
		c.submit = fn
	}
}
