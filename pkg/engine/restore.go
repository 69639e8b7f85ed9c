package engine

import "context"

// Restore reconciles the freshly-mounted form state with the attached
// session's saved answers and page index. It runs at most once per session
// attach: re-invocations after the first application are no-ops, so a late
// async resolution cannot re-apply stale data over fresh edits. Fields the
// respondent has already touched this visit are skipped for the same reason.
//
// Restoration failures never block the session: the form proceeds with
// defaults and the condition goes to the reporter.
func (c *Controller) Restore(ctx context.Context) {
	if c.restored || c.session == nil {
		return
	}
	c.restored = true

	answers, err := c.session.SavedAnswers(ctx)
	if err != nil {
		c.reporter.Report("restore answers", err)
		return
	}
	for fieldID, value := range answers {
		if _, touched := c.dirty[fieldID]; touched {
			continue
		}
		if _, known := c.fieldByID(fieldID); !known {
			// Saved answers may reference fields removed from the config.
			continue
		}
		c.formData[fieldID] = value
	}

	page, ok, err := c.session.SavedPage(ctx)
	if err != nil {
		c.reporter.Report("restore page", err)
		return
	}
	if ok && page != c.pager.Current() {
		// GoTo rejects out-of-range saves from older configs.
		c.pager.GoTo(page)
	}
}
