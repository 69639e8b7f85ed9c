package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-surveyflow/pkg/survey"
	"github.com/goliatone/go-surveyflow/pkg/testsupport"
)

type recordingReporter struct {
	ops  []string
	errs []error
}

func (r *recordingReporter) Report(op string, err error) {
	r.ops = append(r.ops, op)
	r.errs = append(r.errs, err)
}

func fillTeamInfo(c *Controller) {
	c.SetValue("name", "Ada Lovelace")
	c.SetValue("email", "ada@example.com")
}

func TestNewAppliesDefaultsAndStartsAtFirstSection(t *testing.T) {
	c := New(testsupport.Config(), testsupport.Catalogs())

	if got, ok := c.Value("overall"); !ok || got != "3" {
		t.Fatalf("overall default = %v, %v; want %q, true", got, ok, "3")
	}
	got, ok := c.Value("channels")
	if !ok {
		t.Fatal("channels default missing")
	}
	if diff := cmp.Diff([]string{"slack"}, got); diff != "" {
		t.Fatalf("channels default mismatch (-want +got):\n%s", diff)
	}
	if len(c.Errors()) != 0 {
		t.Fatalf("fresh session surfaced errors: %v", c.Errors())
	}

	state := c.Pagination()
	want := PaginationState{
		CurrentSectionIndex: 0,
		TotalSections:       2,
		VisitedSections:     []int{0},
		IsFirstSection:      true,
		IsLastSection:       false,
		AllowBackNavigation: true,
	}
	if diff := cmp.Diff(want, state); diff != "" {
		t.Fatalf("pagination mismatch (-want +got):\n%s", diff)
	}
}

func TestSetValueStaysQuietBeforeNavigation(t *testing.T) {
	c := New(testsupport.Config(), testsupport.Catalogs())

	c.SetValue("email", "not-an-email")

	if msg, ok := c.ErrorFor("email"); ok {
		t.Fatalf("error surfaced before any navigation attempt: %q", msg)
	}
}

func TestNextBlockedOnInvalidSection(t *testing.T) {
	c := New(testsupport.Config(), testsupport.Catalogs())

	res := c.Next()

	if res.Advanced {
		t.Fatal("advanced past an invalid section")
	}
	if res.FocusField != "name" {
		t.Fatalf("FocusField = %q, want %q", res.FocusField, "name")
	}
	if c.Pagination().CurrentSectionIndex != 0 {
		t.Fatalf("section index moved to %d", c.Pagination().CurrentSectionIndex)
	}
	if msg, _ := c.ErrorFor("name"); msg != MsgRequired {
		t.Fatalf("name error = %q, want %q", msg, MsgRequired)
	}
	if msg, _ := c.ErrorFor("email"); msg != MsgRequired {
		t.Fatalf("email error = %q, want %q", msg, MsgRequired)
	}
}

func TestSetValueLiveValidatesAfterNextAttempt(t *testing.T) {
	c := New(testsupport.Config(), testsupport.Catalogs())
	c.Next()

	c.SetValue("name", "Ada Lovelace")
	if msg, ok := c.ErrorFor("name"); ok {
		t.Fatalf("name error not cleared on edit: %q", msg)
	}

	c.SetValue("email", "still-bad")
	if msg, _ := c.ErrorFor("email"); msg != MsgInvalidEmail {
		t.Fatalf("email error = %q, want %q", msg, MsgInvalidEmail)
	}

	c.SetValue("email", "ada@example.com")
	if msg, ok := c.ErrorFor("email"); ok {
		t.Fatalf("email error not cleared on fix: %q", msg)
	}

	res := c.Next()
	if !res.Advanced {
		t.Fatal("valid section did not advance")
	}
	if c.Pagination().CurrentSectionIndex != 1 {
		t.Fatalf("section index = %d, want 1", c.Pagination().CurrentSectionIndex)
	}
}

func TestPreviousHonorsBackNavigationFlag(t *testing.T) {
	cfg := testsupport.Config()
	cfg.AllowBackNavigation = false
	c := New(cfg, testsupport.Catalogs())
	fillTeamInfo(c)
	c.Next()

	if c.Previous() {
		t.Fatal("went back with back navigation disabled")
	}
	if c.Pagination().CurrentSectionIndex != 1 {
		t.Fatalf("section index = %d, want 1", c.Pagination().CurrentSectionIndex)
	}
}

func TestSelectSectionOnlyReachesVisitedSections(t *testing.T) {
	c := New(testsupport.Config(), testsupport.Catalogs())

	if c.SelectSection(1) {
		t.Fatal("jumped to an unvisited section")
	}

	fillTeamInfo(c)
	c.Next()
	if !c.Previous() {
		t.Fatal("back navigation rejected")
	}
	if !c.SelectSection(1) {
		t.Fatal("could not return to a visited section")
	}
	if c.Pagination().CurrentSectionIndex != 1 {
		t.Fatalf("section index = %d, want 1", c.Pagination().CurrentSectionIndex)
	}
}

func TestSubmitInvalidJumpsToFirstInvalidSection(t *testing.T) {
	c := New(testsupport.Config(), testsupport.Catalogs())
	fillTeamInfo(c)
	c.Next()
	c.SetValue("email", "")

	res := c.Submit(context.Background())

	if res.OK {
		t.Fatal("submit succeeded with an invalid field")
	}
	if res.FocusSection != 0 || res.FocusField != "email" {
		t.Fatalf("focus = (%d, %q), want (0, %q)", res.FocusSection, res.FocusField, "email")
	}
	if c.Pagination().CurrentSectionIndex != 0 {
		t.Fatalf("did not navigate to the invalid section, at %d", c.Pagination().CurrentSectionIndex)
	}
	if !c.HasSubmitted() {
		t.Fatal("failed submit did not mark the form as submitted")
	}
	if msg, _ := c.ErrorFor("email"); msg != MsgRequired {
		t.Fatalf("email error = %q, want %q", msg, MsgRequired)
	}
}

func TestSubmitBuildsDescriptiveResponse(t *testing.T) {
	var handled map[string]any
	c := New(testsupport.Config(), testsupport.Catalogs(),
		WithSubmitHandler(func(ctx context.Context, response map[string]any) error {
			handled = response
			return nil
		}))
	fillTeamInfo(c)
	c.Next()

	res := c.Submit(context.Background())

	if !res.OK || res.Err != nil {
		t.Fatalf("submit failed: OK=%v err=%v", res.OK, res.Err)
	}
	want := map[string]any{
		"team_info_full_name":          "Ada Lovelace",
		"team_info_email_address":      "ada@example.com",
		"team_info_preferred_channels": []string{"slack"},
		"feedback_overall_rating":      "3",
	}
	if diff := cmp.Diff(want, res.Response); diff != "" {
		t.Fatalf("response mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, handled); diff != "" {
		t.Fatalf("handler payload mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitHandlerFailureIsReportedAndRetryable(t *testing.T) {
	boom := errors.New("backend unavailable")
	reporter := &recordingReporter{}
	c := New(testsupport.Config(), testsupport.Catalogs(),
		WithReporter(reporter),
		WithSubmitHandler(func(ctx context.Context, response map[string]any) error {
			return boom
		}))
	fillTeamInfo(c)
	c.Next()

	res := c.Submit(context.Background())

	if res.OK {
		t.Fatal("submit reported success despite handler rejection")
	}
	if !errors.Is(res.Err, boom) {
		t.Fatalf("Err = %v, want %v", res.Err, boom)
	}
	if res.Response == nil {
		t.Fatal("response document dropped on handler failure")
	}
	if len(reporter.ops) != 1 || reporter.ops[0] != "submit" {
		t.Fatalf("reported ops = %v, want [submit]", reporter.ops)
	}
	if c.Pagination().CurrentSectionIndex != 1 {
		t.Fatalf("navigated away on handler failure, at %d", c.Pagination().CurrentSectionIndex)
	}
}

func TestSetCatalogsAppliesNewDefaultsWithoutOverwriting(t *testing.T) {
	c := New(testsupport.Config(), survey.Catalogs{})

	if _, ok := c.Value("overall"); ok {
		t.Fatal("default assigned with no catalogs loaded")
	}

	c.SetValue("channels", []string{"phone"})
	c.SetCatalogs(testsupport.Catalogs())

	if got, _ := c.Value("overall"); got != "3" {
		t.Fatalf("overall = %v, want %q after catalog load", got, "3")
	}
	got, _ := c.Value("channels")
	if diff := cmp.Diff([]string{"phone"}, got); diff != "" {
		t.Fatalf("respondent answer overwritten (-want +got):\n%s", diff)
	}
}

func TestResetRemountsTheSession(t *testing.T) {
	c := New(testsupport.Config(), testsupport.Catalogs())
	fillTeamInfo(c)
	c.Next()
	c.Submit(context.Background())

	c.Reset()

	if c.HasSubmitted() {
		t.Fatal("submitted flag survived reset")
	}
	if len(c.Errors()) != 0 {
		t.Fatalf("errors survived reset: %v", c.Errors())
	}
	if _, ok := c.Value("name"); ok {
		t.Fatal("respondent answer survived reset")
	}
	if got, _ := c.Value("overall"); got != "3" {
		t.Fatalf("overall = %v, want default %q after reset", got, "3")
	}
	if c.Pagination().CurrentSectionIndex != 0 {
		t.Fatalf("section index = %d, want 0", c.Pagination().CurrentSectionIndex)
	}
}

func TestSectionValidityIsPure(t *testing.T) {
	c := New(testsupport.Config(), testsupport.Catalogs())

	if diff := cmp.Diff([]bool{false, true}, c.SectionValidity()); diff != "" {
		t.Fatalf("validity mismatch (-want +got):\n%s", diff)
	}
	if len(c.Errors()) != 0 {
		t.Fatalf("validity check surfaced errors: %v", c.Errors())
	}

	fillTeamInfo(c)
	if diff := cmp.Diff([]bool{true, true}, c.SectionValidity()); diff != "" {
		t.Fatalf("validity mismatch after fill (-want +got):\n%s", diff)
	}
}

func TestNextWithNoSections(t *testing.T) {
	c := New(survey.SurveyConfig{ID: "empty"}, survey.Catalogs{})

	res := c.Next()
	if res.Advanced || res.FocusField != "" {
		t.Fatalf("degenerate config produced %+v", res)
	}
	if sec := c.CurrentSection(); sec.ID != "" {
		t.Fatalf("CurrentSection = %+v, want zero value", sec)
	}
}
