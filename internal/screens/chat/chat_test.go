package chat

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/router"
	"github.com/priyamvada/skillscope/internal/session"
)

func testProfile() gap.Profile {
	return gap.Profile{ID: "p1", Name: "Priya", CurrentRole: "Backend Engineer"}
}

func newTestScreen(client analysis.Client) *ChatScreen {
	s := New(client, testProfile(), true)
	s.roleInput.Model.SetValue("Platform Engineer")
	s.queryInput.Model.SetValue("What am I missing?")
	return s
}

func TestSubmitBlankRoleRefused(t *testing.T) {
	s := New(analysis.NewMockClient(), testProfile(), true)
	s.queryInput.Model.SetValue("What am I missing?")

	cmd := s.submit()
	if cmd != nil {
		t.Fatal("a refused submission must not issue a request")
	}
	if !strings.Contains(s.notice, "target role") {
		t.Errorf("notice should name the blank field, got %q", s.notice)
	}
	if len(s.sess.Messages()) != 0 {
		t.Error("a refused submission must not append to the log")
	}
	if s.queryInput.Value() == "" {
		t.Error("a refused submission must not clear the input")
	}
}

func TestSubmitRoundTrip(t *testing.T) {
	mock := analysis.NewMockClient()
	score := 62.5
	mock.Report = &gap.GapReport{
		TargetRole:      "Platform Engineer",
		AnalysisSummary: "You are close.",
		OverallGapScore: &score,
	}
	s := newTestScreen(mock)

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("valid submission should issue the analyze request")
	}
	if !s.sess.Busy() {
		t.Fatal("session should be pending while the request runs")
	}
	if s.queryInput.Value() != "" {
		t.Error("accepted submission should clear the query input")
	}

	next, _ := s.Update(cmd())
	s = next.(*ChatScreen)
	if s.sess.Busy() {
		t.Fatal("settlement must clear the pending state")
	}

	msgs := s.sess.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user + assistant messages, got %d", len(msgs))
	}
	if msgs[1].Kind != session.KindAssistant || msgs[1].Content != "You are close." {
		t.Errorf("assistant message wrong: kind=%v content=%q", msgs[1].Kind, msgs[1].Content)
	}
	if msgs[1].Report == nil {
		t.Error("assistant message should carry the report")
	}
}

func TestSubmitFailureAppendsError(t *testing.T) {
	mock := analysis.NewMockClient()
	mock.AnalyzeErr = &analysis.APIError{Status: 404, Detail: "Profile p1 not found"}
	s := newTestScreen(mock)

	cmd := s.submit()
	next, _ := s.Update(cmd())
	s = next.(*ChatScreen)

	msgs := s.sess.Messages()
	if len(msgs) != 2 || msgs[1].Kind != session.KindError {
		t.Fatalf("expected an error message, got %+v", msgs)
	}
	if msgs[1].Content != "Profile p1 not found" {
		t.Errorf("error message should carry the service detail, got %q", msgs[1].Content)
	}
	if s.sess.Busy() {
		t.Error("failure must still clear the pending state")
	}
}

func TestBusyDisablesInputAndResubmit(t *testing.T) {
	s := newTestScreen(analysis.NewMockClient())
	s.submit()

	before := s.roleInput.Value()
	next, _ := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	s = next.(*ChatScreen)
	if s.roleInput.Value() != before {
		t.Error("typing while busy must not reach the inputs")
	}

	s.queryInput.Model.SetValue("another question")
	if cmd := s.submit(); cmd != nil {
		t.Fatal("a second submission while busy must be refused")
	}
	if !strings.Contains(s.notice, "already running") {
		t.Errorf("busy refusal should explain itself, got %q", s.notice)
	}
	if len(s.sess.Messages()) != 1 {
		t.Error("busy refusal must not append to the log")
	}
}

func TestStaleResultDropped(t *testing.T) {
	s := newTestScreen(analysis.NewMockClient())
	s.submit()

	next, _ := s.Update(analysisResultMsg{Token: "not-the-current-token"})
	s = next.(*ChatScreen)
	if !s.sess.Busy() {
		t.Error("a stale settlement must not clear the pending state")
	}
	if len(s.sess.Messages()) != 1 {
		t.Error("a stale settlement must not append to the log")
	}
}

func TestEscReturnsToRoot(t *testing.T) {
	s := newTestScreen(analysis.NewMockClient())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should navigate")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("esc should return to the profile list, got %T", cmd())
	}
}

func TestDashboardNeedsReport(t *testing.T) {
	s := newTestScreen(analysis.NewMockClient())

	if cmd := s.openDashboard(); cmd != nil {
		t.Fatal("no report yet, dashboard must refuse")
	}

	cmd := s.submit()
	next, _ := s.Update(cmd())
	s = next.(*ChatScreen)

	open := s.openDashboard()
	if open == nil {
		t.Fatal("with a report the dashboard should open")
	}
	if _, ok := open().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", open())
	}
}
