package session

import (
	"errors"
	"testing"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
)

func newTestSession() *Session {
	return New(gap.Profile{ID: "p1", Name: "Ada", CurrentRole: "Data Analyst"}, true)
}

func TestBeginAppendsUserMessageAndPends(t *testing.T) {
	s := newTestSession()

	sub, err := s.Begin("move into leadership", "Senior Architect")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}

	if !s.Busy() {
		t.Error("session should be pending after Begin")
	}
	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].Kind != KindUser || msgs[0].Content != "move into leadership" {
		t.Errorf("unexpected log: %+v", msgs)
	}
	if sub.Request.UserProfileID != "p1" {
		t.Errorf("request profile id wrong: %q", sub.Request.UserProfileID)
	}
	if sub.Request.TargetRole.RoleName != "Senior Architect" {
		t.Errorf("request target role wrong: %q", sub.Request.TargetRole.RoleName)
	}
	if !sub.Request.UseRAG {
		t.Error("UseRAG should carry through")
	}
}

func TestBeginRejectsBlankInputs(t *testing.T) {
	s := newTestSession()

	if _, err := s.Begin("   ", "Senior Architect"); !errors.Is(err, ErrBlankQuery) {
		t.Errorf("expected ErrBlankQuery, got %v", err)
	}
	if _, err := s.Begin("query", "\t "); !errors.Is(err, ErrBlankTargetRole) {
		t.Errorf("expected ErrBlankTargetRole, got %v", err)
	}

	if len(s.Messages()) != 0 {
		t.Error("rejected submissions must not append messages")
	}
	if s.Busy() {
		t.Error("rejected submissions must not change state")
	}
}

func TestBeginRejectsWhileBusy(t *testing.T) {
	s := newTestSession()

	if _, err := s.Begin("first", "Role"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := s.Begin("second", "Role"); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}
	if len(s.Messages()) != 1 {
		t.Error("second submit while busy must be a no-op")
	}
}

func TestResolveSuccessAppendsAssistant(t *testing.T) {
	s := newTestSession()
	sub, _ := s.Begin("query", "Role")

	score := 62.5
	report := &gap.GapReport{
		AnalysisSummary: "You are close.",
		OverallGapScore: &score,
		SkillsMet:       []gap.SkillGapItem{{SkillName: "SQL", Status: gap.StatusMet}},
	}
	if !s.Resolve(sub.Token, report, nil) {
		t.Fatal("resolve should be applied")
	}

	if s.Busy() {
		t.Error("pending must clear on success")
	}
	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	last := msgs[1]
	if last.Kind != KindAssistant || last.Content != "You are close." {
		t.Errorf("assistant message wrong: %+v", last)
	}
	if last.Report == nil || last.Report.OverallGapScore == nil {
		t.Error("report must be attached to the assistant message")
	}
	if msgs[0].Timestamp.After(last.Timestamp) {
		t.Error("user message must precede its assistant message")
	}
}

func TestResolveSuccessFallbackSummary(t *testing.T) {
	s := newTestSession()
	sub, _ := s.Begin("query", "Role")

	s.Resolve(sub.Token, &gap.GapReport{AnalysisSummary: "  "}, nil)

	last := s.Messages()[1]
	if last.Content != FallbackSummary {
		t.Errorf("expected fallback summary, got %q", last.Content)
	}
}

func TestResolveFailureUsesDetailPrecedence(t *testing.T) {
	s := newTestSession()
	sub, _ := s.Begin("query", "Role")

	err := &analysis.APIError{Status: 404, Detail: "profile not found"}
	s.Resolve(sub.Token, nil, err)

	if s.Busy() {
		t.Error("pending must clear on failure")
	}
	last := s.Messages()[1]
	if last.Kind != KindError || last.Content != "profile not found" {
		t.Errorf("error message wrong: %+v", last)
	}
}

func TestResolveStaleTokenIsNoOp(t *testing.T) {
	s := newTestSession()
	sub, _ := s.Begin("query", "Role")

	if s.Resolve("someone-else", nil, errors.New("late")) {
		t.Error("stale token must not be applied")
	}
	if !s.Busy() {
		t.Error("stale settlement must not clear the real pending request")
	}
	if len(s.Messages()) != 1 {
		t.Error("stale settlement must not append messages")
	}

	// The genuine settlement still lands.
	if !s.Resolve(sub.Token, nil, errors.New("real failure")) {
		t.Error("genuine settlement rejected")
	}
}

func TestResolveAfterSettlementIsNoOp(t *testing.T) {
	s := newTestSession()
	sub, _ := s.Begin("query", "Role")
	s.Resolve(sub.Token, &gap.GapReport{}, nil)

	if s.Resolve(sub.Token, nil, errors.New("duplicate")) {
		t.Error("double settlement must be dropped")
	}
	if len(s.Messages()) != 2 {
		t.Error("double settlement must not append")
	}
}

func TestLatestReport(t *testing.T) {
	s := newTestSession()
	if s.LatestReport() != nil {
		t.Error("empty session has no report")
	}

	sub, _ := s.Begin("q1", "Role")
	first := &gap.GapReport{AnalysisSummary: "first"}
	s.Resolve(sub.Token, first, nil)

	sub, _ = s.Begin("q2", "Role")
	second := &gap.GapReport{AnalysisSummary: "second"}
	s.Resolve(sub.Token, second, nil)

	if got := s.LatestReport(); got != second {
		t.Errorf("expected most recent report, got %+v", got)
	}
}
