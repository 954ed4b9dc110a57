package dashboard

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/router"
)

func sampleReport() *gap.GapReport {
	score := 62.5
	return &gap.GapReport{
		TargetRole:      "Platform Engineer",
		OverallGapScore: &score,
		SkillsMet: []gap.SkillGapItem{
			{SkillName: "Go", Status: gap.StatusMet},
		},
		SkillsMissing: []gap.SkillGapItem{
			{SkillName: "Kubernetes", Status: gap.StatusMissing, GapSeverity: gap.SeverityHigh},
			{SkillName: "Terraform", Status: gap.StatusMissing, GapSeverity: gap.SeverityMedium},
		},
		AnalysisSummary: "Strong language foundation, infrastructure tooling missing.",
		UpskillingPath:  []string{"CKA certification", "Terraform associate"},
	}
}

func press(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Text: string(code)}
}

func TestViewShowsScoreAndCounts(t *testing.T) {
	s := New(gap.Profile{CurrentRole: "Backend Engineer"}, sampleReport())

	view := s.View(100, 40)
	if !strings.Contains(view, "62.50") {
		t.Errorf("view should show the formatted score, got:\n%s", view)
	}
	if !strings.Contains(view, "Suggested path") {
		t.Error("view should list the upskilling path")
	}
}

func TestOpenCategoryShowsModal(t *testing.T) {
	s := New(gap.Profile{}, sampleReport())

	next, _ := s.Update(press('2'))
	s = next.(*DashboardScreen)
	if !s.modal.IsOpen() {
		t.Fatal("pressing 2 should open the missing-skills modal")
	}
	if s.modal.Title() != "Skills Missing" {
		t.Errorf("wrong category: %q", s.modal.Title())
	}
}

func TestMenuEnterOpensSelectedCategory(t *testing.T) {
	s := New(gap.Profile{}, sampleReport())

	next, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s = next.(*DashboardScreen)
	next, _ = s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = next.(*DashboardScreen)

	if !s.modal.IsOpen() || s.modal.Title() != "Skills Missing" {
		t.Errorf("down+enter should open the second category, got open=%v title=%q",
			s.modal.IsOpen(), s.modal.Title())
	}
}

func TestOpenEmptyCategoryShowsNotice(t *testing.T) {
	s := New(gap.Profile{}, &gap.GapReport{})

	next, _ := s.Update(press('3'))
	s = next.(*DashboardScreen)
	if s.modal.IsOpen() {
		t.Fatal("empty category must not open a modal")
	}
	if !strings.Contains(strings.ToLower(s.notice), "skills weak") {
		t.Errorf("notice should name the empty category, got %q", s.notice)
	}
	if !strings.Contains(s.View(100, 40), s.notice) {
		t.Error("notice should be rendered in place of the modal")
	}
}

func TestNoticeClearedOnSuccessfulOpen(t *testing.T) {
	s := New(gap.Profile{}, sampleReport())

	next, _ := s.Update(press('3')) // empty, sets notice
	s = next.(*DashboardScreen)
	next, _ = s.Update(press('2')) // non-empty, opens
	s = next.(*DashboardScreen)
	if s.notice != "" {
		t.Errorf("a successful open should clear the stale notice, got %q", s.notice)
	}
}

func TestEscClosesModalBeforeLeavingScreen(t *testing.T) {
	s := New(gap.Profile{}, sampleReport())

	next, _ := s.Update(press('1'))
	s = next.(*DashboardScreen)

	next, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = next.(*DashboardScreen)
	if s.modal.IsOpen() {
		t.Fatal("first esc should close the modal")
	}
	if cmd != nil {
		t.Fatal("closing the modal must not also pop the screen")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("second esc should pop back")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
