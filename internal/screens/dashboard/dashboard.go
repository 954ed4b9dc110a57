// Package dashboard renders one gap report: headline score, a category
// menu, upskilling path, and a modal detail list per category. The
// report belongs to this view instance; navigating away discards it.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/present"
	"github.com/priyamvada/skillscope/internal/router"
	"github.com/priyamvada/skillscope/internal/screen"
	"github.com/priyamvada/skillscope/internal/ui/components"
	"github.com/priyamvada/skillscope/internal/ui/layout"
	"github.com/priyamvada/skillscope/internal/ui/theme"
)

// DashboardScreen is the dashboard-style result view.
type DashboardScreen struct {
	profile gap.Profile
	report  *gap.GapReport
	menu    components.Menu
	modal   components.Modal
	notice  string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a dashboard for a completed analysis.
func New(profile gap.Profile, report *gap.GapReport) *DashboardScreen {
	s := &DashboardScreen{profile: profile, report: report, modal: components.NewModal()}
	c := present.CountsOf(report)
	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label:  "Skills Met",
			Detail: fmt.Sprintf("%d", c.Met),
			Action: func() tea.Cmd { s.openCategory(s.report.SkillsMet, "Skills Met"); return nil },
		},
		{
			Label:  "Skills Missing",
			Detail: fmt.Sprintf("%d", c.Missing),
			Action: func() tea.Cmd { s.openCategory(s.report.SkillsMissing, "Skills Missing"); return nil },
		},
		{
			Label:  "Skills Weak",
			Detail: fmt.Sprintf("%d", c.Weak),
			Action: func() tea.Cmd { s.openCategory(s.report.SkillsWeak, "Skills Weak"); return nil },
		},
	})
	return s
}

func (s *DashboardScreen) Init() tea.Cmd { return nil }

func (s *DashboardScreen) Title() string {
	return "Gap Report"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	if s.modal.IsOpen() {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Category"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// While the modal is open it owns the keys; esc there closes the
	// modal, not this screen.
	if s.modal.IsOpen() {
		s.modal = s.modal.Update(msg)
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "1":
			s.openCategory(s.report.SkillsMet, "Skills Met")
			return s, nil
		case "2":
			s.openCategory(s.report.SkillsMissing, "Skills Missing")
			return s, nil
		case "3":
			s.openCategory(s.report.SkillsWeak, "Skills Weak")
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DashboardScreen) openCategory(items []gap.SkillGapItem, title string) {
	notice, opened := s.modal.Open(items, title)
	if !opened {
		s.notice = notice
		return
	}
	s.notice = ""
}

func (s *DashboardScreen) View(width, height int) string {
	if s.modal.IsOpen() {
		return "\n  " + s.modal.View(width, height)
	}

	var b strings.Builder
	b.WriteString("\n")

	score := present.FormatScore(s.report.OverallGapScore)
	b.WriteString("  " + theme.Title.Render(fmt.Sprintf("Overall gap score: %s", score)) + "\n")
	b.WriteString("  " + theme.Subtitle.Render(fmt.Sprintf("%s → %s", s.profile.CurrentRole, s.report.TargetRole)) + "\n\n")

	b.WriteString(s.menu.View() + "\n")

	if s.notice != "" {
		b.WriteString("  " + theme.NoticeBanner.Render(s.notice) + "\n\n")
	}

	if s.report.AnalysisSummary != "" {
		b.WriteString(theme.Body.Width(width-8).PaddingLeft(2).Render(s.report.AnalysisSummary) + "\n\n")
	}

	if len(s.report.UpskillingPath) > 0 {
		b.WriteString("  " + theme.Subtitle.Render("Suggested path") + "\n")
		for i, step := range s.report.UpskillingPath {
			b.WriteString(theme.Body.Render(fmt.Sprintf("    %d. %s", i+1, step)) + "\n")
		}
	}

	return b.String()
}
