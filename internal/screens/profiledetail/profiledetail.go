// Package profiledetail shows one profile fetched by id. The screen is
// only constructed with a resolved id; the list screen's guard refuses
// the navigation otherwise.
package profiledetail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/router"
	"github.com/priyamvada/skillscope/internal/screen"
	"github.com/priyamvada/skillscope/internal/screens/chat"
	"github.com/priyamvada/skillscope/internal/ui/layout"
	"github.com/priyamvada/skillscope/internal/ui/theme"
)

// profileLoadedMsg carries one completed get request, tagged with the
// id it was issued for. A response for another id is stale and dropped.
type profileLoadedMsg struct {
	ProfileID string
	Profile   *gap.Profile
	Err       error
}

// reportsLoadedMsg carries the stored report summaries for the profile.
type reportsLoadedMsg struct {
	ProfileID string
	Reports   []gap.ReportSummary
	Err       error
}

// DetailScreen displays a single profile and launches analysis.
type DetailScreen struct {
	client    analysis.Client
	profileID string
	useRAG    bool

	profile *gap.Profile
	reports []gap.ReportSummary
	errMsg  string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates a detail screen for the given profile id.
func New(client analysis.Client, profileID string, useRAG bool) *DetailScreen {
	return &DetailScreen{client: client, profileID: profileID, useRAG: useRAG}
}

func (s *DetailScreen) Init() tea.Cmd {
	client := s.client
	id := s.profileID
	return tea.Batch(
		func() tea.Msg {
			p, err := client.GetProfile(context.Background(), id)
			return profileLoadedMsg{ProfileID: id, Profile: p, Err: err}
		},
		func() tea.Msg {
			reports, err := client.ListReports(context.Background(), id)
			return reportsLoadedMsg{ProfileID: id, Reports: reports, Err: err}
		},
	)
}

func (s *DetailScreen) Title() string {
	if s.profile != nil {
		return s.profile.Name
	}
	return "Profile"
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "A", Description: "Analyze"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.ProfileID != s.profileID {
			// Response for a previously viewed profile; drop it.
			return s, nil
		}
		if msg.Err != nil {
			s.errMsg = analysis.MessageFor(msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.profile = msg.Profile
		return s, nil

	case reportsLoadedMsg:
		if msg.ProfileID != s.profileID || msg.Err != nil {
			// Report history is best-effort; failures stay silent here.
			return s, nil
		}
		s.reports = msg.Reports
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "a":
			if s.profile == nil || !s.profile.HasID() {
				return s, nil
			}
			p := *s.profile
			useRAG := s.useRAG
			client := s.client
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: chat.New(client, p, useRAG)}
			}
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	if s.errMsg != "" {
		return "\n  " + theme.ErrorBanner.Render(s.errMsg)
	}
	if s.profile == nil {
		return "\n" + theme.Hint.Render("  Loading profile...")
	}

	p := s.profile
	dim := theme.Hint
	val := theme.Body

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + theme.Title.Render(p.Name) + "\n\n")
	b.WriteString(dim.Render("  Role:        ") + val.Render(p.CurrentRole) + "\n")
	b.WriteString(dim.Render("  Experience:  ") + val.Render(fmt.Sprintf("%.0f years", p.ExperienceYears)) + "\n\n")

	b.WriteString(theme.Subtitle.Render("  Skills") + "\n")
	if len(p.Skills) == 0 {
		b.WriteString(dim.Render("    (none)") + "\n")
	}
	for _, sk := range p.Skills {
		line := fmt.Sprintf("    %-28s %s", sk.Name, sk.Proficiency)
		if sk.YearsExperience > 0 {
			line += fmt.Sprintf("  %.0f yrs", sk.YearsExperience)
		}
		b.WriteString(val.Render(line) + "\n")
	}

	if len(p.Certifications) > 0 {
		b.WriteString("\n" + theme.Subtitle.Render("  Certifications") + "\n")
		for _, c := range p.Certifications {
			b.WriteString(val.Render("    "+c) + "\n")
		}
	}

	if len(s.reports) > 0 {
		b.WriteString("\n" + dim.Render(fmt.Sprintf("  %d past analysis report(s) on record", len(s.reports))) + "\n")
	}

	b.WriteString("\n" + theme.Hint.Render("  Press A to analyze this profile against a target role."))
	return b.String()
}
