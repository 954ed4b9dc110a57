// Package profiles implements the profile list screen, the root and
// steady state of the application.
package profiles

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/router"
	"github.com/priyamvada/skillscope/internal/screen"
	"github.com/priyamvada/skillscope/internal/screens/createprofile"
	"github.com/priyamvada/skillscope/internal/screens/profiledetail"
	"github.com/priyamvada/skillscope/internal/ui/layout"
	"github.com/priyamvada/skillscope/internal/ui/theme"
)

// profilesLoadedMsg carries one completed list request. Generation ties
// the response to the load that issued it so an old response cannot
// overwrite a newer one.
type profilesLoadedMsg struct {
	Generation int
	Profiles   []gap.Profile
	Err        error
}

// ReloadMsg asks the list to fetch profiles again (sent after a create).
type ReloadMsg struct{}

// ListScreen shows all profiles known to the service.
type ListScreen struct {
	client     analysis.Client
	useRAG     bool
	profiles   []gap.Profile
	selected   int
	generation int
	loading    bool
	errMsg     string
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

// New creates the profile list screen.
func New(client analysis.Client, useRAG bool) *ListScreen {
	return &ListScreen{client: client, useRAG: useRAG}
}

func (s *ListScreen) Init() tea.Cmd {
	return s.load()
}

func (s *ListScreen) Title() string {
	return "Profiles"
}

func (s *ListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "N", Description: "New profile"},
		{Key: "R", Description: "Refresh"},
	}
}

// load issues a list request tagged with the current generation.
func (s *ListScreen) load() tea.Cmd {
	s.loading = true
	s.generation++
	generation := s.generation
	client := s.client
	return func() tea.Msg {
		profiles, err := client.ListProfiles(context.Background())
		return profilesLoadedMsg{Generation: generation, Profiles: profiles, Err: err}
	}
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		if msg.Generation != s.generation {
			// A newer load superseded this response.
			return s, nil
		}
		s.loading = false
		if msg.Err != nil {
			s.errMsg = analysis.MessageFor(msg.Err)
			return s, nil
		}
		s.errMsg = ""
		s.profiles = msg.Profiles
		if s.selected >= len(s.profiles) {
			s.selected = 0
		}
		return s, nil

	case ReloadMsg:
		return s, s.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.profiles)-1 {
				s.selected++
			}
		case "enter":
			return s, s.openSelected()
		case "n":
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: createprofile.New(s.client, func() tea.Msg { return ReloadMsg{} }),
				}
			}
		case "r":
			return s, s.load()
		}
	}
	return s, nil
}

// openSelected pushes the detail screen for the selected profile. A
// record without a resolvable id refuses the transition and surfaces an
// error instead of entering the dependent view.
func (s *ListScreen) openSelected() tea.Cmd {
	if s.selected < 0 || s.selected >= len(s.profiles) {
		return nil
	}
	p := s.profiles[s.selected]
	if !p.HasID() {
		s.errMsg = fmt.Sprintf("Profile %q has no id; refresh the list and try again", p.Name)
		return nil
	}
	s.errMsg = ""
	client := s.client
	useRAG := s.useRAG
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: profiledetail.New(client, p.ID, useRAG)}
	}
}

func (s *ListScreen) View(width, height int) string {
	out := "\n"
	if s.errMsg != "" {
		out += "  " + theme.ErrorBanner.Render(s.errMsg) + "\n\n"
	}

	switch {
	case s.loading && len(s.profiles) == 0:
		out += theme.Hint.Render("  Loading profiles...")
	case len(s.profiles) == 0:
		out += theme.Hint.Render("  No profiles yet. Press N to create one.")
	default:
		for i, p := range s.profiles {
			line := fmt.Sprintf("%s — %s", p.Name, p.CurrentRole)
			detail := fmt.Sprintf("%d skills, %.0f yrs", len(p.Skills), p.ExperienceYears)
			if i == s.selected {
				out += theme.Selected.Render("  ▸ "+line) +
					theme.Hint.Render("  "+detail) + "\n"
			} else {
				out += theme.Unselected.Render("    "+line) +
					theme.Hint.Render("  "+detail) + "\n"
			}
		}
	}
	return out
}
