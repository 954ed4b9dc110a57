// Package chat implements the chat-style analysis interaction for one
// profile. The screen renders the session's append-only message log and
// drives the submit protocol; all log and busy-state mutations live in
// the session itself.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/present"
	"github.com/priyamvada/skillscope/internal/router"
	"github.com/priyamvada/skillscope/internal/screen"
	"github.com/priyamvada/skillscope/internal/screens/dashboard"
	"github.com/priyamvada/skillscope/internal/session"
	"github.com/priyamvada/skillscope/internal/ui/components"
	"github.com/priyamvada/skillscope/internal/ui/layout"
	"github.com/priyamvada/skillscope/internal/ui/theme"
)

// analysisResultMsg is one settled analyze request. The token ties it to
// the submission that issued it; the session drops stale tokens.
type analysisResultMsg struct {
	Token  string
	Report *gap.GapReport
	Err    error
}

// focusTarget selects which input receives keystrokes.
type focusTarget int

const (
	focusRole focusTarget = iota
	focusQuery
)

// ChatScreen drives one analysis session.
type ChatScreen struct {
	client analysis.Client
	sess   *session.Session

	roleInput  components.TextInput
	queryInput components.TextInput
	focus      focusTarget
	notice     string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen for the given profile. The caller
// guarantees the profile carries a resolved id.
func New(client analysis.Client, profile gap.Profile, useRAG bool) *ChatScreen {
	return &ChatScreen{
		client:     client,
		sess:       session.New(profile, useRAG),
		roleInput:  components.NewTextInput("Target role (e.g. Senior Architect)", false, 80),
		queryInput: components.NewTextInput("Your goal or question", false, 200),
		focus:      focusRole,
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.roleInput.Focus()
}

func (s *ChatScreen) Title() string {
	return "Analyze: " + s.sess.Profile().Name
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Enter", Description: "Submit"},
	}
	if s.sess.LatestReport() != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+D", Description: "Dashboard"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case analysisResultMsg:
		// The session drops settlements whose token is stale.
		s.sess.Resolve(msg.Token, msg.Report, msg.Err)
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		case "ctrl+d":
			return s, s.openDashboard()
		}

		// The input surface is disabled while a request is in flight.
		if s.sess.Busy() {
			return s, nil
		}

		switch msg.String() {
		case "tab", "shift+tab":
			s.switchFocus()
			return s, nil
		case "enter":
			return s, s.submit()
		}

		var cmd tea.Cmd
		if s.focus == focusRole {
			s.roleInput, cmd = s.roleInput.Update(msg)
		} else {
			s.queryInput, cmd = s.queryInput.Update(msg)
		}
		return s, cmd
	}
	return s, nil
}

func (s *ChatScreen) switchFocus() {
	if s.focus == focusRole {
		s.roleInput.Blur()
		s.focus = focusQuery
		s.queryInput.Focus()
	} else {
		s.queryInput.Blur()
		s.focus = focusRole
		s.roleInput.Focus()
	}
}

// submit runs the session's begin step and, when accepted, issues the
// analyze request. On a refused submission nothing is cleared and no
// request goes out.
func (s *ChatScreen) submit() tea.Cmd {
	sub, err := s.sess.Begin(s.queryInput.Value(), s.roleInput.Value())
	if err != nil {
		switch {
		case errors.Is(err, session.ErrBlankTargetRole):
			s.notice = "Enter a target role before submitting"
		case errors.Is(err, session.ErrBlankQuery):
			s.notice = "Enter a question or goal before submitting"
		case errors.Is(err, session.ErrBusy):
			s.notice = "An analysis is already running"
		default:
			s.notice = err.Error()
		}
		return nil
	}

	s.notice = ""
	s.queryInput.Reset()

	client := s.client
	token := sub.Token
	req := sub.Request
	return func() tea.Msg {
		report, err := client.Analyze(context.Background(), req)
		return analysisResultMsg{Token: token, Report: report, Err: err}
	}
}

// openDashboard pushes the dashboard for the most recent report.
func (s *ChatScreen) openDashboard() tea.Cmd {
	report := s.sess.LatestReport()
	if report == nil {
		s.notice = "No analysis result to show yet"
		return nil
	}
	profile := s.sess.Profile()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: dashboard.New(profile, report)}
	}
}

func (s *ChatScreen) View(width, height int) string {
	contentWidth := width - 8
	if contentWidth > 90 {
		contentWidth = 90
	}
	if contentWidth < 30 {
		contentWidth = 30
	}

	var b strings.Builder
	b.WriteString("\n")

	for _, m := range s.sess.Messages() {
		b.WriteString(renderMessage(m, contentWidth))
	}

	if s.sess.Busy() {
		b.WriteString(theme.Hint.Render("  Analyzing...") + "\n")
	}

	b.WriteString("\n")
	if s.notice != "" {
		b.WriteString("  " + theme.NoticeBanner.Render(s.notice) + "\n")
	}

	roleLabel := theme.Hint
	queryLabel := theme.Hint
	if s.focus == focusRole {
		roleLabel = theme.Selected
	} else {
		queryLabel = theme.Selected
	}
	b.WriteString("  " + roleLabel.Render("Target role ") + s.roleInput.View() + "\n")
	b.WriteString("  " + queryLabel.Render("Query       ") + s.queryInput.View() + "\n")

	return b.String()
}

func renderMessage(m session.Message, width int) string {
	var style lipgloss.Style
	var prefix string
	switch m.Kind {
	case session.KindUser:
		style = lipgloss.NewStyle().Foreground(theme.Primary)
		prefix = "you"
	case session.KindAssistant:
		style = lipgloss.NewStyle().Foreground(theme.Text)
		prefix = "analysis"
	case session.KindError:
		style = lipgloss.NewStyle().Foreground(theme.Error)
		prefix = "error"
	}

	out := theme.Hint.Render(fmt.Sprintf("  [%s] %s", m.Timestamp.Format("15:04:05"), prefix)) + "\n"
	out += style.Width(width).PaddingLeft(2).Render(m.Content) + "\n"

	if m.Report != nil {
		c := present.CountsOf(m.Report)
		summary := fmt.Sprintf("gap score %s  ·  %d met / %d missing / %d weak",
			present.FormatScore(m.Report.OverallGapScore), c.Met, c.Missing, c.Weak)
		out += theme.Hint.Render("    "+summary) + "\n"
	}
	return out + "\n"
}
