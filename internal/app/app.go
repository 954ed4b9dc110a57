// Package app wires the root Bubble Tea model: router, window size,
// the single startup health probe, and the header/footer frame.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/router"
	"github.com/priyamvada/skillscope/internal/screen"
	"github.com/priyamvada/skillscope/internal/screens/profiles"
	"github.com/priyamvada/skillscope/internal/ui/layout"
)

// Options configure the TUI.
type Options struct {
	Client analysis.Client
	UseRAG bool
}

// healthProbeMsg carries the result of the one startup probe. It is the
// only writer of the connectivity indicator.
type healthProbeMsg struct {
	Health analysis.Health
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	client analysis.Client
	conn   layout.Connectivity
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	root := profiles.New(opts.Client, opts.UseRAG)
	return AppModel{
		router: router.New(root),
		client: opts.Client,
	}
}

func (m AppModel) Init() tea.Cmd {
	probe := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return healthProbeMsg{Health: m.client.HealthCheck(ctx)}
	}
	return tea.Batch(probe, m.router.Active().Init())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case healthProbeMsg:
		if msg.Health == analysis.HealthOK {
			m.conn = layout.ConnOnline
		} else {
			m.conn = layout.ConnOffline
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.conn, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
