package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/ui/theme"
)

// Modal is the overlay showing one skill category's detail list. All
// three fields change together: Open sets them atomically, Close resets
// them atomically, and nothing else writes them.
type Modal struct {
	open   bool
	items  []gap.SkillGapItem
	title  string
	offset int
}

// NewModal returns a closed, empty modal.
func NewModal() Modal {
	return Modal{}
}

// Open shows the modal for the given category. An empty list refuses to
// open: state stays untouched and the returned notice text is surfaced
// to the user instead.
func (m *Modal) Open(items []gap.SkillGapItem, title string) (notice string, opened bool) {
	if len(items) == 0 {
		return fmt.Sprintf("No %s found", strings.ToLower(title)), false
	}
	m.open = true
	m.items = items
	m.title = title
	m.offset = 0
	return "", true
}

// Close resets the modal to its initial state.
func (m *Modal) Close() {
	m.open = false
	m.items = nil
	m.title = ""
	m.offset = 0
}

// IsOpen reports whether the modal is showing.
func (m Modal) IsOpen() bool { return m.open }

// Title returns the current category title ("" when closed).
func (m Modal) Title() string { return m.title }

// Items returns the current detail list (nil when closed).
func (m Modal) Items() []gap.SkillGapItem { return m.items }

// Update handles keys while the modal is open. Esc is the backdrop:
// it closes. Scrolling happens inside the content and never closes.
func (m Modal) Update(msg tea.Msg) Modal {
	if !m.open {
		return m
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m
	}

	switch kmsg.String() {
	case "esc", "q":
		m.Close()
	case "up", "k":
		if m.offset > 0 {
			m.offset--
		}
	case "down", "j":
		if m.offset < len(m.items)-1 {
			m.offset++
		}
	}
	return m
}

// View renders the overlay.
func (m Modal) View(width, height int) string {
	if !m.open {
		return ""
	}

	contentWidth := width - 12
	if contentWidth > 64 {
		contentWidth = 64
	}
	if contentWidth < 24 {
		contentWidth = 24
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(m.title))
	b.WriteString("\n\n")

	visible := height - 8
	if visible < 1 {
		visible = 1
	}
	end := m.offset + visible
	if end > len(m.items) {
		end = len(m.items)
	}

	for _, item := range m.items[m.offset:end] {
		b.WriteString(renderGapItem(item, contentWidth))
	}

	if len(m.items) > visible {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n%d-%d of %d", m.offset+1, end, len(m.items))))
	}

	return theme.Card.Width(contentWidth + 4).Render(b.String())
}

func renderGapItem(item gap.SkillGapItem, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var b strings.Builder

	b.WriteString(statusStyle(item.Status).Render("• " + item.SkillName))
	if item.GapSeverity != "" {
		b.WriteString(dim.Render(fmt.Sprintf("  (%s severity)", item.GapSeverity)))
	}
	b.WriteString("\n")

	if item.CurrentProficiency != "" || item.RequiredProficiency != "" {
		cur := string(item.CurrentProficiency)
		if cur == "" {
			cur = "none"
		}
		req := string(item.RequiredProficiency)
		if req == "" {
			req = "n/a"
		}
		b.WriteString(dim.Render(fmt.Sprintf("  %s → %s", cur, req)))
		b.WriteString("\n")
	}

	if item.Recommendation != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width).
			PaddingLeft(2).
			Render(item.Recommendation))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

func statusStyle(status gap.GapStatus) lipgloss.Style {
	switch status {
	case gap.StatusMet:
		return theme.Met
	case gap.StatusMissing:
		return theme.Missing
	case gap.StatusWeak:
		return theme.Weak
	default:
		return theme.Body
	}
}
