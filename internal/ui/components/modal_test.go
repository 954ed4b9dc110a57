package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/gap"
)

func sampleItems() []gap.SkillGapItem {
	return []gap.SkillGapItem{
		{SkillName: "Kubernetes", Status: gap.StatusMissing, GapSeverity: gap.SeverityHigh},
		{SkillName: "Terraform", Status: gap.StatusMissing, GapSeverity: gap.SeverityMedium},
	}
}

func TestModalOpenWithItems(t *testing.T) {
	m := NewModal()

	notice, opened := m.Open(sampleItems(), "Skills Missing")
	if !opened || notice != "" {
		t.Fatalf("expected open, got opened=%v notice=%q", opened, notice)
	}
	if !m.IsOpen() || m.Title() != "Skills Missing" || len(m.Items()) != 2 {
		t.Errorf("modal state not set atomically: open=%v title=%q items=%d",
			m.IsOpen(), m.Title(), len(m.Items()))
	}
}

func TestModalOpenEmptyRefuses(t *testing.T) {
	m := NewModal()

	notice, opened := m.Open(nil, "Skills Weak")
	if opened {
		t.Fatal("empty list must not open the modal")
	}
	if !strings.Contains(strings.ToLower(notice), "skills weak") {
		t.Errorf("notice should name the category, got %q", notice)
	}
	if m.IsOpen() || m.Title() != "" || m.Items() != nil {
		t.Error("refused open must leave state unchanged")
	}
}

func TestModalCloseResetsEverything(t *testing.T) {
	m := NewModal()
	m.Open(sampleItems(), "Skills Met")

	m.Close()
	if m.IsOpen() || len(m.Items()) != 0 || m.Title() != "" {
		t.Errorf("close must reset all fields: open=%v items=%d title=%q",
			m.IsOpen(), len(m.Items()), m.Title())
	}
}

func TestModalEscCloses(t *testing.T) {
	m := NewModal()
	m.Open(sampleItems(), "Skills Missing")

	m = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.IsOpen() {
		t.Error("esc should close the modal")
	}
}

func TestModalScrollDoesNotClose(t *testing.T) {
	m := NewModal()
	m.Open(sampleItems(), "Skills Missing")

	m = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if !m.IsOpen() {
		t.Error("scrolling inside the content must not close the modal")
	}
}

func TestModalViewClosedIsEmpty(t *testing.T) {
	m := NewModal()
	if m.View(80, 24) != "" {
		t.Error("closed modal should render nothing")
	}
}
