package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPushInitsAndActivates(t *testing.T) {
	r := New(&stubScreen{title: "list"})

	detail := &stubScreen{title: "detail"}
	r.Push(detail)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "detail" {
		t.Errorf("expected active 'detail', got %q", r.Active().Title())
	}
	if !detail.initRan {
		t.Error("pushed screen's Init should run")
	}
}

func TestPopStopsAtRoot(t *testing.T) {
	r := New(&stubScreen{title: "list"})
	r.Push(&stubScreen{title: "detail"})

	r.Pop()
	if r.Depth() != 1 || r.Active().Title() != "list" {
		t.Errorf("expected root after pop, got depth %d active %q", r.Depth(), r.Active().Title())
	}

	r.Pop()
	if r.Depth() != 1 {
		t.Error("pop at root must be a no-op")
	}
}

func TestPopToRootDiscardsWholeTrail(t *testing.T) {
	r := New(&stubScreen{title: "list"})
	r.Push(&stubScreen{title: "detail"})
	r.Push(&stubScreen{title: "chat"})

	r.Update(PopToRootMsg{})
	if r.Depth() != 1 || r.Active().Title() != "list" {
		t.Errorf("expected root after PopToRoot, got depth %d active %q", r.Depth(), r.Active().Title())
	}
}

func TestUpdateRoutesNavigationMessages(t *testing.T) {
	r := New(&stubScreen{title: "list"})

	r.Update(PushScreenMsg{Screen: &stubScreen{title: "create"}})
	if r.Active().Title() != "create" {
		t.Errorf("PushScreenMsg not handled, active %q", r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Active().Title() != "list" {
		t.Errorf("PopScreenMsg not handled, active %q", r.Active().Title())
	}
}
