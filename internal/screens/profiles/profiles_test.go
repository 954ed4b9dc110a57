package profiles

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/router"
)

func loaded(s *ListScreen, profiles ...gap.Profile) *ListScreen {
	next, _ := s.Update(profilesLoadedMsg{Generation: s.generation, Profiles: profiles})
	return next.(*ListScreen)
}

func TestOpenWithoutIDRefuses(t *testing.T) {
	s := New(analysis.NewMockClient(), true)
	s = loaded(s, gap.Profile{Name: "Priya", CurrentRole: "Engineer"})

	next, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = next.(*ListScreen)
	if cmd != nil {
		t.Fatal("a record without an id must not navigate anywhere")
	}
	if !strings.Contains(s.errMsg, "no id") {
		t.Errorf("expected an error about the missing id, got %q", s.errMsg)
	}
}

func TestOpenWithIDPushesDetail(t *testing.T) {
	s := New(analysis.NewMockClient(), true)
	s = loaded(s, gap.Profile{ID: "p1", Name: "Priya"})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a navigation command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestStaleLoadDropped(t *testing.T) {
	s := New(analysis.NewMockClient(), true)
	s.load() // generation 1
	s.load() // generation 2 supersedes it

	next, _ := s.Update(profilesLoadedMsg{
		Generation: 1,
		Profiles:   []gap.Profile{{ID: "old", Name: "Old"}},
	})
	s = next.(*ListScreen)
	if len(s.profiles) != 0 {
		t.Fatal("a superseded response must not overwrite the list")
	}

	next, _ = s.Update(profilesLoadedMsg{
		Generation: 2,
		Profiles:   []gap.Profile{{ID: "new", Name: "New"}},
	})
	s = next.(*ListScreen)
	if len(s.profiles) != 1 || s.profiles[0].ID != "new" {
		t.Errorf("the current generation's response should apply, got %v", s.profiles)
	}
}

func TestLoadErrorSurfacesMessage(t *testing.T) {
	s := New(analysis.NewMockClient(), true)

	next, _ := s.Update(profilesLoadedMsg{
		Generation: s.generation,
		Err:        &analysis.APIError{Status: 500, Detail: "database unavailable"},
	})
	s = next.(*ListScreen)
	if s.errMsg != "database unavailable" {
		t.Errorf("expected the service detail verbatim, got %q", s.errMsg)
	}
}

func TestReloadMsgFetchesAgain(t *testing.T) {
	s := New(analysis.NewMockClient(), true)
	before := s.generation

	_, cmd := s.Update(ReloadMsg{})
	if cmd == nil {
		t.Fatal("reload should issue a fetch command")
	}
	if s.generation != before+1 {
		t.Error("reload should advance the generation")
	}
}
