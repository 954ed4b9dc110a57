package profiledetail

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/router"
)

func TestStaleProfileResponseDropped(t *testing.T) {
	s := New(analysis.NewMockClient(), "p1", true)

	next, _ := s.Update(profileLoadedMsg{
		ProfileID: "p2",
		Profile:   &gap.Profile{ID: "p2", Name: "Someone Else"},
	})
	s = next.(*DetailScreen)
	if s.profile != nil {
		t.Fatal("a response for another profile id must be dropped silently")
	}
}

func TestNotFoundSurfacesDetail(t *testing.T) {
	s := New(analysis.NewMockClient(), "p1", true)

	next, _ := s.Update(profileLoadedMsg{
		ProfileID: "p1",
		Err:       &analysis.APIError{Status: 404, Detail: "Profile p1 not found"},
	})
	s = next.(*DetailScreen)
	if s.errMsg != "Profile p1 not found" {
		t.Errorf("expected the service detail verbatim, got %q", s.errMsg)
	}
}

func TestAnalyzeRequiresLoadedProfile(t *testing.T) {
	s := New(analysis.NewMockClient(), "p1", true)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd != nil {
		t.Fatal("analyze must wait for the profile to load")
	}

	next, _ := s.Update(profileLoadedMsg{
		ProfileID: "p1",
		Profile:   &gap.Profile{ID: "p1", Name: "Priya"},
	})
	s = next.(*DetailScreen)

	_, cmd = s.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	if cmd == nil {
		t.Fatal("with a loaded profile, analyze should navigate")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestEscReturnsToRoot(t *testing.T) {
	s := New(analysis.NewMockClient(), "p1", true)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should navigate")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("esc should return to the profile list, got %T", cmd())
	}
}
