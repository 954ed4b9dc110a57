package createprofile

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/router"
)

func TestBlankSkillEntryIsNoOp(t *testing.T) {
	s := New(analysis.NewMockClient(), nil)
	s.focus = fieldSkill
	s.inputs[fieldSkill].Model.SetValue("   ")

	s.handleEnter()
	if len(s.draft.Skills) != 0 {
		t.Fatal("a blank skill entry must not change the draft")
	}

	s.inputs[fieldSkill].Model.SetValue("Go")
	s.handleEnter()
	if len(s.draft.Skills) != 1 || s.draft.Skills[0].Name != "Go" {
		t.Errorf("expected the skill to be added, got %v", s.draft.Skills)
	}
	if s.inputs[fieldSkill].Value() != "" {
		t.Error("a successful add should clear the entry input")
	}
}

func TestSubmitInvalidDraftRefused(t *testing.T) {
	s := New(analysis.NewMockClient(), nil)

	if cmd := s.submit(); cmd != nil {
		t.Fatal("an invalid draft must not issue a create request")
	}
	if s.errMsg == "" {
		t.Error("the validation failure should be surfaced")
	}
	if s.submitting {
		t.Error("a refused submit must not mark the form busy")
	}
}

func TestSubmitValidDraft(t *testing.T) {
	s := New(analysis.NewMockClient(), nil)
	s.inputs[fieldName].Model.SetValue("Priya")
	s.inputs[fieldRole].Model.SetValue("Backend Engineer")
	s.draft.AddSkill("Go", gap.ProficiencyAdvanced, 4)

	cmd := s.submit()
	if cmd == nil {
		t.Fatal("a valid draft should issue the create request")
	}
	if !s.submitting {
		t.Error("the form should be busy while the request runs")
	}

	msg, ok := cmd().(profileCreatedMsg)
	if !ok {
		t.Fatalf("expected profileCreatedMsg, got %T", cmd())
	}
	if msg.Err != nil || msg.Profile == nil || msg.Profile.ID == "" {
		t.Errorf("create should return a profile with an id, got %+v err=%v", msg.Profile, msg.Err)
	}
}

func TestCreatedPopsThenNotifies(t *testing.T) {
	type reloadMarker struct{}
	s := New(analysis.NewMockClient(), func() tea.Msg { return reloadMarker{} })

	_, cmd := s.Update(profileCreatedMsg{Profile: &gap.Profile{ID: "p1"}})
	if cmd == nil {
		t.Fatal("success should navigate back")
	}
}

func TestEscCancels(t *testing.T) {
	s := New(analysis.NewMockClient(), nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("esc should cancel")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
