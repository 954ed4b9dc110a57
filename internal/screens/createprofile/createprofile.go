// Package createprofile implements the profile creation form. The form
// accumulates a draft locally; nothing is sent until the user submits,
// and the screen returns to the list on success or cancel.
package createprofile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/priyamvada/skillscope/internal/analysis"
	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/router"
	"github.com/priyamvada/skillscope/internal/screen"
	"github.com/priyamvada/skillscope/internal/ui/components"
	"github.com/priyamvada/skillscope/internal/ui/layout"
	"github.com/priyamvada/skillscope/internal/ui/theme"
)

// field indexes the form inputs in tab order.
type field int

const (
	fieldName field = iota
	fieldRole
	fieldYears
	fieldSkill
	fieldProficiency
	fieldCert
	fieldCount
)

// profileCreatedMsg carries the outcome of the create request.
type profileCreatedMsg struct {
	Profile *gap.Profile
	Err     error
}

// CreateScreen is the profile creation form.
type CreateScreen struct {
	client    analysis.Client
	onCreated func() tea.Msg

	draft       gap.Draft
	inputs      [fieldCount]components.TextInput
	proficiency int // index into gap.Proficiencies for the pending skill
	focus       field
	submitting  bool
	errMsg      string
}

var _ screen.Screen = (*CreateScreen)(nil)
var _ screen.KeyHintProvider = (*CreateScreen)(nil)

// New creates the form screen. onCreated is delivered to the list
// screen after the pop so it can refetch and show the new record.
func New(client analysis.Client, onCreated func() tea.Msg) *CreateScreen {
	s := &CreateScreen{client: client, onCreated: onCreated}
	s.inputs[fieldName] = components.NewTextInput("Full name", false, 60)
	s.inputs[fieldRole] = components.NewTextInput("Current role", false, 60)
	s.inputs[fieldYears] = components.NewTextInput("Years of experience", true, 4)
	s.inputs[fieldSkill] = components.NewTextInput("Add a skill (enter to add)", false, 60)
	s.inputs[fieldCert] = components.NewTextInput("Add a certification (enter to add)", false, 60)
	return s
}

func (s *CreateScreen) Init() tea.Cmd {
	return s.inputs[fieldName].Focus()
}

func (s *CreateScreen) Title() string {
	return "New Profile"
}

func (s *CreateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Add entry"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *CreateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileCreatedMsg:
		s.submitting = false
		if msg.Err != nil {
			s.errMsg = analysis.MessageFor(msg.Err)
			return s, nil
		}
		// Pop first, then tell the list to refetch; Sequence keeps the
		// pop ahead of the reload so the reload reaches the list.
		pop := func() tea.Msg { return router.PopScreenMsg{} }
		if s.onCreated == nil {
			return s, pop
		}
		return s, tea.Sequence(pop, func() tea.Msg { return s.onCreated() })

	case tea.KeyMsg:
		if s.submitting {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.moveFocus(1)
			return s, nil
		case "shift+tab":
			s.moveFocus(-1)
			return s, nil
		case "ctrl+s":
			return s, s.submit()
		case "enter":
			s.handleEnter()
			return s, nil
		}
		if s.focus == fieldProficiency {
			switch msg.String() {
			case "left", "h":
				if s.proficiency > 0 {
					s.proficiency--
				}
			case "right", "l":
				if s.proficiency < len(gap.Proficiencies)-1 {
					s.proficiency++
				}
			}
			return s, nil
		}
	}

	if s.focus != fieldProficiency {
		var cmd tea.Cmd
		s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
		return s, cmd
	}
	return s, nil
}

// handleEnter adds the pending skill or certification entry. Blank
// entries never change the draft lists.
func (s *CreateScreen) handleEnter() {
	switch s.focus {
	case fieldSkill, fieldProficiency:
		if s.draft.AddSkill(s.inputs[fieldSkill].Value(), gap.Proficiencies[s.proficiency], 0) {
			s.inputs[fieldSkill].Reset()
		}
	case fieldCert:
		if s.draft.AddCertification(s.inputs[fieldCert].Value()) {
			s.inputs[fieldCert].Reset()
		}
	default:
		s.moveFocus(1)
	}
}

func (s *CreateScreen) moveFocus(delta int) {
	s.inputs[s.focus].Blur()
	s.focus = field((int(s.focus) + delta + int(fieldCount)) % int(fieldCount))
	if s.focus != fieldProficiency {
		s.inputs[s.focus].Focus()
	}
}

// submit validates the draft and issues the create request.
func (s *CreateScreen) submit() tea.Cmd {
	s.draft.Name = s.inputs[fieldName].Value()
	s.draft.CurrentRole = s.inputs[fieldRole].Value()
	if years, err := s.inputs[fieldYears].NumericValue(); err == nil && years >= 0 {
		s.draft.ExperienceYears = years
	}

	if err := s.draft.Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}

	s.errMsg = ""
	s.submitting = true
	client := s.client
	payload := s.draft.Profile()
	return func() tea.Msg {
		p, err := client.CreateProfile(context.Background(), payload)
		return profileCreatedMsg{Profile: p, Err: err}
	}
}

func (s *CreateScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString("  " + theme.ErrorBanner.Render(s.errMsg) + "\n\n")
	}

	labels := [fieldCount]string{"Name", "Current role", "Experience (years)", "Skill", "Proficiency", "Certification"}
	for f := fieldName; f < fieldCount; f++ {
		label := labels[f]
		style := theme.Hint
		if f == s.focus {
			style = theme.Selected
		}
		b.WriteString("  " + style.Render(fmt.Sprintf("%-20s", label)))
		if f == fieldProficiency {
			b.WriteString(s.renderProficiencyPicker())
		} else {
			b.WriteString(s.inputs[f].View())
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(s.draft.Skills) > 0 {
		b.WriteString(theme.Hint.Render("  Skills: "))
		names := make([]string, len(s.draft.Skills))
		for i, sk := range s.draft.Skills {
			names[i] = fmt.Sprintf("%s (%s)", sk.Name, sk.Proficiency)
		}
		b.WriteString(theme.Body.Render(strings.Join(names, ", ")))
		b.WriteString("\n")
	}
	if len(s.draft.Certifications) > 0 {
		b.WriteString(theme.Hint.Render("  Certifications: "))
		b.WriteString(theme.Body.Render(strings.Join(s.draft.Certifications, ", ")))
		b.WriteString("\n")
	}

	if s.submitting {
		b.WriteString("\n" + theme.Hint.Render("  Saving profile..."))
	}
	return b.String()
}

func (s *CreateScreen) renderProficiencyPicker() string {
	parts := make([]string, len(gap.Proficiencies))
	for i, p := range gap.Proficiencies {
		if i == s.proficiency {
			parts[i] = theme.Selected.Render("[" + string(p) + "]")
		} else {
			parts[i] = theme.Hint.Render(string(p))
		}
	}
	return strings.Join(parts, " ")
}
