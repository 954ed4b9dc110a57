package gap

import (
	"encoding/json"
	"testing"
)

func TestProficiencyOrdering(t *testing.T) {
	prev := -1
	for _, p := range Proficiencies {
		if p.Rank() <= prev {
			t.Errorf("proficiency %q rank %d not strictly increasing", p, p.Rank())
		}
		prev = p.Rank()
	}
	if Proficiency("wizard").Rank() != -1 {
		t.Error("unknown proficiency should rank -1")
	}
}

func TestParseProficiency(t *testing.T) {
	p, err := ParseProficiency("advanced")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != ProficiencyAdvanced {
		t.Errorf("expected advanced, got %q", p)
	}
	if _, err := ParseProficiency("guru"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestProfileHasID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{"abc-123", true},
		{"", false},
		{"   ", false},
	}
	for _, c := range cases {
		p := Profile{ID: c.id}
		if p.HasID() != c.want {
			t.Errorf("HasID(%q) = %v, want %v", c.id, p.HasID(), c.want)
		}
	}
}

func TestAnalysisRequestValidate(t *testing.T) {
	valid := AnalysisRequest{
		UserProfileID: "p1",
		UserQuery:     "move into leadership",
		TargetRole:    TargetRole{RoleName: "Senior Architect"},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	blankRole := valid
	blankRole.TargetRole.RoleName = "   "
	if err := blankRole.Validate(); err == nil {
		t.Error("blank target role should be rejected")
	}

	blankQuery := valid
	blankQuery.UserQuery = ""
	if err := blankQuery.Validate(); err == nil {
		t.Error("blank query should be rejected")
	}
}

func TestGapReportScoreAbsent(t *testing.T) {
	var r GapReport
	if err := json.Unmarshal([]byte(`{"skills_met":[],"skills_missing":[],"skills_weak":[]}`), &r); err != nil {
		t.Fatal(err)
	}
	if r.OverallGapScore != nil {
		t.Error("absent score should unmarshal to nil")
	}
}

func TestDraftBlankEntriesAreNoOps(t *testing.T) {
	var d Draft

	if d.AddSkill("   ", ProficiencyBeginner, 1) {
		t.Error("whitespace-only skill should be rejected")
	}
	if d.AddCertification("") {
		t.Error("blank certification should be rejected")
	}
	if len(d.Skills) != 0 || len(d.Certifications) != 0 {
		t.Fatal("blank entries must not change the draft lists")
	}

	if !d.AddSkill("  Terraform ", ProficiencyIntermediate, 2) {
		t.Error("valid skill rejected")
	}
	if d.Skills[0].Name != "Terraform" {
		t.Errorf("skill name not trimmed: %q", d.Skills[0].Name)
	}
	if !d.AddCertification("CKA") {
		t.Error("valid certification rejected")
	}
}

func TestDraftProfileNeverNilLists(t *testing.T) {
	d := Draft{Name: "Ada", CurrentRole: "Data Analyst"}
	p := d.Profile()
	if p.Skills == nil || p.Certifications == nil {
		t.Error("profile payload must serialize empty lists, not null")
	}
}
