package present

import (
	"testing"

	"github.com/priyamvada/skillscope/internal/gap"
)

func TestCountsOf(t *testing.T) {
	r := &gap.GapReport{
		SkillsMet:     []gap.SkillGapItem{{SkillName: "SQL"}, {SkillName: "Python"}},
		SkillsMissing: []gap.SkillGapItem{{SkillName: "Kubernetes"}},
		SkillsWeak:    nil,
	}
	c := CountsOf(r)
	if c.Met != 2 || c.Missing != 1 || c.Weak != 0 {
		t.Errorf("unexpected counts: %+v", c)
	}
	if c.Total() != 3 {
		t.Errorf("total = %d, want 3", c.Total())
	}
}

func TestCountsOfNilReport(t *testing.T) {
	if c := CountsOf(nil); c.Total() != 0 {
		t.Errorf("nil report should count zero, got %+v", c)
	}
}

func TestFormatScore(t *testing.T) {
	cases := []struct {
		score *float64
		want  string
	}{
		{ptr(62.5), "62.50"},
		{ptr(0), "0.00"},
		{ptr(100), "100.00"},
		{ptr(33.333), "33.33"},
		{nil, ScorePlaceholder},
	}
	for _, c := range cases {
		if got := FormatScore(c.score); got != c.want {
			t.Errorf("FormatScore(%v) = %q, want %q", c.score, got, c.want)
		}
	}
}

func ptr(f float64) *float64 { return &f }
