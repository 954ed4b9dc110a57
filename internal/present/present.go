// Package present derives display values from a gap report. Everything
// here is a pure function; categorization itself is the service's job.
package present

import (
	"fmt"

	"github.com/priyamvada/skillscope/internal/gap"
)

// ScorePlaceholder is rendered when a report carries no gap score.
const ScorePlaceholder = "--"

// Counts are the category sizes of one report.
type Counts struct {
	Met     int
	Missing int
	Weak    int
}

// Total is the number of compared skills across all categories.
func (c Counts) Total() int {
	return c.Met + c.Missing + c.Weak
}

// CountsOf buckets a report's categories by size.
func CountsOf(r *gap.GapReport) Counts {
	if r == nil {
		return Counts{}
	}
	return Counts{
		Met:     len(r.SkillsMet),
		Missing: len(r.SkillsMissing),
		Weak:    len(r.SkillsWeak),
	}
}

// FormatScore renders a gap score with exactly two decimal places, or
// the placeholder when the score is absent.
func FormatScore(score *float64) string {
	if score == nil {
		return ScorePlaceholder
	}
	return fmt.Sprintf("%.2f", *score)
}
