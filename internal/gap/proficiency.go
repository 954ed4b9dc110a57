package gap

import "fmt"

// Proficiency is an ordered competency level for a single skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Proficiencies lists all levels in ascending order.
var Proficiencies = []Proficiency{
	ProficiencyBeginner,
	ProficiencyIntermediate,
	ProficiencyAdvanced,
	ProficiencyExpert,
}

var proficiencyRank = map[Proficiency]int{
	ProficiencyBeginner:     0,
	ProficiencyIntermediate: 1,
	ProficiencyAdvanced:     2,
	ProficiencyExpert:       3,
}

// Rank returns the position of p in the ordering, or -1 for unknown values.
func (p Proficiency) Rank() int {
	r, ok := proficiencyRank[p]
	if !ok {
		return -1
	}
	return r
}

// Valid reports whether p is one of the four known levels.
func (p Proficiency) Valid() bool {
	_, ok := proficiencyRank[p]
	return ok
}

// ParseProficiency converts a string to a Proficiency.
func ParseProficiency(s string) (Proficiency, error) {
	p := Proficiency(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown proficiency level: %q", s)
	}
	return p, nil
}
