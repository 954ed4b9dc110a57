// Package gap holds the shared data model exchanged with the skill gap
// analysis service. Field names and JSON tags follow the service's REST
// contract; the types themselves carry no behavior beyond validation and
// display helpers.
package gap

import (
	"fmt"
	"strings"
)

// Skill is one entry in a profile's skill list.
type Skill struct {
	Name            string      `json:"name"`
	Proficiency     Proficiency `json:"proficiency,omitempty"`
	YearsExperience float64     `json:"years_experience,omitempty"`
}

// Profile is a user's skill profile as stored by the service. ID is
// server-assigned; a Profile is never mutated client-side after creation
// except by resubmitting a full replacement through UpdateProfile.
type Profile struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name"`
	CurrentRole     string   `json:"current_role"`
	ExperienceYears float64  `json:"experience_years,omitempty"`
	Skills          []Skill  `json:"skills"`
	Certifications  []string `json:"certifications"`
	Bio             string   `json:"bio,omitempty"`
}

// HasID reports whether the profile carries a resolvable identity.
// Screens that depend on a selected profile must refuse records where
// this is false.
func (p Profile) HasID() bool {
	return strings.TrimSpace(p.ID) != ""
}

// TargetRole describes the role a profile is analyzed against.
type TargetRole struct {
	RoleName       string `json:"role_name"`
	Description    string `json:"description,omitempty"`
	SkillFramework string `json:"skill_framework,omitempty"`
}

// AnalysisRequest is the payload for POST /api/analyze.
type AnalysisRequest struct {
	UserProfileID string     `json:"user_profile_id"`
	UserQuery     string     `json:"user_query"`
	TargetRole    TargetRole `json:"target_role"`
	UseRAG        bool       `json:"use_rag"`
}

// Validate checks the request preconditions that must hold before any
// network call is made.
func (r AnalysisRequest) Validate() error {
	if strings.TrimSpace(r.UserProfileID) == "" {
		return fmt.Errorf("analysis request: user_profile_id is required")
	}
	if strings.TrimSpace(r.TargetRole.RoleName) == "" {
		return fmt.Errorf("analysis request: target role name is required")
	}
	if strings.TrimSpace(r.UserQuery) == "" {
		return fmt.Errorf("analysis request: query is required")
	}
	return nil
}

// GapStatus classifies one skill's comparison outcome.
type GapStatus string

const (
	StatusMet     GapStatus = "met"
	StatusMissing GapStatus = "missing"
	StatusWeak    GapStatus = "weak"
)

// GapSeverity grades how serious a single gap is.
type GapSeverity string

const (
	SeverityLow    GapSeverity = "low"
	SeverityMedium GapSeverity = "medium"
	SeverityHigh   GapSeverity = "high"
)

// SkillGapItem is one skill's comparison outcome within a report.
type SkillGapItem struct {
	SkillName           string      `json:"skill_name"`
	Status              GapStatus   `json:"status"`
	CurrentProficiency  Proficiency `json:"current_proficiency,omitempty"`
	RequiredProficiency Proficiency `json:"required_proficiency,omitempty"`
	GapSeverity         GapSeverity `json:"gap_severity,omitempty"`
	Recommendation      string      `json:"recommendation,omitempty"`
}

// GapReport is the full analysis result returned by POST /api/analyze.
// Categorization into met/missing/weak is done by the service; the client
// only counts and displays.
type GapReport struct {
	UserName        string         `json:"user_name,omitempty"`
	CurrentRole     string         `json:"current_role,omitempty"`
	TargetRole      string         `json:"target_role,omitempty"`
	AnalysisSummary string         `json:"analysis_summary,omitempty"`
	OverallGapScore *float64       `json:"overall_gap_score,omitempty"`
	SkillsMet       []SkillGapItem `json:"skills_met"`
	SkillsMissing   []SkillGapItem `json:"skills_missing"`
	SkillsWeak      []SkillGapItem `json:"skills_weak"`
	UpskillingPath  []string       `json:"upskilling_path,omitempty"`
}

// ReportSummary is one row of GET /api/profiles/{id}/reports.
type ReportSummary struct {
	ID              string  `json:"id"`
	TargetRole      string  `json:"target_role"`
	OverallGapScore float64 `json:"overall_gap_score"`
	CreatedAt       string  `json:"created_at"`
}
