// Package analysis wraps the skill gap analysis service's REST API.
// The rest of the program depends only on the Client interface; every
// operation is independently failable and no cross-call ordering is
// guaranteed between concurrently issued operations.
package analysis

import (
	"context"

	"github.com/priyamvada/skillscope/internal/gap"
)

// Health is the result of a connectivity probe.
type Health int

const (
	HealthUnknown Health = iota
	HealthOK
	HealthFail
)

// UploadInput is the payload for free-text profile upload. The service
// parses the text into a structured profile server-side.
type UploadInput struct {
	ProfileText string `json:"profile_text"`
	Name        string `json:"name,omitempty"`
	CurrentRole string `json:"current_role,omitempty"`
}

// UploadResult carries the id of the profile the service created.
type UploadResult struct {
	ProfileID string `json:"profile_id"`
	Message   string `json:"message,omitempty"`
}

// Client is the interface to the remote analysis service.
type Client interface {
	CreateProfile(ctx context.Context, p gap.Profile) (*gap.Profile, error)
	GetProfile(ctx context.Context, id string) (*gap.Profile, error)
	ListProfiles(ctx context.Context) ([]gap.Profile, error)
	UpdateProfile(ctx context.Context, id string, p gap.Profile) (*gap.Profile, error)
	DeleteProfile(ctx context.Context, id string) error
	UploadProfile(ctx context.Context, in UploadInput) (*UploadResult, error)
	Analyze(ctx context.Context, req gap.AnalysisRequest) (*gap.GapReport, error)
	ListReports(ctx context.Context, profileID string) ([]gap.ReportSummary, error)
	HealthCheck(ctx context.Context) Health
}
