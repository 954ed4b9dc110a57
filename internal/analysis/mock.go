package analysis

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/priyamvada/skillscope/internal/gap"
)

// MockClient is an in-memory Client for tests and offline development.
// Profiles live in a map keyed by generated ids; Analyze returns the
// configured report or error.
type MockClient struct {
	mu       sync.Mutex
	profiles map[string]gap.Profile

	Report     *gap.GapReport
	AnalyzeErr error
	Healthy    bool

	AnalyzeCalls []gap.AnalysisRequest
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates an empty healthy mock.
func NewMockClient() *MockClient {
	return &MockClient{
		profiles: make(map[string]gap.Profile),
		Healthy:  true,
	}
}

func (m *MockClient) CreateProfile(_ context.Context, p gap.Profile) (*gap.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = uuid.NewString()
	m.profiles[p.ID] = p
	return &p, nil
}

func (m *MockClient) GetProfile(_ context.Context, id string) (*gap.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, &APIError{Status: 404, Detail: fmt.Sprintf("Profile %s not found", id)}
	}
	return &p, nil
}

func (m *MockClient) ListProfiles(context.Context) ([]gap.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]gap.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	return out, nil
}

func (m *MockClient) UpdateProfile(_ context.Context, id string, p gap.Profile) (*gap.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return nil, &APIError{Status: 404, Detail: "Profile not found"}
	}
	p.ID = id
	m.profiles[id] = p
	return &p, nil
}

func (m *MockClient) DeleteProfile(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[id]; !ok {
		return &APIError{Status: 404, Detail: "Profile not found"}
	}
	delete(m.profiles, id)
	return nil
}

func (m *MockClient) UploadProfile(ctx context.Context, in UploadInput) (*UploadResult, error) {
	p, err := m.CreateProfile(ctx, gap.Profile{
		Name:        in.Name,
		CurrentRole: in.CurrentRole,
		Bio:         in.ProfileText,
	})
	if err != nil {
		return nil, err
	}
	return &UploadResult{ProfileID: p.ID}, nil
}

func (m *MockClient) Analyze(_ context.Context, req gap.AnalysisRequest) (*gap.GapReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.AnalyzeCalls = append(m.AnalyzeCalls, req)
	m.mu.Unlock()
	if m.AnalyzeErr != nil {
		return nil, m.AnalyzeErr
	}
	if m.Report != nil {
		return m.Report, nil
	}
	score := 50.0
	return &gap.GapReport{
		TargetRole:      req.TargetRole.RoleName,
		AnalysisSummary: "mock analysis",
		OverallGapScore: &score,
		SkillsMet:       []gap.SkillGapItem{},
		SkillsMissing:   []gap.SkillGapItem{},
		SkillsWeak:      []gap.SkillGapItem{},
	}, nil
}

func (m *MockClient) ListReports(context.Context, string) ([]gap.ReportSummary, error) {
	return nil, nil
}

func (m *MockClient) HealthCheck(context.Context) Health {
	if m.Healthy {
		return HealthOK
	}
	return HealthFail
}
