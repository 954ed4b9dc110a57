package analysis

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/priyamvada/skillscope/internal/gap"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestGetProfile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/profiles/p1", r.URL.Path)
		w.Write([]byte(`{"id":"p1","name":"Ada","current_role":"Data Analyst","skills":[],"certifications":[]}`))
	}))

	p, err := c.GetProfile(context.Background(), "p1")
	require.NoError(t, err)
	require.Equal(t, "p1", p.ID)
	require.Equal(t, "Ada", p.Name)
}

func TestCreateProfileSendsBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/profiles/create", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"id":"new-id","name":"Ada","current_role":"Data Analyst","skills":[],"certifications":[]}`))
	}))

	p, err := c.CreateProfile(context.Background(), gap.Profile{Name: "Ada", CurrentRole: "Data Analyst"})
	require.NoError(t, err)
	require.True(t, p.HasID())
}

func TestAPIErrorDetailExtraction(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Profile p9 not found"}`))
	}))

	_, err := c.GetProfile(context.Background(), "p9")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	require.Equal(t, http.StatusNotFound, apiErr.Status)
	require.Equal(t, "Profile p9 not found", apiErr.Detail)
}

func TestUnreachableServiceYieldsErrUnavailable(t *testing.T) {
	c, err := NewHTTPClient("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = c.ListProfiles(context.Background())
	require.Error(t, err)
	_, ok := err.(*ErrUnavailable)
	require.True(t, ok, "expected *ErrUnavailable, got %T", err)
}

func TestAnalyzeValidResponse(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/analyze", r.URL.Path)
		w.Write([]byte(`{
			"analysis_summary": "Strong base, gaps in systems design.",
			"overall_gap_score": 62.5,
			"skills_met": [{"skill_name":"SQL","status":"met"}],
			"skills_missing": [{"skill_name":"Kubernetes","status":"missing","gap_severity":"high"}],
			"skills_weak": []
		}`))
	}))

	report, err := c.Analyze(context.Background(), gap.AnalysisRequest{
		UserProfileID: "p1",
		UserQuery:     "move into leadership",
		TargetRole:    gap.TargetRole{RoleName: "Senior Architect"},
	})
	require.NoError(t, err)
	require.NotNil(t, report.OverallGapScore)
	require.InDelta(t, 62.5, *report.OverallGapScore, 0.001)
	require.Len(t, report.SkillsMet, 1)
	require.Len(t, report.SkillsMissing, 1)
}

func TestAnalyzeRejectsMalformedReport(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Missing required category lists, score out of range.
		w.Write([]byte(`{"overall_gap_score": 150}`))
	}))

	_, err := c.Analyze(context.Background(), gap.AnalysisRequest{
		UserProfileID: "p1",
		UserQuery:     "q",
		TargetRole:    gap.TargetRole{RoleName: "R"},
	})
	require.Error(t, err)
	_, ok := err.(*ErrInvalidReport)
	require.True(t, ok, "expected *ErrInvalidReport, got %T", err)
}

func TestAnalyzeBlankTargetRoleNeverHitsNetwork(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := c.Analyze(context.Background(), gap.AnalysisRequest{
		UserProfileID: "p1",
		UserQuery:     "q",
		TargetRole:    gap.TargetRole{RoleName: "   "},
	})
	require.Error(t, err)
	require.False(t, called, "validation failure must not issue a request")
}

func TestHealthCheck(t *testing.T) {
	ok := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"status":"healthy"}`))
	}))
	require.Equal(t, HealthOK, ok.HealthCheck(context.Background()))

	failing := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	require.Equal(t, HealthFail, failing.HealthCheck(context.Background()))

	unreachable, err := NewHTTPClient("http://127.0.0.1:1")
	require.NoError(t, err)
	require.Equal(t, HealthFail, unreachable.HealthCheck(context.Background()))
}

func TestDeleteProfile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/profiles/p1", r.URL.Path)
		w.Write([]byte(`{"status":"deleted"}`))
	}))
	require.NoError(t, c.DeleteProfile(context.Background(), "p1"))
}
