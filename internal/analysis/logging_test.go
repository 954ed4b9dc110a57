package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/store"
)

// recordingRepo implements store.EventRepo for testing.
type recordingRepo struct {
	events []store.AnalysisEventData
}

func (r *recordingRepo) AppendAnalysis(_ context.Context, data store.AnalysisEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingRepo) QueryAnalyses(context.Context, store.QueryOpts) ([]store.AnalysisEventRecord, error) {
	return nil, nil
}

func analyzeReq() gap.AnalysisRequest {
	return gap.AnalysisRequest{
		UserProfileID: "p1",
		UserQuery:     "grow",
		TargetRole:    gap.TargetRole{RoleName: "Senior Architect"},
	}
}

func TestLoggingClientJournalsSuccess(t *testing.T) {
	score := 62.5
	mock := NewMockClient()
	mock.Report = &gap.GapReport{
		AnalysisSummary: "ok",
		OverallGapScore: &score,
		SkillsMet:       []gap.SkillGapItem{},
		SkillsMissing:   []gap.SkillGapItem{},
		SkillsWeak:      []gap.SkillGapItem{},
	}
	repo := &recordingRepo{}
	client := WithLogging(mock, repo)

	_, err := client.Analyze(context.Background(), analyzeReq())
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 journaled event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success || !e.HasScore || e.GapScore != 62.5 {
		t.Errorf("journaled event wrong: %+v", e)
	}
	if e.ProfileID != "p1" || e.TargetRole != "Senior Architect" {
		t.Errorf("journaled identity wrong: %+v", e)
	}
}

func TestLoggingClientJournalsFailure(t *testing.T) {
	mock := NewMockClient()
	mock.AnalyzeErr = errors.New("boom")
	repo := &recordingRepo{}
	client := WithLogging(mock, repo)

	_, err := client.Analyze(context.Background(), analyzeReq())
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 journaled event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Success || e.ErrorMessage != "boom" || e.HasScore {
		t.Errorf("journaled failure wrong: %+v", e)
	}
}
