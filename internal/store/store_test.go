package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestAppendAndQueryAnalyses(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	events := []AnalysisEventData{
		{ProfileID: "p1", TargetRole: "Senior Architect", GapScore: 62.5, HasScore: true, LatencyMs: 1200, Success: true},
		{ProfileID: "p2", TargetRole: "Data Engineer", Success: false, ErrorMessage: "profile not found"},
		{ProfileID: "p1", TargetRole: "Staff Engineer", GapScore: 40, HasScore: true, LatencyMs: 900, Success: true},
	}
	for _, e := range events {
		if err := repo.AppendAnalysis(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.QueryAnalyses(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}

	// Newest first.
	if all[0].TargetRole != "Staff Engineer" {
		t.Errorf("expected newest event first, got %q", all[0].TargetRole)
	}
	for i := 1; i < len(all); i++ {
		if all[i].Sequence >= all[i-1].Sequence {
			t.Errorf("sequence not strictly decreasing at %d", i)
		}
	}
}

func TestQueryAnalysesByProfile(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	repo.AppendAnalysis(ctx, AnalysisEventData{ProfileID: "p1", TargetRole: "A", Success: true})
	repo.AppendAnalysis(ctx, AnalysisEventData{ProfileID: "p2", TargetRole: "B", Success: true})

	got, err := repo.QueryAnalyses(ctx, QueryOpts{ProfileID: "p2"})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 1 || got[0].TargetRole != "B" {
		t.Errorf("profile filter returned wrong rows: %+v", got)
	}
}

func TestQueryAnalysesLimit(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		repo.AppendAnalysis(ctx, AnalysisEventData{ProfileID: "p", TargetRole: "R", Success: true})
	}

	got, err := repo.QueryAnalyses(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 rows, got %d", len(got))
	}
}
