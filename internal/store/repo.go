package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	ProfileID string // filter by profile id when non-empty
}

// AnalysisEventData captures one gap analysis request for journaling.
type AnalysisEventData struct {
	ProfileID    string
	TargetRole   string
	GapScore     float64
	HasScore     bool
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AnalysisEventRecord is a journaled analysis event read back for stats.
type AnalysisEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	AnalysisEventData
}

// EventRepo provides append and read access to the local journal.
type EventRepo interface {
	// AppendAnalysis records one analysis request outcome.
	AppendAnalysis(ctx context.Context, data AnalysisEventData) error

	// QueryAnalyses returns journaled events, newest first.
	QueryAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisEventRecord, error)
}
