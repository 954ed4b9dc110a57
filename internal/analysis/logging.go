package analysis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/priyamvada/skillscope/internal/gap"
	"github.com/priyamvada/skillscope/internal/store"
)

// LoggingClient is a decorator that journals every Analyze call to the
// local event store. All other operations pass through untouched.
type LoggingClient struct {
	Client
	eventRepo store.EventRepo
}

// WithLogging wraps a Client with analysis event journaling.
func WithLogging(c Client, repo store.EventRepo) Client {
	return &LoggingClient{Client: c, eventRepo: repo}
}

func (l *LoggingClient) Analyze(ctx context.Context, req gap.AnalysisRequest) (*gap.GapReport, error) {
	start := time.Now()

	report, err := l.Client.Analyze(ctx, req)

	data := store.AnalysisEventData{
		ProfileID:  req.UserProfileID,
		TargetRole: req.TargetRole.RoleName,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if report != nil && report.OverallGapScore != nil {
		data.GapScore = *report.OverallGapScore
		data.HasScore = true
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Journal the event but never fail the request over it.
	if logErr := l.eventRepo.AppendAnalysis(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to journal analysis event: %v\n", logErr)
	}

	return report, err
}
