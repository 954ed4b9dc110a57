package store

import (
	"context"
	"fmt"

	"github.com/priyamvada/skillscope/ent"
	"github.com/priyamvada/skillscope/ent/analysisevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence
// counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnalysis(ctx context.Context, data AnalysisEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AnalysisEvent.Create().
		SetSequence(seqNum).
		SetProfileID(data.ProfileID).
		SetTargetRole(data.TargetRole).
		SetGapScore(data.GapScore).
		SetHasScore(data.HasScore).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save analysis event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryAnalyses(ctx context.Context, opts QueryOpts) ([]AnalysisEventRecord, error) {
	q := r.client.AnalysisEvent.Query().
		Order(ent.Desc(analysisevent.FieldSequence))

	if opts.ProfileID != "" {
		q = q.Where(analysisevent.ProfileID(opts.ProfileID))
	}
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query analysis events: %w", err)
	}

	records := make([]AnalysisEventRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, AnalysisEventRecord{
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			AnalysisEventData: AnalysisEventData{
				ProfileID:    row.ProfileID,
				TargetRole:   row.TargetRole,
				GapScore:     row.GapScore,
				HasScore:     row.HasScore,
				LatencyMs:    row.LatencyMs,
				Success:      row.Success,
				ErrorMessage: row.ErrorMessage,
			},
		})
	}
	return records, nil
}
