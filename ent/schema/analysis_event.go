package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnalysisEvent records every gap analysis request issued against the
// service, for local usage statistics. Full reports are never stored
// here; live views keep their own copies.
type AnalysisEvent struct {
	ent.Schema
}

func (AnalysisEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnalysisEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").
			Comment("Server-assigned id of the analyzed profile"),
		field.String("target_role").
			Comment("Role name the profile was analyzed against"),
		field.Float("gap_score").
			Default(0).
			Comment("Overall gap score of the result, 0 when unavailable"),
		field.Bool("has_score").
			Default(false).
			Comment("Whether the result carried a gap score"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the request"),
		field.Bool("success").
			Comment("Whether the request succeeded"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
	}
}

func (AnalysisEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("success"),
	}
}
