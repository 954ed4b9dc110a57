// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnalysisEventsColumns holds the columns for the "analysis_events" table.
	AnalysisEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "target_role", Type: field.TypeString},
		{Name: "gap_score", Type: field.TypeFloat64, Default: 0},
		{Name: "has_score", Type: field.TypeBool, Default: false},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
	}
	// AnalysisEventsTable holds the schema information for the "analysis_events" table.
	AnalysisEventsTable = &schema.Table{
		Name:       "analysis_events",
		Columns:    AnalysisEventsColumns,
		PrimaryKey: []*schema.Column{AnalysisEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "analysisevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[1]},
			},
			{
				Name:    "analysisevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[2]},
			},
			{
				Name:    "analysisevent_profile_id",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[3]},
			},
			{
				Name:    "analysisevent_success",
				Unique:  false,
				Columns: []*schema.Column{AnalysisEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnalysisEventsTable,
	}
)

func init() {
}
