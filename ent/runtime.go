// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/priyamvada/skillscope/ent/analysisevent"
	"github.com/priyamvada/skillscope/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescGapScore is the schema descriptor for gap_score field.
	analysiseventDescGapScore := analysiseventFields[2].Descriptor()
	// analysisevent.DefaultGapScore holds the default value on creation for the gap_score field.
	analysisevent.DefaultGapScore = analysiseventDescGapScore.Default.(float64)
	// analysiseventDescHasScore is the schema descriptor for has_score field.
	analysiseventDescHasScore := analysiseventFields[3].Descriptor()
	// analysisevent.DefaultHasScore holds the default value on creation for the has_score field.
	analysisevent.DefaultHasScore = analysiseventDescHasScore.Default.(bool)
	// analysiseventDescLatencyMs is the schema descriptor for latency_ms field.
	analysiseventDescLatencyMs := analysiseventFields[4].Descriptor()
	// analysisevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	analysisevent.DefaultLatencyMs = analysiseventDescLatencyMs.Default.(int64)
	// analysiseventDescErrorMessage is the schema descriptor for error_message field.
	analysiseventDescErrorMessage := analysiseventFields[6].Descriptor()
	// analysisevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	analysisevent.DefaultErrorMessage = analysiseventDescErrorMessage.Default.(string)
}
