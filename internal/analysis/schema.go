package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// reportSchema constrains the shape of an Analyze response before it is
// decoded. The service is the categorization authority, so the client
// only enforces structure: the three category lists must be present and
// the score, when given, must sit in [0, 100].
var reportSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"analysis_summary": map[string]any{"type": "string"},
		"overall_gap_score": map[string]any{
			"type":    "number",
			"minimum": 0,
			"maximum": 100,
		},
		"skills_met":     gapItemList,
		"skills_missing": gapItemList,
		"skills_weak":    gapItemList,
		"upskilling_path": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []any{"skills_met", "skills_missing", "skills_weak"},
}

var gapItemList = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"skill_name": map[string]any{"type": "string"},
			"status": map[string]any{
				"type": "string",
				"enum": []any{"met", "missing", "weak"},
			},
			"gap_severity": map[string]any{
				"type": "string",
				"enum": []any{"low", "medium", "high"},
			},
			"recommendation": map[string]any{"type": "string"},
		},
		"required": []any{"skill_name", "status"},
	},
}

// ErrInvalidReport indicates the service returned a payload that does
// not conform to the gap report schema.
type ErrInvalidReport struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidReport) Error() string {
	return fmt.Sprintf("invalid gap report: %v", e.Err)
}

func (e *ErrInvalidReport) Unwrap() error { return e.Err }

// ReportValidator validates Analyze responses against the compiled
// report schema.
type ReportValidator struct {
	compiled *jsonschema.Schema
}

// NewReportValidator compiles the report schema once.
func NewReportValidator() (*ReportValidator, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(reportSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://gap-report.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	return &ReportValidator{compiled: compiled}, nil
}

// Validate checks raw against the report schema.
func (v *ReportValidator) Validate(raw json.RawMessage) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return &ErrInvalidReport{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	if err := v.compiled.Validate(parsed); err != nil {
		return &ErrInvalidReport{Content: raw, Err: err}
	}
	return nil
}
