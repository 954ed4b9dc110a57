// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnalysisEvent is the predicate function for analysisevent builders.
type AnalysisEvent func(*sql.Selector)
