package dataset

import (
	"strings"

	"github.com/google/uuid"
)

// ============================================================================
// COLUMN ROLE INFERRER — Heuristic Classification
// ============================================================================
// Classifies every column of a dataset into zero or more behavioral roles:
//
//   Numeric        — ≥80% of cells pass the Value Classifier
//   Categorical    — not Numeric, or low cardinality (<20% of rows distinct)
//   Sequential     — temporal name keyword, or cardinality in (3, rows/2]
//   GeographicKey  — region name keyword, or cardinality in [2, 100]
//
// Roles are non-exclusive: a numeric column with few distinct values is
// both Numeric and Categorical. Classification is a pure function of the
// dataset and is recomputed (or memoized per dataset identity) on demand —
// nothing is persisted.
// ============================================================================

// RoleSet is the non-exclusive role tagging of one column.
type RoleSet struct {
	Numeric       bool `json:"numeric"`
	Categorical   bool `json:"categorical"`
	Sequential    bool `json:"sequential"`
	GeographicKey bool `json:"geographicKey"`
}

// RoleMap holds the RoleSet for every column of a dataset.
type RoleMap map[string]RoleSet

// Column name fragments that force a role regardless of statistics.
var (
	sequentialKeywords = []string{"date", "time", "year", "month", "day"}
	geographicKeywords = []string{"state", "region", "country", "province", "location", "territory"}
)

// ClassifyColumns derives the RoleSet of every column over all rows.
// An empty dataset excludes every column from every role — the fraction
// and cardinality rules are never evaluated against zero rows.
func ClassifyColumns(ds *Dataset) RoleMap {
	roles := make(RoleMap, len(ds.Columns))
	total := ds.Len()

	for _, col := range ds.Columns {
		if total == 0 {
			roles[col] = RoleSet{}
			continue
		}
		roles[col] = classifyColumn(ds, col, total)
	}
	return roles
}

func classifyColumn(ds *Dataset, col string, total int) RoleSet {
	numericCount := 0
	distinct := make(map[string]bool)
	for _, r := range ds.Rows {
		v := r[col]
		if IsNumeric(v) {
			numericCount++
		}
		distinct[v] = true
	}

	card := len(distinct)
	name := strings.ToLower(col)

	var rs RoleSet
	rs.Numeric = float64(numericCount)/float64(total) >= 0.8
	rs.Categorical = !rs.Numeric || float64(card) < 0.2*float64(total)
	rs.Sequential = containsAny(name, sequentialKeywords) ||
		(card > 3 && float64(card) <= 0.5*float64(total))
	rs.GeographicKey = containsAny(name, geographicKeywords) ||
		(card >= 2 && card <= 100)
	return rs
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// ============================================================================
// MEMOIZATION
// ============================================================================

// Classifier memoizes ClassifyColumns per dataset identity. A new upload
// produces a new Dataset ID, so stale entries are never served; Invalidate
// exists for callers that drop datasets eagerly.
//
// Not safe for concurrent use — the engine runs classification on the
// goroutine that received the triggering input.
type Classifier struct {
	cache map[uuid.UUID]RoleMap
}

// NewClassifier returns an empty memoizing classifier.
func NewClassifier() *Classifier {
	return &Classifier{cache: make(map[uuid.UUID]RoleMap)}
}

// Classify returns the RoleMap for a dataset, computing it at most once
// per dataset identity.
func (c *Classifier) Classify(ds *Dataset) RoleMap {
	if roles, ok := c.cache[ds.ID]; ok {
		return roles
	}
	roles := ClassifyColumns(ds)
	c.cache[ds.ID] = roles
	return roles
}

// Invalidate drops the cached roles for one dataset.
func (c *Classifier) Invalidate(id uuid.UUID) {
	delete(c.cache, id)
}
