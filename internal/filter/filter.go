package filter

import (
	"errors"
	"fmt"

	"github.com/mlindner/chatlens/internal/dataset"
)

// Criteria maps column names to their filter specification. All criteria
// must hold for a row to survive (logical AND). Unknown column names are
// ignored.
type Criteria map[string]Criterion

// ErrRangeOnCategorical is returned when a range criterion targets a column
// whose stored values are not numeric. That combination has no defined
// meaning, so it is rejected instead of silently misapplied.
var ErrRangeOnCategorical = errors.New("range criterion on non-numeric column")

type columnKind int

const (
	colUnknown columnKind = iota
	colNumeric
	colCategorical
)

// kindOf resolves a column's type once per filter call from its first
// non-null stored value.
func kindOf(t *dataset.Table, col string) columnKind {
	for _, r := range t.Rows {
		v, ok := r[col]
		if !ok || dataset.IsNull(v) {
			continue
		}
		if _, isNum := dataset.Number(v); isNum {
			return colNumeric
		}
		return colCategorical
	}
	return colUnknown
}

// Apply returns the subset of rows satisfying every criterion. The input
// table is never modified.
func Apply(t *dataset.Table, criteria Criteria) (*dataset.Table, error) {
	out := &dataset.Table{Rows: t.Rows}

	for col, crit := range criteria {
		if crit.Kind() == KindAny {
			continue
		}

		kind := kindOf(out, col)
		if kind == colUnknown {
			// column absent (or entirely null): criterion is ignored
			continue
		}

		var kept []dataset.Row
		switch kind {
		case colNumeric:
			min, max, ok := crit.Bounds()
			if !ok {
				break // nothing can match; kept stays empty
			}
			for _, r := range out.Rows {
				if matchNumeric(r[col], min, max) {
					kept = append(kept, r)
				}
			}
		case colCategorical:
			if crit.Kind() == KindRange {
				return nil, fmt.Errorf("column %q: %w", col, ErrRangeOnCategorical)
			}
			for _, r := range out.Rows {
				if matchCategorical(r[col], crit) {
					kept = append(kept, r)
				}
			}
		}
		out = &dataset.Table{Rows: kept}
	}

	return out, nil
}

func matchNumeric(v any, min, max *float64) bool {
	if min == nil && max == nil {
		return true // fully open range constrains nothing, nulls included
	}
	f, ok := dataset.Number(v)
	if !ok {
		return false
	}
	if min != nil && max != nil && *min == *max {
		return f == *min
	}
	if min != nil && f < *min {
		return false
	}
	if max != nil && f > *max {
		return false
	}
	return true
}

func matchCategorical(v any, crit Criterion) bool {
	if dataset.IsNull(v) {
		return false
	}
	text := dataset.Text(v)
	if crit.Kind() == KindOneOf {
		for _, want := range crit.values {
			if text == dataset.Text(want) {
				return true
			}
		}
		return false
	}
	return text == dataset.Text(crit.value)
}
