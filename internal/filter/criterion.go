package filter

import (
	"github.com/mlindner/chatlens/internal/dataset"
)

// Kind tags the shape of a criterion. The zero value means "no constraint".
type Kind int

const (
	KindAny Kind = iota
	KindExact
	KindOneOf
	KindRange
)

// Criterion is one per-column filter specification: an exact scalar, a
// categorical one-of list, or an inclusive numeric range where either side
// may be open.
type Criterion struct {
	kind   Kind
	value  any
	values []any
	min    *float64
	max    *float64
}

func (c Criterion) Kind() Kind { return c.kind }

// Any places no constraint on the column.
func Any() Criterion { return Criterion{} }

// Exact matches rows whose value equals v.
func Exact(v any) Criterion { return Criterion{kind: KindExact, value: v} }

// OneOf matches rows whose value is any of vs (set semantics).
func OneOf(vs ...any) Criterion { return Criterion{kind: KindOneOf, values: vs} }

// Between matches numeric values in [lo, hi]. A reversed range matches
// nothing; that is the caller's problem, not validated here.
func Between(lo, hi float64) Criterion {
	return Criterion{kind: KindRange, min: &lo, max: &hi}
}

// AtLeast matches numeric values >= lo, with no upper bound.
func AtLeast(lo float64) Criterion {
	return Criterion{kind: KindRange, min: &lo}
}

// AtMost matches numeric values <= hi, with no lower bound.
func AtMost(hi float64) Criterion {
	return Criterion{kind: KindRange, max: &hi}
}

// Bounds resolves the criterion to an inclusive (min, max) pair for numeric
// columns. A nil side is unbounded. An exact numeric scalar collapses to
// (v, v). ok is false when the criterion cannot be read numerically at all,
// in which case a numeric column has nothing to match.
func (c Criterion) Bounds() (min, max *float64, ok bool) {
	switch c.kind {
	case KindAny:
		return nil, nil, true
	case KindRange:
		return c.min, c.max, true
	case KindExact:
		if f, isNum := dataset.Number(c.value); isNum {
			return &f, &f, true
		}
	}
	// A list or non-numeric scalar against a numeric column degrades to an
	// exact match that no numeric value satisfies.
	return nil, nil, false
}
