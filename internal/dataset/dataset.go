package dataset

import (
	"encoding/json"
	"fmt"
	"math"
)

// Row is one record of a loaded table. Values keep whatever shape the loader
// produced; filtering and rendering coerce on demand.
type Row map[string]any

// Table is an in-memory table of conversation (or turn) rows. The toolkit
// never mutates a table it was given; every transform builds a new one.
type Table struct {
	Rows []Row
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Lookup returns the first row whose idCol value renders to id.
func (t *Table) Lookup(idCol, id string) (Row, bool) {
	for _, r := range t.Rows {
		v, ok := r[idCol]
		if !ok || IsNull(v) {
			continue
		}
		if Text(v) == id {
			return r, true
		}
	}
	return nil, false
}

// HasColumn reports whether any row carries the column.
func (t *Table) HasColumn(name string) bool {
	for _, r := range t.Rows {
		if _, ok := r[name]; ok {
			return true
		}
	}
	return false
}

// IsNull reports whether a stored value counts as absent: nil or a NaN float.
func IsNull(v any) bool {
	if v == nil {
		return true
	}
	if f, ok := v.(float64); ok {
		return math.IsNaN(f)
	}
	return false
}

// Number coerces a stored value to float64. JSON loading yields float64,
// sqlite yields int64, literal parsing may yield int.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) {
			return 0, false
		}
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

// Text renders a stored value for comparison and display. Strings stay
// as-is; integral floats drop the ".0" that JSON decoding introduces.
func Text(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		if s == math.Trunc(s) && !math.IsInf(s, 0) && !math.IsNaN(s) {
			return fmt.Sprintf("%d", int64(s))
		}
	}
	return fmt.Sprint(v)
}

// Flag interprets a stored value as a boolean indicator.
func Flag(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true" || b == "True" || b == "1"
	}
	if f, ok := Number(v); ok {
		return f != 0
	}
	return false
}
