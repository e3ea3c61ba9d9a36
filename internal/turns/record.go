package turns

import (
	"strings"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/dataset"
)

// Record is one message within a conversation. Only "user" and "assistant"
// roles carry meaning downstream; anything else renders with fallback
// styling. Raw keeps every stored field for unpacking.
type Record struct {
	Role      string
	Content   string
	Toxic     bool
	Redacted  bool
	Timestamp string
	Raw       map[string]any
}

// HasCodeBlock reports whether the message contains a fenced code marker.
func (r Record) HasCodeBlock() bool {
	return strings.Contains(r.Content, "```")
}

// FromMap builds a Record from a decoded turn mapping using the resolved
// turn column names.
func FromMap(m map[string]any, cols config.TurnColumns) Record {
	rec := Record{Raw: m}

	if v, ok := m[cols.Role]; ok && !dataset.IsNull(v) {
		rec.Role = dataset.Text(v)
	}
	if v, ok := m[cols.Message]; ok && !dataset.IsNull(v) {
		rec.Content = dataset.Text(v)
	}
	if v, ok := m[cols.Toxic]; ok {
		rec.Toxic = dataset.Flag(v)
	}
	if v, ok := m[cols.Redacted]; ok {
		rec.Redacted = dataset.Flag(v)
	}
	if v, ok := m[cols.Timestamp]; ok && !dataset.IsNull(v) {
		rec.Timestamp = dataset.Text(v)
	}

	return rec
}
