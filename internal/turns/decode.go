package turns

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/dataset"
)

// Decode normalizes one stored "turns" value into an ordered list of
// records. Datasets deliver the nested column in several shapes depending on
// how they were exported, so decoding is an ordered chain of typed parsers;
// the first one that succeeds wins:
//
//  1. a native sequence of mappings
//  2. a generic sequence, converted element by element
//  3. a string: strict JSON first, then a permissive Python-literal pass
//  4. anything else, through its string form and the JSON parser
//
// Every element of the resulting sequence must be a mapping; one bad element
// fails the whole decode. Callers treat a failure as "skip this
// conversation", never as a reason to abort a batch.
func Decode(v any, cols config.TurnColumns) ([]Record, error) {
	if dataset.IsNull(v) {
		return nil, errors.New("turn data is null")
	}

	seq, err := toSequence(v)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(seq))
	for i, el := range seq {
		m, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("turn %d is not a mapping (got %T)", i+1, el)
		}
		records = append(records, FromMap(m, cols))
	}
	return records, nil
}

func toSequence(v any) ([]any, error) {
	switch data := v.(type) {
	case []Record:
		out := make([]any, len(data))
		for i, r := range data {
			out[i] = r.Raw
		}
		return out, nil
	case []map[string]any:
		out := make([]any, len(data))
		for i, m := range data {
			out[i] = m
		}
		return out, nil
	case []any:
		return data, nil
	case string:
		return parseEncoded(data, true)
	}
	// last resort: round-trip through the value's string form
	return parseEncoded(fmt.Sprint(v), false)
}

// parseEncoded decodes a string-encoded turn sequence. The permissive pass
// handles Python repr output (single quotes, True/False/None), which is how
// nested columns commonly survive a CSV export.
func parseEncoded(s string, permissive bool) ([]any, error) {
	var seq []any
	if err := json.Unmarshal([]byte(s), &seq); err == nil {
		return seq, nil
	}

	if !permissive {
		return nil, fmt.Errorf("turn data is not a JSON sequence")
	}

	if err := json.Unmarshal([]byte(pyLiteralToJSON(s)), &seq); err != nil {
		return nil, fmt.Errorf("turn data is neither JSON nor a literal sequence: %w", err)
	}
	return seq, nil
}
