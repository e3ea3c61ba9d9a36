package filter

import (
	"math/rand"
	"regexp"

	"github.com/mlindner/chatlens/internal/dataset"
	"go.uber.org/zap"
)

// SearchColumns names the turn-level columns the text search depends on.
type SearchColumns struct {
	ConvID     string
	Message    string
	TurnNumber string
}

// SearchOptions controls the text-search entry point.
type SearchOptions struct {
	CaseSensitive bool
	Regex         bool // false: text is matched literally
	All           bool
	Rand          *rand.Rand
}

// Match is the single-pick search result: one conversation and the ordered
// positions of its matching turns.
type Match struct {
	ConvID   string
	TurnNums []int
}

// SearchText narrows a flat turn table by a text pattern against the message
// column, then applies any remaining criteria with the same engine as
// Subset. With opts.All it returns every matching conversation id; otherwise
// it returns one random conversation plus its matching turn positions.
// Missing required columns yield empty results with a diagnostic, not an
// error; only an unusable pattern is reported as one.
func SearchText(t *dataset.Table, text string, cols SearchColumns, criteria Criteria, opts SearchOptions, log *zap.SugaredLogger) ([]string, *Match, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	for _, required := range []string{cols.ConvID, cols.Message, cols.TurnNumber} {
		if !t.HasColumn(required) {
			log.Warnw("required column missing from turn table", "column", required)
			return nil, nil, nil
		}
	}

	pattern := text
	if !opts.Regex {
		pattern = regexp.QuoteMeta(text)
	}
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, nil, err
	}

	var hits []dataset.Row
	for _, r := range t.Rows {
		v, ok := r[cols.Message]
		if !ok || dataset.IsNull(v) {
			continue
		}
		if re.MatchString(dataset.Text(v)) {
			hits = append(hits, r)
		}
	}
	hitTable := &dataset.Table{Rows: hits}

	// Drop criteria naming unknown columns, with a warning: unlike Subset,
	// a typo here is almost certainly a mistake worth flagging.
	applicable := make(Criteria, len(criteria))
	for col, crit := range criteria {
		if !t.HasColumn(col) {
			log.Warnw("column not found; filter ignored", "column", col)
			continue
		}
		applicable[col] = crit
	}

	filtered, err := Apply(hitTable, applicable)
	if err != nil {
		return nil, nil, err
	}
	if filtered.Len() == 0 {
		return nil, nil, nil
	}

	ids := uniqueIDs(filtered, cols.ConvID)
	if len(ids) == 0 {
		return nil, nil, nil
	}

	log.Infow("text search matched", "messages", filtered.Len(), "conversations", len(ids))

	if opts.All {
		return ids, nil, nil
	}

	chosen := ids[pick(opts.Rand, len(ids))]
	match := &Match{ConvID: chosen}
	for _, r := range filtered.Rows {
		if dataset.Text(r[cols.ConvID]) != chosen {
			continue
		}
		if n, ok := dataset.Number(r[cols.TurnNumber]); ok {
			match.TurnNums = append(match.TurnNums, int(n))
		}
	}
	return nil, match, nil
}
