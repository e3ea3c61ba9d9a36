package filter

import (
	"math/rand"

	"github.com/mlindner/chatlens/internal/dataset"
	"go.uber.org/zap"
)

// SubsetOptions controls the conversation-subset entry point. Rand is used
// for the single-pick mode; callers who need reproducible picks inject a
// seeded source. A nil Rand falls back to the shared global source.
type SubsetOptions struct {
	All  bool
	Rand *rand.Rand
}

// Subset returns the conversation id(s) matching the criteria: every unique
// matching id when opts.All is set, otherwise one id chosen uniformly from
// the matches. No match (or a missing id column) yields nil, not an error.
func Subset(t *dataset.Table, idCol string, criteria Criteria, opts SubsetOptions, log *zap.SugaredLogger) ([]string, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if !t.HasColumn(idCol) {
		log.Warnw("id column not found in table", "column", idCol)
		return nil, nil
	}

	filtered, err := Apply(t, criteria)
	if err != nil {
		return nil, err
	}
	if filtered.Len() == 0 {
		return nil, nil
	}

	log.Infow("conversations match filters", "count", filtered.Len())

	ids := uniqueIDs(filtered, idCol)
	if len(ids) == 0 {
		return nil, nil
	}

	if opts.All {
		return ids, nil
	}
	return []string{ids[pick(opts.Rand, len(ids))]}, nil
}

// uniqueIDs collects column values in row order, first occurrence wins.
func uniqueIDs(t *dataset.Table, idCol string) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, r := range t.Rows {
		v, ok := r[idCol]
		if !ok || dataset.IsNull(v) {
			continue
		}
		id := dataset.Text(v)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func pick(r *rand.Rand, n int) int {
	if r == nil {
		return rand.Intn(n)
	}
	return r.Intn(n)
}
