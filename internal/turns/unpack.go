package turns

import (
	"fmt"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/dataset"
	"go.uber.org/zap"
)

// Unpack explodes the nested turns column into a flat turn-level table: one
// row per turn carrying the conversation id, a 1-based turn number, and
// every field stored on the turn. Conversations whose turn data cannot be
// decoded are skipped with a diagnostic so a single bad record never sinks
// the batch.
func Unpack(t *dataset.Table, cols config.Columns, log *zap.SugaredLogger) (*dataset.Table, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	if !t.HasColumn(cols.Conv.Conversation) {
		return nil, fmt.Errorf("table has no %q column", cols.Conv.Conversation)
	}

	out := &dataset.Table{}
	for _, row := range t.Rows {
		convID := ""
		if v, ok := row[cols.Conv.ConvID]; ok && !dataset.IsNull(v) {
			convID = dataset.Text(v)
		}

		records, err := Decode(row[cols.Conv.Conversation], cols.Turn)
		if err != nil {
			log.Warnw("skipping conversation with undecodable turns", "conv_id", convID, "error", err)
			continue
		}

		for i, rec := range records {
			flat := make(dataset.Row, len(rec.Raw)+2)
			for k, v := range rec.Raw {
				flat[k] = v
			}
			flat[cols.Turn.ConvID] = convID
			flat[cols.Turn.TurnNumber] = i + 1
			out.Rows = append(out.Rows, flat)
		}
	}

	return out, nil
}
