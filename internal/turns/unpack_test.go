package turns

import (
	"testing"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/dataset"
	"github.com/stretchr/testify/require"
)

func TestUnpack(t *testing.T) {
	cols := config.DefaultColumns()
	tbl := &dataset.Table{Rows: []dataset.Row{
		{
			"conv_id": "c1",
			"conversation": []any{
				map[string]any{"role": "user", "content": "hi"},
				map[string]any{"role": "assistant", "content": "hello"},
			},
		},
		{
			"conv_id":      "bad",
			"conversation": "{{{not parseable",
		},
		{
			"conv_id":      "c2",
			"conversation": `[{"role": "user", "content": "question"}]`,
		},
	}}

	flat, err := Unpack(tbl, cols, nil)
	require.NoError(t, err)
	require.Len(t, flat.Rows, 3) // bad conversation skipped

	require.Equal(t, "c1", flat.Rows[0]["conv_id"])
	require.Equal(t, 1, flat.Rows[0]["turn_num"])
	require.Equal(t, 2, flat.Rows[1]["turn_num"])
	require.Equal(t, "hello", flat.Rows[1]["content"])
	require.Equal(t, "c2", flat.Rows[2]["conv_id"])
	require.Equal(t, 1, flat.Rows[2]["turn_num"])
}

func TestUnpackMissingConversationColumn(t *testing.T) {
	tbl := &dataset.Table{Rows: []dataset.Row{{"conv_id": "c1"}}}
	_, err := Unpack(tbl, config.DefaultColumns(), nil)
	require.Error(t, err)
}
