package filter

import (
	"testing"

	"github.com/mlindner/chatlens/internal/dataset"
	"github.com/stretchr/testify/require"
)

func sampleTable() *dataset.Table {
	return &dataset.Table{Rows: []dataset.Row{
		{"conv_id": "c1", "source": "wc", "turns": 4, "code_turns": 0},
		{"conv_id": "c2", "source": "sg", "turns": 8, "code_turns": 2},
		{"conv_id": "c3", "source": "wc", "turns": 2, "code_turns": 0},
		{"conv_id": "c4", "source": "other", "turns": 12, "code_turns": 1},
	}}
}

func ids(t *dataset.Table) []string {
	var out []string
	for _, r := range t.Rows {
		out = append(out, r["conv_id"].(string))
	}
	return out
}

func TestApplyEmptyCriteria(t *testing.T) {
	tbl := sampleTable()
	got, err := Apply(tbl, Criteria{})
	require.NoError(t, err)
	require.Equal(t, ids(tbl), ids(got))
}

func TestApplyNumericExact(t *testing.T) {
	got, err := Apply(sampleTable(), Criteria{"code_turns": Exact(0)})
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c3"}, ids(got))
}

func TestApplyNumericRange(t *testing.T) {
	tests := []struct {
		name string
		crit Criterion
		want []string
	}{
		{"bounded", Between(4, 8), []string{"c1", "c2"}},
		{"lower only", AtLeast(8), []string{"c2", "c4"}},
		{"upper only", AtMost(4), []string{"c1", "c3"}},
		{"reversed matches nothing", Between(10, 2), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(sampleTable(), Criteria{"turns": tt.crit})
			require.NoError(t, err)
			require.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApplyCategorical(t *testing.T) {
	got, err := Apply(sampleTable(), Criteria{"source": Exact("wc")})
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c3"}, ids(got))

	got, err = Apply(sampleTable(), Criteria{"source": OneOf("wc", "sg")})
	require.NoError(t, err)
	require.Equal(t, []string{"c1", "c2", "c3"}, ids(got))
}

func TestApplyConjunction(t *testing.T) {
	got, err := Apply(sampleTable(), Criteria{
		"source":     Exact("wc"),
		"code_turns": Exact(0),
		"turns":      AtLeast(4),
	})
	require.NoError(t, err)
	require.Equal(t, []string{"c1"}, ids(got))
}

func TestApplyIdempotent(t *testing.T) {
	criteria := Criteria{"source": OneOf("wc", "sg"), "turns": Between(2, 8)}
	once, err := Apply(sampleTable(), criteria)
	require.NoError(t, err)
	twice, err := Apply(once, criteria)
	require.NoError(t, err)
	require.Equal(t, ids(once), ids(twice))
}

func TestApplyUnknownColumnIgnored(t *testing.T) {
	tbl := sampleTable()
	got, err := Apply(tbl, Criteria{"no_such_column": Exact("x")})
	require.NoError(t, err)
	require.Equal(t, ids(tbl), ids(got))
}

func TestApplyRangeOnCategorical(t *testing.T) {
	_, err := Apply(sampleTable(), Criteria{"source": Between(1, 2)})
	require.ErrorIs(t, err, ErrRangeOnCategorical)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tbl := sampleTable()
	_, err := Apply(tbl, Criteria{"source": Exact("wc")})
	require.NoError(t, err)
	require.Len(t, tbl.Rows, 4)
}
