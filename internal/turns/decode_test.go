package turns

import (
	"testing"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/stretchr/testify/require"
)

var turnCols = config.DefaultColumns().Turn

func TestDecodeNativeSequence(t *testing.T) {
	v := []map[string]any{
		{"role": "user", "content": "hi"},
		{"role": "assistant", "content": "hello", "timestamp": "2024-01-01T00:00:01Z"},
	}
	records, err := Decode(v, turnCols)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "user", records[0].Role)
	require.Equal(t, "hi", records[0].Content)
	require.Equal(t, "assistant", records[1].Role)
	require.Equal(t, "2024-01-01T00:00:01Z", records[1].Timestamp)
}

func TestDecodeGenericSequence(t *testing.T) {
	v := []any{
		map[string]any{"role": "user", "content": "first"},
		map[string]any{"role": "assistant", "content": "second"},
	}
	records, err := Decode(v, turnCols)
	require.NoError(t, err)
	require.Equal(t, []string{"first", "second"}, []string{records[0].Content, records[1].Content})
}

func TestDecodeJSONString(t *testing.T) {
	v := `[{"role": "user", "content": "hi", "toxic": true}]`
	records, err := Decode(v, turnCols)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.True(t, records[0].Toxic)
}

func TestDecodePythonLiteralString(t *testing.T) {
	v := `[{'role': 'user', 'content': "it's fine", 'redacted': True}, {'role': 'assistant', 'content': 'ok', 'toxic': False}]`
	records, err := Decode(v, turnCols)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "it's fine", records[0].Content)
	require.True(t, records[0].Redacted)
	require.False(t, records[1].Toxic)
}

func TestDecodeMalformedString(t *testing.T) {
	_, err := Decode("not a sequence at all", turnCols)
	require.Error(t, err)
}

func TestDecodeNull(t *testing.T) {
	_, err := Decode(nil, turnCols)
	require.Error(t, err)
}

func TestDecodeNonMappingElement(t *testing.T) {
	_, err := Decode([]any{map[string]any{"role": "user"}, "stray string"}, turnCols)
	require.Error(t, err)
}

func TestDecodeUnsupportedTypeFallsBackToStringForm(t *testing.T) {
	// fmt.Sprint of a non-sequence type cannot parse as JSON
	_, err := Decode(42, turnCols)
	require.Error(t, err)
}

func TestPyLiteralToJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single quotes", `{'a': 'b'}`, `{"a": "b"}`},
		{"constants", `[True, False, None]`, `[true, false, null]`},
		{"escaped quote", `{'a': 'it\'s'}`, `{"a": "it's"}`},
		{"inner double quote", `{'a': 'say "hi"'}`, `{"a": "say \"hi\""}`},
		{"words in strings survive", `{'a': 'True story'}`, `{"a": "True story"}`},
		{"newline escaped", "{'a': 'x\ny'}", `{"a": "x\ny"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, pyLiteralToJSON(tt.input))
		})
	}
}

func TestHasCodeBlock(t *testing.T) {
	require.True(t, Record{Content: "see ```go\ncode```"}.HasCodeBlock())
	require.False(t, Record{Content: "no fences here"}.HasCodeBlock())
}
