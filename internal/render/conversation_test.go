package render

import (
	"testing"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/dataset"
	"github.com/stretchr/testify/require"
)

func conversationTable() *dataset.Table {
	return &dataset.Table{Rows: []dataset.Row{
		{
			"conv_id": "c1",
			"conversation": []any{
				map[string]any{"role": "user", "content": "show me hello world"},
				map[string]any{"role": "assistant", "content": "```print(1)```", "timestamp": "2024-03-01 10:00:05"},
			},
		},
		{
			"conv_id":      "broken",
			"conversation": "][ not decodable",
		},
	}}
}

func TestConversationEndToEnd(t *testing.T) {
	doc, err := Conversation(conversationTable(), "c1", config.DefaultColumns(), ConversationOptions{Theme: "light"}, nil)
	require.NoError(t, err)

	for _, out := range []string{doc.Static, doc.Interactive} {
		require.Contains(t, out, "<h2>c1</h2>")
		require.Contains(t, out, "show me hello world")
		require.Contains(t, out, "<pre><code>print(1)</code></pre>")
		require.Contains(t, out, "Code Block")
		require.Contains(t, out, "10:00:05")
		// row carries no source or model columns
		require.NotContains(t, out, "Source:")
		require.NotContains(t, out, "Model:")
	}

	require.NotContains(t, doc.Static, "annotation-active")
	require.NotContains(t, doc.Static, "<script>")
	require.Contains(t, doc.Interactive, "annotation-active")
	require.Contains(t, doc.Interactive, "<script>")
	require.Contains(t, doc.Interactive, "add-annotation-btn")
}

func TestConversationUnknownID(t *testing.T) {
	_, err := Conversation(conversationTable(), "missing", config.DefaultColumns(), ConversationOptions{}, nil)
	require.ErrorIs(t, err, ErrNoContent)
}

func TestConversationUndecodableTurns(t *testing.T) {
	_, err := Conversation(conversationTable(), "broken", config.DefaultColumns(), ConversationOptions{}, nil)
	require.ErrorIs(t, err, ErrNoContent)
}

func TestConversationCustomAvatars(t *testing.T) {
	opts := ConversationOptions{
		Theme:         "dark",
		UserAvatarSVG: `<svg xmlns="http://www.w3.org/2000/svg"><rect/></svg>`,
	}
	doc, err := Conversation(conversationTable(), "c1", config.DefaultColumns(), opts, nil)
	require.NoError(t, err)

	custom := NewAvatars(opts.UserAvatarSVG, "")
	require.Contains(t, doc.Static, custom.User)
}
