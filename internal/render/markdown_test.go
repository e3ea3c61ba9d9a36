package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkdownHTMLProse(t *testing.T) {
	out, err := markdownHTML("Some **bold** text")
	require.NoError(t, err)
	require.Contains(t, out, "<strong>bold</strong>")
}

func TestMarkdownHTMLCodeFenceSurvivesVerbatim(t *testing.T) {
	out, err := markdownHTML("Look:\n```\nif x < 3 {\n\treturn *y\n}\n```\ndone")
	require.NoError(t, err)
	require.Contains(t, out, "<pre><code>if x &lt; 3 {\n\treturn *y\n}</code></pre>")
	// the fence content must not leak into markdown output unescaped
	require.NotContains(t, out, "<em>")
}

func TestMarkdownHTMLLoneFenceUnwrapsParagraph(t *testing.T) {
	out, err := markdownHTML("```print(1)```")
	require.NoError(t, err)
	require.Contains(t, out, "<pre><code>print(1)</code></pre>")
	require.NotContains(t, out, "<p><pre>")
}

func TestMarkdownHTMLPlaceholderCollision(t *testing.T) {
	raw := "mentions @@CODEBLOCK_0@@ literally and ```code``` too"
	out, err := markdownHTML(raw)
	require.NoError(t, err)
	require.Contains(t, out, "@@CODEBLOCK_0@@")
	require.Contains(t, out, "<pre><code>code</code></pre>")
}

func TestMarkdownHTMLMultipleFencesInOrder(t *testing.T) {
	out, err := markdownHTML("```one``` middle ```two```")
	require.NoError(t, err)
	first := strings.Index(out, "<pre><code>one</code></pre>")
	second := strings.Index(out, "<pre><code>two</code></pre>")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestMarkdownHTMLTables(t *testing.T) {
	out, err := markdownHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	require.NoError(t, err)
	require.Contains(t, out, "<table>")
}

func TestPlainHTML(t *testing.T) {
	out := plainHTML("line one\nline <two>")
	require.Equal(t, "line one<br />line &lt;two&gt;", out)
}

func TestPlainHTMLCodeFences(t *testing.T) {
	out := plainHTML("before\n```\nx = 1\n```\nafter")
	require.Contains(t, out, "<pre><code>x = 1</code></pre>")
	require.Contains(t, out, "before<br />")
	require.Contains(t, out, "<br />after")
}
