package render

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var fenceRE = regexp.MustCompile("(?s)```(.*?)```")

var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// markdownHTML converts assistant prose to HTML. Fenced code blocks are
// lifted out behind placeholder tokens before conversion and spliced back
// afterwards, separately escaped, so markdown never reinterprets their
// content. The token is extended until it cannot collide with anything in
// the input.
func markdownHTML(raw string) (string, error) {
	token := "@@CODEBLOCK"
	for strings.Contains(raw, token) {
		token += "X"
	}

	var blocks []string
	withPlaceholders := fenceRE.ReplaceAllStringFunc(raw, func(m string) string {
		inner := m[len("```") : len(m)-len("```")]
		placeholder := fmt.Sprintf("%s_%d@@", token, len(blocks))
		blocks = append(blocks, inner)
		return placeholder
	})

	var buf bytes.Buffer
	if err := markdownConverter.Convert([]byte(withPlaceholders), &buf); err != nil {
		return "", err
	}
	out := buf.String()

	for i, code := range blocks {
		placeholder := fmt.Sprintf("%s_%d@@", token, i)
		pre := "<pre><code>" + html.EscapeString(strings.TrimSpace(code)) + "</code></pre>"

		// markdown wraps a lone placeholder in a paragraph
		if wrapped := "<p>" + placeholder + "</p>"; strings.Contains(out, wrapped) {
			out = strings.Replace(out, wrapped, pre, 1)
		} else {
			out = strings.Replace(out, placeholder, pre, 1)
		}
	}

	return out, nil
}

// plainHTML is the fallback content path: escape everything, then alternate
// between prose (newlines become line breaks) and literal code segments on
// the fence marker.
func plainHTML(raw string) string {
	escaped := html.EscapeString(raw)
	segments := strings.Split(escaped, "```")

	var b strings.Builder
	for i, seg := range segments {
		if i%2 == 1 {
			b.WriteString("<pre><code>")
			b.WriteString(strings.TrimSpace(seg))
			b.WriteString("</code></pre>")
		} else {
			b.WriteString(strings.ReplaceAll(seg, "\n", "<br />"))
		}
	}
	return b.String()
}
