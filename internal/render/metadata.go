package render

import (
	"fmt"
	"html"
	"math"
	"strings"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/dataset"
)

const (
	sharegptURL = "https://huggingface.co/datasets/anon8231489123/ShareGPT_Vicuna_unfiltered"
	wildchatURL = "https://huggingface.co/datasets/allenai/WildChat-1M"
)

// MetadataHTML renders the conversation-level header block. Fields appear in
// a fixed order and only when actually present in the row; a field whose
// value cannot be classified counts as present rather than silently dropped.
func MetadataHTML(convID string, row dataset.Row, cols config.ConvColumns) string {
	parts := []string{`<div class="metadata">`}
	parts = append(parts, "<h2>"+html.EscapeString(convID)+"</h2>")
	parts = append(parts, `<hr class="metadata-divider">`)

	if v, ok := field(row, cols.Source); ok {
		switch dataset.Text(v) {
		case "sg":
			parts = append(parts, fmt.Sprintf(`<p><strong>Source:</strong> <a href="%s" target="_blank">ShareGPT</a></p>`, sharegptURL))
		case "wc":
			parts = append(parts, fmt.Sprintf(`<p><strong>Source:</strong> <a href="%s" target="_blank">Wildchat-1M</a></p>`, wildchatURL))
		default:
			parts = append(parts, "<p><strong>Source:</strong> "+html.EscapeString(dataset.Text(v))+"</p>")
		}
	}

	if v, ok := field(row, cols.Model); ok {
		parts = append(parts, "<p><strong>Model:</strong> "+html.EscapeString(dataset.Text(v))+"</p>")
	}

	parts = append(parts, `<hr class="metadata-divider">`)

	if v, ok := field(row, cols.UserID); ok {
		userText := html.EscapeString(dataset.Text(v))
		if freq, ok := field(row, cols.UserFreq); ok {
			unit := "conversations"
			if n, isNum := dataset.Number(freq); isNum && n == 1 {
				unit = "conversation"
			}
			userText += fmt.Sprintf(" (%s %s)", html.EscapeString(dataset.Text(freq)), unit)
		}
		parts = append(parts, "<p><strong>User:</strong> "+userText+"</p>")
	}

	if v, ok := field(row, cols.Country); ok {
		parts = append(parts, "<p><strong>Country:</strong> "+html.EscapeString(dataset.Text(v))+"</p>")
	}

	if v, ok := field(row, cols.State); ok {
		parts = append(parts, "<p><strong>State:</strong> "+html.EscapeString(dataset.Text(v))+"</p>")
	}

	parts = append(parts, `<hr class="metadata-divider">`)

	turnsVal, turnsPresent := field(row, cols.Turns)
	if turnsPresent {
		turnsText := html.EscapeString(dataset.Text(turnsVal))
		var extra []string
		if v, ok := field(row, cols.NCode); ok {
			extra = append(extra, "code: "+dataset.Text(v))
		}
		if v, ok := field(row, cols.NToxic); ok {
			extra = append(extra, "toxic: "+dataset.Text(v))
		}
		if v, ok := field(row, cols.NRedacted); ok {
			extra = append(extra, "redacted: "+dataset.Text(v))
		}
		if len(extra) > 0 {
			turnsText += " (" + strings.Join(extra, ", ") + ")"
		}
		parts = append(parts, "<p><strong>Turns:</strong> "+turnsText+"</p>")
	}

	startVal, startPresent := field(row, cols.Start)
	if startPresent {
		parts = append(parts, "<p><strong>Start:</strong> "+stampOrRaw(startVal)+"</p>")
	}

	endVal, endPresent := field(row, cols.End)
	if endPresent {
		parts = append(parts, "<p><strong>End:</strong> "+stampOrRaw(endVal)+"</p>")
	}

	if startPresent && endPresent {
		start := ParseTimestamp(dataset.Text(startVal), nil)
		end := ParseTimestamp(dataset.Text(endVal), nil)
		if start != nil && end != nil {
			if d := FormatDuration(*start, *end, false); d != "" {
				parts = append(parts, "<p><strong>Duration:</strong> "+d+"</p>")
			}
		}
	}

	if v, ok := field(row, cols.NWords); ok {
		wordsText := html.EscapeString(dataset.Text(v))
		if avg := wordAverages(row, cols, turnsVal, turnsPresent); avg != "" {
			wordsText += avg
		}
		parts = append(parts, "<p><strong>n words:</strong> "+wordsText+"</p>")
	}

	if v, ok := field(row, cols.Language); ok {
		parts = append(parts, "<p><strong>Language:</strong> "+html.EscapeString(dataset.Text(v))+"</p>")
	}

	parts = append(parts, "</div>")
	return strings.Join(parts, "\n")
}

func field(row dataset.Row, name string) (any, bool) {
	v, ok := row[name]
	if !ok || dataset.IsNull(v) {
		return nil, false
	}
	return v, true
}

func stampOrRaw(v any) string {
	raw := dataset.Text(v)
	if t := ParseTimestamp(raw, nil); t != nil {
		return t.Format("02.01.2006, 15:04:05")
	}
	return html.EscapeString(raw)
}

// wordAverages renders per-turn word averages for user and assistant. A turn
// is half an exchange, hence the 0.5 factor. Any conversion failure, or a
// zero turn count, drops the parenthetical entirely.
func wordAverages(row dataset.Row, cols config.ConvColumns, turnsVal any, turnsPresent bool) string {
	if !turnsPresent {
		return ""
	}
	userWords, userOK := field(row, cols.NWordsUser)
	gptWords, gptOK := field(row, cols.NWordsGPT)
	if !userOK || !gptOK {
		return ""
	}

	turnCount, ok := dataset.Number(turnsVal)
	if !ok || turnCount <= 0 {
		return ""
	}
	userN, ok := dataset.Number(userWords)
	if !ok {
		return ""
	}
	gptN, ok := dataset.Number(gptWords)
	if !ok {
		return ""
	}

	userAvg := int(math.Round(userN / (turnCount * 0.5)))
	gptAvg := int(math.Round(gptN / (turnCount * 0.5)))
	return fmt.Sprintf(" (<em>user avg</em>: %d, <em>gpt avg</em>: %d)", userAvg, gptAvg)
}
