package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/mlindner/chatlens/internal/turns"
	"go.uber.org/zap"
)

// TurnHTML renders one turn as a self-contained markup fragment: avatar and
// 1-based position, a metadata sub-row (timestamp/duration for user turns,
// indicator badges on the right), and the formatted message. With annotate
// set, the fragment also carries the resizer and annotation columns for the
// interactive grid.
func TurnHTML(rec turns.Record, number int, av Avatars, timing Timing, annotate bool, log *zap.SugaredLogger) string {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	metadataLeft := ""
	if rec.Role == "user" && timing.Display != nil {
		stamp := timing.Display.Format("15:04:05")
		duration := ""
		if timing.ShowDuration && timing.DurationStart != nil {
			if d := FormatDuration(*timing.DurationStart, *timing.Display, true); d != "" {
				duration = " (" + d + ")"
			}
		}
		metadataLeft = html.EscapeString(stamp + duration)
	}

	var indicators []string
	if rec.Role == "assistant" && rec.HasCodeBlock() {
		indicators = append(indicators, `<span class="indicator indicator-code">Code Block</span>`)
	}
	if rec.Toxic {
		indicators = append(indicators, `<span class="indicator indicator-toxic">Toxic</span>`)
	}
	if rec.Redacted {
		indicators = append(indicators, `<span class="indicator indicator-pii">PII</span>`)
	}
	metadataRight := strings.Join(indicators, " | ")

	metadataRow := fmt.Sprintf(`
    <div class="turn-metadata-row">
        <div class="metadata-left">%s</div>
        <div class="metadata-right">%s</div>
    </div>`, metadataLeft, metadataRight)

	var content string
	if rec.Role == "assistant" {
		formatted, err := markdownHTML(rec.Content)
		if err != nil {
			log.Warnw("markdown rendering failed; using plain formatting", "turn", number, "error", err)
			content = plainHTML(rec.Content)
		} else {
			content = formatted
		}
	} else {
		content = plainHTML(rec.Content)
	}

	turnContent := fmt.Sprintf(`
        <div class="turn %s">
            <div class="turn-prefix">
                 <div class="turn-number">%d</div>
                 <div class="avatar"><img src="%s" alt="%s avatar"></div>
            </div>
            <div class="turn-main-content">
                 %s
                 <div class="message-bubble"><div class="message">%s</div></div>
            </div>
        </div>`, html.EscapeString(rec.Role), number, av.For(rec.Role), html.EscapeString(rec.Role), metadataRow, content)

	if !annotate {
		return fmt.Sprintf(`<div class="grid-col-message">%s</div>`, turnContent)
	}

	return fmt.Sprintf(`
            <div class="grid-col-message">%s</div>
            <div class="grid-col-resizer"></div>
            <div class="grid-col-annotation">
                <div class="annotation-container">
                    <button class="add-annotation-btn" title="Add annotation">+</button>
                </div>
            </div>`, turnContent)
}
