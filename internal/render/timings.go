package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mlindner/chatlens/internal/turns"
	"go.uber.org/zap"
)

// Timing carries the per-turn timestamp resolution for display: which
// assistant reply timestamp to show next to a user turn, and where a
// response duration starts.
type Timing struct {
	Display       *time.Time // nearest following assistant timestamp
	DurationStart *time.Time // nearest preceding assistant timestamp
	ShowDuration  bool
}

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"15:04:05",
}

// ParseTimestamp tries the recognized layouts in order; first success wins.
// A string matching none of them counts as absent, with a diagnostic.
func ParseTimestamp(s string, log *zap.SugaredLogger) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	if log != nil {
		log.Warnw("unparseable timestamp", "value", s)
	}
	return nil
}

// ResolveTimings computes, for every user turn, the assistant timestamp to
// display (the next reply) and the duration start (the previous reply).
// Duration is only shown from the second user turn on, and only when a
// display timestamp was found.
func ResolveTimings(records []turns.Record, log *zap.SugaredLogger) []Timing {
	assistantTimes := make(map[int]*time.Time)
	for i, rec := range records {
		if rec.Role != "assistant" || rec.Timestamp == "" {
			continue
		}
		if t := ParseTimestamp(rec.Timestamp, log); t != nil {
			assistantTimes[i] = t
		}
	}

	firstUser := -1
	for i, rec := range records {
		if rec.Role == "user" {
			firstUser = i
			break
		}
	}

	timings := make([]Timing, len(records))
	for i, rec := range records {
		if rec.Role != "user" {
			continue
		}

		var display *time.Time
		for k := i + 1; k < len(records); k++ {
			if t, ok := assistantTimes[k]; ok {
				display = t
				break
			}
		}
		timings[i].Display = display

		if i > firstUser && display != nil {
			for k := i - 1; k >= 0; k-- {
				if t, ok := assistantTimes[k]; ok {
					timings[i].DurationStart = t
					timings[i].ShowDuration = true
					break
				}
			}
		}
	}
	return timings
}

// FormatDuration renders end-start as a d/h/m/s breakdown. Days and hours
// appear only when themselves or a larger unit are non-zero; seconds always
// appear. A non-positive duration renders empty.
func FormatDuration(start, end time.Time, padded bool) string {
	if !end.After(start) {
		return ""
	}

	total := int(end.Sub(start).Seconds())
	days := total / 86400
	hours := total % 86400 / 3600
	minutes := total % 3600 / 60
	seconds := total % 60

	num := "%d"
	if padded {
		num = "%02d"
	}

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf(num+"d", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf(num+"h", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf(num+"m", minutes))
	}
	parts = append(parts, fmt.Sprintf(num+"s", seconds))

	return strings.Join(parts, ", ")
}
