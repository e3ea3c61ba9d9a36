package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mlindner/chatlens/internal/config"
	"github.com/mlindner/chatlens/internal/dataset"
	"github.com/mlindner/chatlens/internal/turns"
	"go.uber.org/zap"
)

// ErrNoContent marks a conversation that cannot be rendered: the row is
// missing or its turn data failed to decode. Batch callers log it and move
// on; it never aborts the other conversations.
var ErrNoContent = errors.New("no renderable content")

// Document is the rendered artifact in both variants. The static variant
// has no annotation layout and no script; the interactive variant carries
// the annotation grid, the observations panel, and the embedded script.
type Document struct {
	Static      string
	Interactive string
}

type ConversationOptions struct {
	Theme              string
	CustomCSS          string
	UserAvatarSVG      string
	AssistantAvatarSVG string
}

// Conversation runs the per-conversation pipeline: row lookup, turn decode,
// timestamp resolution, per-turn markup, metadata block, and document
// assembly for both variants.
func Conversation(t *dataset.Table, convID string, cols config.Columns, opts ConversationOptions, log *zap.SugaredLogger) (*Document, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	row, ok := t.Lookup(cols.Conv.ConvID, convID)
	if !ok {
		return nil, fmt.Errorf("conversation %q not found: %w", convID, ErrNoContent)
	}

	records, err := turns.Decode(row[cols.Conv.Conversation], cols.Turn)
	if err != nil {
		log.Warnw("turn decode failed", "conv_id", convID, "error", err)
		return nil, fmt.Errorf("conversation %q: %v: %w", convID, err, ErrNoContent)
	}

	timings := ResolveTimings(records, log)
	avatars := NewAvatars(opts.UserAvatarSVG, opts.AssistantAvatarSVG)
	metadata := MetadataHTML(convID, row, cols.Conv)

	var staticRows, interactiveRows []string
	for i, rec := range records {
		staticRows = append(staticRows, TurnHTML(rec, i+1, avatars, timings[i], false, log))
		interactiveRows = append(interactiveRows, TurnHTML(rec, i+1, avatars, timings[i], true, log))
	}

	theme := NormalizeTheme(opts.Theme, log)

	return &Document{
		Static: Assemble(metadata, strings.Join(staticRows, "\n"), Options{
			Theme:     theme,
			CustomCSS: opts.CustomCSS,
		}, log),
		Interactive: Assemble(metadata, strings.Join(interactiveRows, "\n"), Options{
			Theme:         theme,
			CustomCSS:     opts.CustomCSS,
			IncludeScript: true,
			Annotations:   true,
		}, log),
	}, nil
}
