package render

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Options selects the document variant DocumentAssembler produces.
type Options struct {
	Theme         string // "light" or "dark"
	CustomCSS     string // overrides the theme stylesheet when non-empty
	IncludeScript bool
	Annotations   bool
}

// metadataBoxCSS styles the top-level conversation metadata section and is
// appended regardless of variant.
const metadataBoxCSS = `
    .metadata {
        padding: 15px; margin-bottom: 0; border-radius: 8px;
        font-family: sans-serif;
    }
    .metadata h2 { font-size: 1.5em; margin-bottom: 15px; font-weight: bold; }
    .metadata p { margin: 8px 0; line-height: 1.4; display: block; }
    .metadata hr.metadata-divider {
        border: 0; height: 1px; margin: 15px 0; display: block; width: 100%;
    }
    .metadata em { font-style: italic; opacity: 0.85; }
    .metadata a { text-decoration: none; }
    .metadata a:hover { text-decoration: underline; }
`

// staticLayoutCSS flattens the grid into a plain block layout for the
// non-interactive variant.
const staticLayoutCSS = `
    .conversation-section { display: block !important; border: none !important; margin-top: 0 !important; }
    .grid-col-message { padding-left: 0 !important; padding-right: 0 !important; }
    .turn { margin-bottom: 15px !important; }
`

// annotationLayoutCSS lays the interactive variant out as a resizable
// three-column grid with an editable observations panel.
const annotationLayoutCSS = `
    .conversation-section {
        display: grid;
        grid-template-columns: 1fr 5px 400px;
        gap: 0 10px;
        border: 1px solid var(--border-color);
        border-radius: 8px;
        position: relative;
        overflow: visible;
        padding: 10px;
        margin-bottom: 0;
    }

    .chat-section {
        border-top: none;
        border-top-left-radius: 0;
        border-top-right-radius: 0;
    }

    .info-section {
        margin-bottom: 0;
    }

    .metadata-wrapper {
        display: flex;
        padding-left: 60px;
    }

    .editable-observations {
        height: 100%;
        width: 100%;
        border: 1px solid var(--border-color);
        border-radius: 8px;
        padding: 15px;
        background-color: var(--background-color);
        outline: none;
        min-height: 3.5em;
    }

    .editable-observations:empty:before {
        content: 'Click to add general observations...';
        color: var(--placeholder-color);
        font-style: italic;
    }

    .editable-observations:focus {
        border-color: var(--focus-border-color);
        box-shadow: 0 0 0 2px var(--focus-shadow-color);
    }

    .grid-col-message {
        padding-right: 15px;
    }

    .grid-col-annotation {
        padding-left: 15px;
    }

    .metadata, .general-annotation {
        margin-bottom: 0;
    }
`

const generalAnnotationHTML = `
        <div class="general-annotation">
            <div class="section-header">General Observations</div>
            <div class="editable-observations" id="general-observations" contenteditable="true"></div>
        </div>`

// NormalizeTheme lowers the theme name and corrects anything unrecognized to
// the documented default, with a diagnostic.
func NormalizeTheme(theme string, log *zap.SugaredLogger) string {
	t := strings.ToLower(theme)
	if t != "light" && t != "dark" {
		if log != nil {
			log.Warnw("invalid theme; using light", "theme", theme)
		}
		t = "light"
	}
	return t
}

// ThemeCSS returns the built-in stylesheet for a normalized theme name.
func ThemeCSS(theme string) string {
	if theme == "dark" {
		return darkCSS
	}
	return lightCSS
}

// Assemble composes the complete standalone document from the rendered
// metadata block and turn fragments. Identical inputs always produce
// byte-identical output.
func Assemble(metadataHTML, chatRowsHTML string, opts Options, log *zap.SugaredLogger) string {
	theme := NormalizeTheme(opts.Theme, log)

	css := opts.CustomCSS
	if css == "" {
		css = ThemeCSS(theme)
	}

	layoutCSS := staticLayoutCSS
	if opts.Annotations {
		layoutCSS = annotationLayoutCSS
	}
	combinedCSS := css + "\n" + metadataBoxCSS + "\n" + layoutCSS

	bodyClass := theme + "-theme"
	sectionClass := "conversation-block"
	resizerCol := ""
	annotationCol := ""
	dragHandle := ""
	script := ""
	if opts.Annotations {
		bodyClass += " annotation-active"
		sectionClass = "conversation-section"
		resizerCol = `<div class="grid-col-resizer"></div>`
		annotationCol = fmt.Sprintf(`<div class="grid-col-annotation">%s</div>`, generalAnnotationHTML)
		dragHandle = `<div id="dragHandle" class="resizer-handle"></div>`
		if opts.IncludeScript {
			script = "<script>" + annotationJS + "</script>"
		}
	}

	infoClass := sectionClass
	chatClass := sectionClass
	if opts.Annotations {
		infoClass += " info-section"
		chatClass += " chat-section"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Conversation Visualization</title>
    <style>
    %s
    </style>
</head>
<body class="%s">
    <div class="%s">
        <div class="grid-col-message">
            <div class="metadata-wrapper">
                %s
            </div>
        </div>

        %s

        %s
    </div>

    <div class="%s">
        %s
    </div>

    %s

    %s
</body>
</html>`, combinedCSS, bodyClass, infoClass, metadataHTML, resizerCol, annotationCol, chatClass, chatRowsHTML, dragHandle, script)
}
