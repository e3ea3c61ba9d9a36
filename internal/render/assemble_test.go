package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssembleStatic(t *testing.T) {
	out := Assemble("<div>meta</div>", "<div>rows</div>", Options{Theme: "light"}, nil)

	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, `<body class="light-theme">`)
	require.Contains(t, out, "<div>meta</div>")
	require.Contains(t, out, "<div>rows</div>")
	require.Contains(t, out, "conversation-block")
	require.NotContains(t, out, "annotation-active")
	require.NotContains(t, out, "<script>")
	require.NotContains(t, out, "General Observations")
}

func TestAssembleInteractive(t *testing.T) {
	out := Assemble("<div>meta</div>", "<div>rows</div>", Options{
		Theme:         "dark",
		IncludeScript: true,
		Annotations:   true,
	}, nil)

	require.Contains(t, out, `<body class="dark-theme annotation-active">`)
	require.Contains(t, out, "conversation-section")
	require.Contains(t, out, "General Observations")
	require.Contains(t, out, `id="general-observations"`)
	require.Contains(t, out, `id="dragHandle"`)
	require.Contains(t, out, "<script>")
}

func TestAssembleAnnotationsWithoutScript(t *testing.T) {
	out := Assemble("m", "r", Options{Theme: "light", Annotations: true}, nil)
	require.Contains(t, out, "General Observations")
	require.NotContains(t, out, "<script>")
}

func TestAssembleCustomCSSReplacesTheme(t *testing.T) {
	custom := "body { background: hotpink; }"
	out := Assemble("m", "r", Options{Theme: "dark", CustomCSS: custom}, nil)
	require.Contains(t, out, custom)
	require.NotContains(t, out, darkCSS)
	// layout CSS still applies on top of the custom sheet
	require.Contains(t, out, ".conversation-section { display: block !important;")
}

func TestAssembleThemeFallback(t *testing.T) {
	out := Assemble("m", "r", Options{Theme: "sepia"}, nil)
	require.Contains(t, out, `<body class="light-theme">`)
}

func TestAssembleDeterministic(t *testing.T) {
	opts := Options{Theme: "dark", IncludeScript: true, Annotations: true}
	first := Assemble("meta", "rows", opts, nil)
	second := Assemble("meta", "rows", opts, nil)
	require.Equal(t, first, second)
}

func TestNormalizeTheme(t *testing.T) {
	require.Equal(t, "dark", NormalizeTheme("Dark", nil))
	require.Equal(t, "light", NormalizeTheme("LIGHT", nil))
	require.Equal(t, "light", NormalizeTheme("", nil))
	require.Equal(t, "light", NormalizeTheme("neon", nil))
}

func TestThemeCSS(t *testing.T) {
	require.Equal(t, lightCSS, ThemeCSS("light"))
	require.Equal(t, darkCSS, ThemeCSS("dark"))
	require.NotEqual(t, lightCSS, darkCSS)
}
