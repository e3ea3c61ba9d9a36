package render

import _ "embed"

//go:embed assets/visualize_light.css
var lightCSS string

//go:embed assets/visualize_dark.css
var darkCSS string

//go:embed assets/visualize.js
var annotationJS string
