// Package static embeds the stylesheet and the reveal script.
package static

import "embed"

//go:embed site.css reveal.js
var Files embed.FS
