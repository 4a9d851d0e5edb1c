// Package content embeds the markdown case studies.
package content

import "embed"

// Projects holds one markdown case study per project and language, laid
// out as projects/{lang}/{slug}.md.
//
//go:embed projects
var Projects embed.FS
