// Package gamedata provides the embedded unit and skill definitions the
// factories build units from.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
