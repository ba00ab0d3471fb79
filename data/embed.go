// Package data provides embedded map definitions and utilities for loading them.
package data

import "embed"

// dataFS embeds all JSON files from the data directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing map data.
func FS() embed.FS {
	return dataFS
}
