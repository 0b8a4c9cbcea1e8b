// Package embedded bundles a small sample games file into the binary so the
// CLI can be tried without a data file.
package embedded

import (
	"embed"
	"io"
)

// SamplePath is the path of the sample games file inside FS.
const SamplePath = "sample/games.csv"

// FS embeds the sample games data at build time.
//
//go:embed sample/*
var FS embed.FS

// OpenSample opens the embedded sample games file.
func OpenSample() (io.ReadCloser, error) {
	return FS.Open(SamplePath)
}
