// Package shuttle bundles the puzzle notes the CLI solves by default.
package shuttle

import (
	_ "embed"
)

//go:embed input.txt
var bundledInput string

// BundledInput returns the notes shipped with the binary.
func BundledInput() string {
	return bundledInput
}
