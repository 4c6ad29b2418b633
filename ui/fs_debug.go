//go:build debug

package ui

import (
	"io/fs"
	"os"
)

// DistFS returns a live filesystem rooted at ui/ (debug: reads from disk).
// Wrap in os.DirFS so edits to the dist files are visible without
// recompiling Go.
func DistFS() fs.FS {
	return os.DirFS("ui")
}
