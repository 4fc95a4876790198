// Package fs provides file-based storage for debug page dumps.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/asrockind"
)

// Ensure DebugWriter implements asrockind.DebugWriter at compile time.
var _ asrockind.DebugWriter = (*DebugWriter)(nil)

// DebugWriter writes raw page markup to files in a directory so failed
// extractions can be inspected offline.
type DebugWriter struct {
	dir string
}

// NewDebugWriter creates a DebugWriter rooted at dir. The directory is
// created on first write.
func NewDebugWriter(dir string) *DebugWriter {
	return &DebugWriter{dir: dir}
}

// SavePage writes the markup to <dir>/<name>, creating the directory as
// needed.
func (w *DebugWriter) SavePage(name string, html string) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(w.dir, name), []byte(html), 0644)
}
