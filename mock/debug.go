package mock

import "github.com/fwojciec/asrockind"

var _ asrockind.DebugWriter = (*DebugWriter)(nil)

// DebugWriter is a mock implementation of asrockind.DebugWriter.
type DebugWriter struct {
	SavePageFn func(name string, html string) error
}

func (w *DebugWriter) SavePage(name string, html string) error {
	if w.SavePageFn == nil {
		return nil
	}
	return w.SavePageFn(name, html)
}
