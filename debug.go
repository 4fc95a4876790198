package asrockind

// DebugWriter persists raw page markup for offline inspection of scraping
// failures. Implementations must treat write failures as non-fatal; callers
// log the returned error and move on.
type DebugWriter interface {
	// SavePage writes the markup under the given file name.
	SavePage(name string, html string) error
}
