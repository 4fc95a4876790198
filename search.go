package asrockind

import (
	"context"
	"strings"
	"unicode/utf8"
)

// MinQueryLength is the minimum length of a search query, in characters,
// after trimming.
const MinQueryLength = 2

// ValidateQuery trims the query and returns it, or an EINVALID error if the
// trimmed query is shorter than MinQueryLength. Validation happens before
// any network activity.
func ValidateQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", Errorf(EINVALID, "Missing required argument: query")
	}
	if utf8.RuneCountInString(query) < MinQueryLength {
		return "", Errorf(EINVALID, "Search query must be at least %d characters long", MinQueryLength)
	}
	return query, nil
}

// Searcher finds catalog products matching a query.
// Implementations form an ordered fallback chain: each one returns the
// products it could extract and reserves errors for failures worth
// reporting; "nothing found" is an empty slice, not an error.
type Searcher interface {
	// Search returns the products matching query, capped by configuration.
	// The context controls timeout and cancellation.
	Search(ctx context.Context, query string) ([]Product, error)

	// Name identifies the strategy in logs.
	Name() string
}
