package asrockind

import "strings"

// Product represents a single catalog product with its extracted
// specifications.
type Product struct {
	Name           string            `json:"name"`
	URL            string            `json:"url"`
	Specifications map[string]string `json:"specifications"`
}

// SearchResult holds the products found for a query. TotalResults always
// equals the number of products; no separate total-count signal from the
// site is trusted.
type SearchResult struct {
	Products     []Product `json:"products"`
	TotalResults int       `json:"total_results"`
}

// NewSearchResult builds a SearchResult from a product slice, maintaining
// the TotalResults invariant. A nil slice is normalized to an empty one so
// the JSON envelope always contains an array.
func NewSearchResult(products []Product) SearchResult {
	if products == nil {
		products = []Product{}
	}
	return SearchResult{Products: products, TotalResults: len(products)}
}

// SpecKey composes a specification key from an optional category heading and
// a field name. With a category the key is "<category> - <field>", without
// one it is just "<field>".
func SpecKey(category, field string) string {
	if category == "" {
		return field
	}
	return category + " - " + field
}

// NameFromURL derives a product display name from the last path segment of
// its URL. Used when a product card carries no title element.
func NameFromURL(url string) string {
	url = strings.TrimSuffix(url, "/")
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}
