package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/asrockind"
)

// Specifications extracts the specification tables from product-detail
// markup using the browser-path selectors: only tables classed table-spec
// are considered and the category comes from the nearest preceding
// h3.title-sub heading. Keys follow asrockind.SpecKey composition.
func Specifications(html string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, asrockind.Errorf(asrockind.EINVALID, "failed to parse HTML: %v", err)
	}

	specs := make(map[string]string)

	// Walk headings and tables in document order so each table picks up
	// the nearest heading above it.
	category := ""
	doc.Find("h3.title-sub, table.table-spec").Each(func(_ int, sel *goquery.Selection) {
		if sel.Is("h3.title-sub") {
			category = strings.TrimSpace(sel.Text())
			return
		}
		extractRows(sel, category, specs)
	})

	return specs, nil
}

// extractRows pulls key/value pairs out of a specification table's rows.
// Only rows with at least two cells count; header rows whose first cell
// reads "specification" or "feature" are skipped.
func extractRows(table *goquery.Selection, category string, specs map[string]string) {
	table.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		key := strings.TrimSpace(cells.Eq(0).Text())
		value := strings.TrimSpace(cells.Eq(1).Text())
		if key == "" || value == "" {
			return
		}
		switch strings.ToLower(key) {
		case "specification", "feature":
			return
		}
		specs[asrockind.SpecKey(category, key)] = value
	})
}
