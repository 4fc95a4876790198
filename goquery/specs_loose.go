package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/asrockind"
)

// maxDescriptionLen caps the description fallback, in runes.
const maxDescriptionLen = 500

// LooseSpecifications extracts specifications with the permissive selectors
// used by the HTTP fallback path: any table classed or partially classed as
// "spec" counts, the category is taken from the nearest preceding h3,
// falling back to h2 and then h4, and when no table yields anything a
// truncated description block is extracted instead.
func LooseSpecifications(html string) (map[string]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, asrockind.Errorf(asrockind.EINVALID, "failed to parse HTML: %v", err)
	}

	specs := make(map[string]string)

	// Walk headings and tables in document order, remembering the most
	// recent heading at each level. An h3 anywhere above the table wins
	// over a closer h2 or h4, matching the level-by-level lookback.
	var lastH2, lastH3, lastH4 string
	doc.Find("h2, h3, h4, table.table-spec, table[class*='spec']").Each(func(_ int, sel *goquery.Selection) {
		switch {
		case sel.Is("h2"):
			lastH2 = strings.TrimSpace(sel.Text())
			return
		case sel.Is("h3"):
			lastH3 = strings.TrimSpace(sel.Text())
			return
		case sel.Is("h4"):
			lastH4 = strings.TrimSpace(sel.Text())
			return
		}

		category := lastH3
		if category == "" {
			category = lastH2
		}
		if category == "" {
			category = lastH4
		}
		extractRows(sel, category, specs)
	})

	if len(specs) == 0 {
		if desc := description(doc); desc != "" {
			specs["Description"] = desc
		}
	}

	return specs, nil
}

// description extracts a truncated product description as a last resort
// when no specification table is present.
func description(doc *goquery.Document) string {
	var desc string
	doc.Find(".product-desc, .overview, .description").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := collapseWhitespace(sel.Text())
		if len(text) > 10 {
			desc = truncate(text, maxDescriptionLen)
			return false
		}
		return true
	})
	return desc
}

// truncate cuts s at max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
