// Package goquery provides CSS-selector based extraction from catalog pages.
// It parses search-results pages into product links and product-detail pages
// into specification maps. Two specification extractors exist on purpose:
// Specifications mirrors the stricter browser-path selectors, while
// LooseSpecifications is the more permissive variant used by the HTTP
// fallback path.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/asrockind"
)

// ProductLink is a product discovered on a search-results page.
type ProductLink struct {
	Name string
	URL  string
}

// SearchPage holds what product discovery needs from a rendered
// search-results page.
type SearchPage struct {
	// NoResults reports whether the page carries the explicit
	// "no results" marker.
	NoResults bool

	// Links are the discovered products, truncated to the caller's cap.
	Links []ProductLink
}

// ParseSearchPage extracts product links from search-results markup.
// Product URLs are resolved against baseURL. Display names come from the
// nested title element with whitespace collapsed; a product card without
// one falls back to the last path segment of its resolved URL. A max of
// zero or less yields no links.
func ParseSearchPage(html, baseURL string, max int) (*SearchPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, asrockind.Errorf(asrockind.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &SearchPage{}

	if doc.Find("div.no-result").Length() > 0 {
		page.NoResults = true
		return page, nil
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, asrockind.Errorf(asrockind.EINVALID, "invalid base URL: %v", err)
	}

	doc.Find("a.whole-link.d-block").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(page.Links) >= max {
			return false
		}

		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return true
		}
		resolved := resolveURL(base, href)

		name := collapseWhitespace(sel.Find("div.product-title").Text())
		if name == "" {
			name = asrockind.NameFromURL(resolved)
		}

		page.Links = append(page.Links, ProductLink{Name: name, URL: resolved})
		return true
	})

	return page, nil
}

// resolveURL resolves a relative href against the base URL.
// Unparseable hrefs are returned as-is.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// collapseWhitespace trims the string and collapses internal runs of
// whitespace to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
