// Package shopping lists the grocery stores the shopping list can be taken to.
package shopping

import "strings"

// FallbackURL is returned for stores without a known link
const FallbackURL = "#"

// Link is a named grocery store page
type Link struct {
	Store string `json:"store"`
	URL   string `json:"url"`
}

var links = []Link{
	{Store: "Whole Foods", URL: "https://www.amazon.com/alm/storefront?almBrandId=QW1hem9uIEZyZXNo"},
	{Store: "Safeway", URL: "https://www.safeway.com/"},
}

// Links returns the supported stores in display order
func Links() []Link {
	out := make([]Link, len(links))
	copy(out, links)
	return out
}

// LinkFor returns the URL for store, matched case-insensitively, or FallbackURL
func LinkFor(store string) string {
	for _, l := range links {
		if strings.EqualFold(l.Store, strings.TrimSpace(store)) {
			return l.URL
		}
	}
	return FallbackURL
}
