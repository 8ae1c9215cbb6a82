// Package suppliers derives distributor search links for parts. Links are
// computed from the MPN on demand; there is no price-feed integration, the
// URLs just open the distributor's search page.
package suppliers

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charlespers/boardroom/internal/modules/bom"
)

// Link is a single distributor search link for a part.
type Link struct {
	Supplier string `json:"supplier"`
	URL      string `json:"url"`
}

// searchTemplates map supplier names to search URL templates. %s receives the
// query-escaped search term.
var searchTemplates = []struct {
	name     string
	template string
}{
	{name: "Octopart", template: "https://octopart.com/search?q=%s"},
	{name: "Digi-Key", template: "https://www.digikey.com/en/products/result?keywords=%s"},
	{name: "Mouser", template: "https://www.mouser.com/c/?q=%s"},
	{name: "LCSC", template: "https://www.lcsc.com/search?q=%s"},
}

// LinksFor returns search links for a part. The MPN is the search term; when
// it is missing the manufacturer name is used instead, and a part with
// neither gets no links.
func LinksFor(part bom.PartRecord) []Link {
	term := strings.TrimSpace(part.MPN)
	if term == "" {
		term = strings.TrimSpace(part.Manufacturer)
	}
	if term == "" {
		return nil
	}

	escaped := url.QueryEscape(term)
	links := make([]Link, 0, len(searchTemplates))
	for _, st := range searchTemplates {
		links = append(links, Link{
			Supplier: st.name,
			URL:      fmt.Sprintf(st.template, escaped),
		})
	}
	return links
}

// LinksForMPN returns search links for a bare manufacturer part number, for
// lookups that are not tied to a board part.
func LinksForMPN(mpn string) []Link {
	return LinksFor(bom.PartRecord{MPN: mpn})
}
