package crm

import (
	"net/url"
	"strings"
)

// Citation is one grounding record returned by the generative service,
// indicating which search or maps result backs a claim. Title and URI are
// both optional on the wire.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

const mapsSearchBase = "https://www.google.com/maps/search/?api=1&query="

// ResolveLocator reconciles a lead's declared company name against the
// citation set and returns a usable locator URI.
//
// A citation matches when its title contains the lead name or the lead name
// contains the title, case-insensitively. The first match in citation order
// wins; upstream order is unspecified, so matching is best-effort.
// When nothing matches, or the matched citation carries no URI, a
// deterministic maps-search URL is built from the lead name plus its address
// (or the ICP geography when the address is absent). Never fails.
func ResolveLocator(leadName, address, geography string, citations []Citation) string {
	name := strings.ToLower(strings.TrimSpace(leadName))
	if name != "" {
		for _, c := range citations {
			title := strings.ToLower(strings.TrimSpace(c.Title))
			if title == "" {
				continue
			}
			if strings.Contains(title, name) || strings.Contains(name, title) {
				if c.URI != "" {
					return c.URI
				}
				break
			}
		}
	}
	return FallbackLocator(leadName, address, geography)
}

// FallbackLocator builds the generic maps-search URL used when no citation
// could be reconciled with the lead.
func FallbackLocator(leadName, address, geography string) string {
	place := address
	if strings.TrimSpace(place) == "" {
		place = geography
	}
	query := strings.TrimSpace(leadName + " " + place)
	return mapsSearchBase + url.QueryEscape(query)
}
