// Package classifier maps raw provider metadata to the closed source
// enumeration and the topical tag set. Both mappings are data tables so new
// outlets and tags can be added without touching logic.
package classifier

import (
	"strings"

	"portfolio-pulse/internal/domain"
)

// sourceTable is scanned in order; the first entry with a matching substring
// wins, everything else falls through to "other".
var sourceTable = []struct {
	substrings []string
	source     domain.Source
}{
	{[]string{"linkedin"}, domain.SourceLinkedIn},
	{[]string{"twitter", "x.com"}, domain.SourceTwitter},
	{[]string{"blog", "medium"}, domain.SourceBlog},
	{[]string{"techcrunch", "reuters", "bloomberg", "cnn", "forbes", "wall street"}, domain.SourceNews},
}

// Source classifies a provider source name.
func (c *Classifier) Source(sourceName string) domain.Source {
	name := strings.ToLower(sourceName)
	for _, entry := range sourceTable {
		for _, sub := range entry.substrings {
			if strings.Contains(name, sub) {
				return entry.source
			}
		}
	}
	return domain.SourceOther
}
