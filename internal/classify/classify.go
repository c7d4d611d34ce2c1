// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps free-text themes to relevant problem domains.
package classify

import (
	"strings"

	"github.com/pdiddy/idea-engine/internal/catalog"
)

// keywordMapping associates a theme keyword with the domains it implies.
// Matching is substring-based on the lowercased theme.
type keywordMapping struct {
	keyword string
	domains []string
}

var themeMappings = []keywordMapping{
	{"health", []string{"healthcare"}},
	{"education", []string{"education"}},
	{"learn", []string{"education"}},
	{"environment", []string{"environment"}},
	{"green", []string{"environment"}},
	{"climate", []string{"environment"}},
	{"finance", []string{"finance"}},
	{"money", []string{"finance"}},
	{"productivity", []string{"productivity"}},
	{"work", []string{"productivity"}},
	{"social", []string{"education", "productivity"}},
	{"ai", []string{"healthcare", "education", "finance", "productivity"}},
	{"mobile", []string{"healthcare", "education", "productivity"}},
	{"blockchain", []string{"finance"}},
}

// Classifier maps themes to domain ids against a catalog.
type Classifier struct {
	cat *catalog.Catalog
}

// New returns a classifier backed by cat.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{cat: cat}
}

// Classify returns the domain ids relevant to theme. It lowercases the
// theme, unions the domains of every keyword that appears as a substring,
// and falls back to the full catalog when nothing matches (or the theme
// is empty). The result is never empty and is ordered by catalog order so
// downstream seeded selection stays deterministic.
func (c *Classifier) Classify(theme string) []string {
	all := c.cat.DomainIDs()
	if theme == "" {
		return all
	}

	lower := strings.ToLower(theme)
	matched := make(map[string]bool)
	for _, m := range themeMappings {
		if strings.Contains(lower, m.keyword) {
			for _, d := range m.domains {
				matched[d] = true
			}
		}
	}

	if len(matched) == 0 {
		return all
	}

	var ids []string
	for _, id := range all {
		if matched[id] {
			ids = append(ids, id)
		}
	}
	return ids
}
