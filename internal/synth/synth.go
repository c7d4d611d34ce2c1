// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synth derives candidate project ideas by seeded deterministic
// selection across domain, technology, and innovation axes.
package synth

import (
	"hash/fnv"
	"math/rand"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// maxTechnologies caps the technology tags carried by one idea.
const maxTechnologies = 3

// Synthesizer derives Idea records from catalog data.
type Synthesizer struct {
	cat *catalog.Catalog
}

// New returns a synthesizer backed by cat.
func New(cat *catalog.Catalog) *Synthesizer {
	return &Synthesizer{cat: cat}
}

// seed derives the generator seed for one synthesis call. Identical
// (theme, index) pairs always seed identically; FNV-1a keeps the theme
// hash stable across processes.
func seed(theme string, index int) int64 {
	h := fnv.New64a()
	h.Write([]byte(theme))
	return int64(index) + int64(h.Sum64())
}

// Synthesize derives the idea at the given batch index. domainIDs is the
// classifier's output; when it is empty the full catalog is used. The
// call owns its own generator, so concurrent synthesis never shares
// state, and the selection order below is fixed: each pick consumes
// generator state, so reordering the picks changes every generated idea.
func (s *Synthesizer) Synthesize(theme string, domainIDs []string, constraints []string, index int) types.Idea {
	rng := rand.New(rand.NewSource(seed(theme, index)))

	ids := domainIDs
	if len(ids) == 0 {
		ids = s.cat.DomainIDs()
	}
	domainID := pick(rng, ids)
	dom := s.cat.Domain(domainID)

	problem := pick(rng, dom.Problems)
	audience := pick(rng, dom.Audiences)

	tech := s.cat.TechCategory(pick(rng, s.cat.TechCategoryIDs()))
	technologies := firstN(tech.Technologies, maxTechnologies)

	innovation := pick(rng, s.cat.InnovationPatterns())
	templateKind := pick(rng, s.cat.TemplateKinds())

	title := s.title(rng, problem, innovation)
	description := s.description(rng, problem, audience, tech, innovation, theme)

	return types.Idea{
		Title:               title,
		Description:         description,
		Domain:              domainID,
		TargetAudience:      audience,
		Problem:             problem,
		TechnologyCategory:  tech.ID,
		Technologies:        technologies,
		InnovationPattern:   innovation,
		TemplateKind:        templateKind,
		Features:            s.features(problem, tech, innovation),
		MVPTimeline:         s.timeline(technologies),
		PotentialImpact:     s.impact(domainID, audience),
		TechnicalChallenges: s.challenges(technologies, constraints),
		MarketPotential:     s.market(domainID),
		DemoSuggestions:     s.demos(problem),
	}
}

// pick returns a uniformly selected element of list.
func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

// firstN returns at most n leading elements of list as a copy.
func firstN(list []string, n int) []string {
	if len(list) > n {
		list = list[:n]
	}
	return append([]string(nil), list...)
}
