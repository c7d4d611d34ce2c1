// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the compiled-in reference data the idea engine
// draws from: problem domains, technology combinations, innovation
// patterns, idea templates, and the derivation tables for features,
// timelines, impact, market outlook, challenges, and demos.
//
// The catalog is immutable and shared. Accessors that look up derived
// data are total: a key with no entry yields a documented default rather
// than an error, so synthesis can never fail on catalog data.
package catalog

import "github.com/pdiddy/idea-engine/pkg/types"

// Domain is a problem-space category with its problems and audiences.
type Domain struct {
	// ID is the domain identifier (e.g. "healthcare").
	ID string

	// Problems lists the domain's problem statements, in catalog order.
	Problems []string

	// Audiences lists who the domain serves.
	Audiences []string

	// Constraints tags domain-specific delivery constraints.
	Constraints []string
}

// TechCategory is a coherent technology combination and its applications.
type TechCategory struct {
	// ID is the category identifier (e.g. "ai_powered").
	ID string

	// Technologies lists the category's technology tags, in catalog order.
	Technologies []string

	// Applications lists typical application areas for the category.
	Applications []string
}

// Template is an idea-framing template with example phrasings.
type Template struct {
	// Pattern is the fill-in-the-blanks framing sentence.
	Pattern string

	// Examples shows the pattern instantiated.
	Examples []string
}

// ImpactProfile holds the per-domain impact grades.
type ImpactProfile struct {
	Social    types.ImpactLevel
	Economic  types.ImpactLevel
	Technical types.ImpactLevel
}

// MarketProfile holds the per-domain market outlook.
type MarketProfile struct {
	MarketSize      string
	Competition     string
	Monetization    []string
	GrowthPotential string
}

// SetupHours is the fixed project setup cost added to every timeline.
const SetupHours = 10

// Catalog is the read-only reference data set. Use Default for the
// compiled-in catalog; all lookups are safe for concurrent use.
type Catalog struct {
	domainIDs []string
	domains   map[string]Domain

	techIDs        []string
	techCategories map[string]TechCategory

	templateKinds []string
	templates     map[string]Template

	innovationPatterns []string

	problemFeatures    map[string][]string
	techFeatures       map[string][]string
	innovationFeatures map[string][]string
	techHours          map[string]float64
	impact             map[string]ImpactProfile
	market             map[string]MarketProfile
	techChallenges     map[string][]string
	problemDemos       map[string][]string
}

var defaultCatalog = build()

// Default returns the compiled-in catalog shared by the whole process.
func Default() *Catalog {
	return defaultCatalog
}

// DomainIDs returns the domain identifiers in catalog order.
func (c *Catalog) DomainIDs() []string {
	return append([]string(nil), c.domainIDs...)
}

// Domain looks up a domain by id. An unknown id returns a generic
// fallback domain so callers never need an error path; classifier output
// always names known domains, so hitting the fallback indicates a
// programmer error upstream.
func (c *Catalog) Domain(id string) Domain {
	if d, ok := c.domains[id]; ok {
		return d
	}
	return Domain{
		ID:        id,
		Problems:  []string{"everyday workflow friction"},
		Audiences: []string{"general users"},
	}
}

// HasDomain reports whether id names a known domain.
func (c *Catalog) HasDomain(id string) bool {
	_, ok := c.domains[id]
	return ok
}

// TechCategoryIDs returns the technology category identifiers in catalog order.
func (c *Catalog) TechCategoryIDs() []string {
	return append([]string(nil), c.techIDs...)
}

// TechCategory looks up a technology category by id, with a generic
// fallback for unknown ids.
func (c *Catalog) TechCategory(id string) TechCategory {
	if t, ok := c.techCategories[id]; ok {
		return t
	}
	return TechCategory{
		ID:           id,
		Technologies: []string{"web_stack"},
		Applications: []string{"utility"},
	}
}

// InnovationPatterns returns the fixed pattern list in catalog order.
func (c *Catalog) InnovationPatterns() []string {
	return append([]string(nil), c.innovationPatterns...)
}

// TemplateKinds returns the idea-template identifiers in catalog order.
func (c *Catalog) TemplateKinds() []string {
	return append([]string(nil), c.templateKinds...)
}

// Template looks up an idea template by kind.
func (c *Catalog) Template(kind string) (Template, bool) {
	t, ok := c.templates[kind]
	return t, ok
}

// ProblemFeatures returns problem-specific features, or nil if the
// problem has no entry.
func (c *Catalog) ProblemFeatures(problem string) []string {
	return c.problemFeatures[problem]
}

// TechFeatures returns technology-specific features, or nil if the
// technology has no entry.
func (c *Catalog) TechFeatures(tech string) []string {
	return c.techFeatures[tech]
}

// InnovationFeatures returns pattern-specific features, or nil if the
// pattern has no entry.
func (c *Catalog) InnovationFeatures(pattern string) []string {
	return c.innovationFeatures[pattern]
}

// TechHours returns the build-hour estimate for a technology. Unknown
// technologies cost 8 hours.
func (c *Catalog) TechHours(tech string) float64 {
	if h, ok := c.techHours[tech]; ok {
		return h
	}
	return 8
}

// Impact returns the impact profile for a domain. Unknown domains grade
// medium on every dimension.
func (c *Catalog) Impact(domainID string) ImpactProfile {
	if p, ok := c.impact[domainID]; ok {
		return p
	}
	return ImpactProfile{
		Social:    types.ImpactMedium,
		Economic:  types.ImpactMedium,
		Technical: types.ImpactMedium,
	}
}

// Market returns the market profile for a domain. Unknown domains get a
// medium-size, low-competition outlook with generic monetization.
func (c *Catalog) Market(domainID string) MarketProfile {
	if p, ok := c.market[domainID]; ok {
		return p
	}
	return MarketProfile{
		MarketSize:      "Medium",
		Competition:     "Low",
		Monetization:    []string{"Subscription model", "Freemium", "B2B licensing"},
		GrowthPotential: "Medium",
	}
}

// TechChallenges returns known difficulties for a technology, or nil if
// the technology has no entry.
func (c *Catalog) TechChallenges(tech string) []string {
	return c.techChallenges[tech]
}

// ProblemDemos returns problem-specific demo ideas, or nil if the
// problem has no entry.
func (c *Catalog) ProblemDemos(problem string) []string {
	return c.problemDemos[problem]
}
