// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synth

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/pdiddy/idea-engine/internal/catalog"
	"github.com/pdiddy/idea-engine/pkg/types"
)

// List caps per the Idea contract.
const (
	maxFeatures   = 8
	maxChallenges = 5
	maxDemos      = 6
)

// baseFeatures anchor every feature list before problem, technology, and
// innovation specifics are appended.
var baseFeatures = []string{
	"User authentication and profiles",
	"Real-time data processing",
	"Mobile-responsive design",
	"Analytics dashboard",
}

// genericDemos anchor every demo list before problem specifics.
var genericDemos = []string{
	"Live user interface walkthrough",
	"Real-time feature demonstration",
	"Before/after comparison scenarios",
	"User testimonial videos",
	"Performance metrics visualization",
}

// title picks one of five naming patterns and interpolates the problem
// and innovation terms.
func (s *Synthesizer) title(rng *rand.Rand, problem, innovation string) string {
	p := humanize(problem)
	patterns := []string{
		p + " Assistant",
		"Smart " + p + " Platform",
		humanize(innovation) + " for " + p,
		p + " Revolution",
		"AI-Powered " + p + " Solution",
	}
	return pick(rng, patterns)
}

// description composes the idea pitch, appending a theme sentence only
// when a theme was given.
func (s *Synthesizer) description(rng *rand.Rand, problem, audience string, tech catalog.TechCategory, innovation, theme string) string {
	techList := strings.Join(firstN(tech.Technologies, 2), ", ")
	application := pick(rng, tech.Applications)

	var b strings.Builder
	fmt.Fprintf(&b, "A cutting-edge solution that addresses %s for %s through %s. ",
		spaceOut(problem), audience, application)
	fmt.Fprintf(&b, "The platform leverages %s and incorporates %s to create an engaging user experience.",
		techList, spaceOut(innovation))
	if theme != "" {
		fmt.Fprintf(&b, " Specifically designed for the %s challenge, this solution aims to make a significant impact in the target domain.", theme)
	}
	return b.String()
}

// features assembles the feature list: baseline first, then problem,
// technology, and innovation specifics, truncated to the cap in that
// insertion order.
func (s *Synthesizer) features(problem string, tech catalog.TechCategory, innovation string) []string {
	features := append([]string(nil), baseFeatures...)
	features = append(features, s.cat.ProblemFeatures(problem)...)
	for _, t := range firstN(tech.Technologies, 2) {
		features = append(features, firstN(s.cat.TechFeatures(t), 2)...)
	}
	features = append(features, s.cat.InnovationFeatures(innovation)...)
	return firstN(features, maxFeatures)
}

// timeline sums per-technology hour costs plus setup and splits the
// total into rendered phases.
func (s *Synthesizer) timeline(technologies []string) types.MVPTimeline {
	total := float64(catalog.SetupHours)
	for _, t := range technologies {
		total += s.cat.TechHours(t)
	}
	return types.MVPTimeline{
		TotalHours:   total,
		DaysEstimate: int(total / 8),
		Phases: map[string]string{
			"setup":       "4 hours",
			"backend":     fmt.Sprintf("%.0f hours", total*0.4),
			"frontend":    fmt.Sprintf("%.0f hours", total*0.3),
			"integration": fmt.Sprintf("%.0f hours", total*0.2),
			"testing":     fmt.Sprintf("%.0f hours", total*0.1),
		},
	}
}

// impact grades the idea from the per-domain impact table.
func (s *Synthesizer) impact(domainID, audience string) types.PotentialImpact {
	p := s.cat.Impact(domainID)
	scalability := "medium"
	if domainID == "education" || domainID == "productivity" {
		scalability = "high"
	}
	return types.PotentialImpact{
		SocialImpact:    p.Social,
		EconomicImpact:  p.Economic,
		TechnicalImpact: p.Technical,
		TargetUsers:     "1000+ " + audience,
		Scalability:     scalability,
	}
}

// market maps the per-domain market table into the idea record.
func (s *Synthesizer) market(domainID string) types.MarketPotential {
	p := s.cat.Market(domainID)
	return types.MarketPotential{
		MarketSize:      p.MarketSize,
		Competition:     p.Competition,
		Monetization:    append([]string(nil), p.Monetization...),
		GrowthPotential: p.GrowthPotential,
	}
}

// challenges collects up to two known difficulties per technology, adds
// constraint-driven ones, and truncates to the cap.
func (s *Synthesizer) challenges(technologies, constraints []string) []string {
	var challenges []string
	for _, t := range technologies {
		challenges = append(challenges, firstN(s.cat.TechChallenges(t), 2)...)
	}
	if slices.Contains(constraints, "time") {
		challenges = append(challenges, "Limited development time")
	}
	if slices.Contains(constraints, "team_size") {
		challenges = append(challenges, "Small team coordination")
	}
	return firstN(challenges, maxChallenges)
}

// demos combines the generic demo list with problem specifics, capped.
func (s *Synthesizer) demos(problem string) []string {
	demos := append([]string(nil), genericDemos...)
	demos = append(demos, s.cat.ProblemDemos(problem)...)
	return firstN(demos, maxDemos)
}

// spaceOut replaces tag underscores with spaces for prose.
func spaceOut(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// humanize turns a tag or problem string into Title Case prose.
func humanize(s string) string {
	words := strings.Fields(spaceOut(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
