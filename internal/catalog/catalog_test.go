// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/idea-engine/pkg/types"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"healthcare", "education", "environment", "finance", "productivity"}, c.DomainIDs())
	assert.Equal(t, []string{"ai_powered", "real_time", "mobile_first", "blockchain", "iot_connected"}, c.TechCategoryIDs())
	assert.Len(t, c.InnovationPatterns(), 10)
	assert.Equal(t, []string{"problem_solution", "enhancement", "automation", "marketplace"}, c.TemplateKinds())

	for _, id := range c.DomainIDs() {
		d := c.Domain(id)
		require.NotEmpty(t, d.Problems, "domain %s has no problems", id)
		require.NotEmpty(t, d.Audiences, "domain %s has no audiences", id)
	}
	for _, id := range c.TechCategoryIDs() {
		tc := c.TechCategory(id)
		require.NotEmpty(t, tc.Technologies, "category %s has no technologies", id)
		require.NotEmpty(t, tc.Applications, "category %s has no applications", id)
	}
}

func TestAccessorsAreCopies(t *testing.T) {
	c := Default()

	ids := c.DomainIDs()
	ids[0] = "mutated"
	assert.Equal(t, "healthcare", c.DomainIDs()[0])

	patterns := c.InnovationPatterns()
	patterns[0] = "mutated"
	assert.Equal(t, "gamification", c.InnovationPatterns()[0])
}

func TestDomainFallback(t *testing.T) {
	d := Default().Domain("not-a-domain")
	assert.Equal(t, "not-a-domain", d.ID)
	assert.NotEmpty(t, d.Problems)
	assert.NotEmpty(t, d.Audiences)
	assert.False(t, Default().HasDomain("not-a-domain"))
}

func TestTechHoursDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 12.0, c.TechHours("machine_learning"))
	assert.Equal(t, 18.0, c.TechHours("blockchain"))
	assert.Equal(t, 8.0, c.TechHours("unheard_of_stack"))
}

func TestImpactDefault(t *testing.T) {
	c := Default()

	p := c.Impact("healthcare")
	assert.Equal(t, types.ImpactHigh, p.Social)

	def := c.Impact("not-a-domain")
	assert.Equal(t, ImpactProfile{
		Social:    types.ImpactMedium,
		Economic:  types.ImpactMedium,
		Technical: types.ImpactMedium,
	}, def)
}

func TestMarketDefault(t *testing.T) {
	c := Default()

	m := c.Market("finance")
	assert.Equal(t, "Massive ($22T global market)", m.MarketSize)
	assert.Equal(t, "Moderate", m.Competition)

	def := c.Market("not-a-domain")
	assert.Equal(t, "Medium", def.MarketSize)
	assert.Equal(t, "Low", def.Competition)
	assert.NotEmpty(t, def.Monetization)
}

func TestLookupTablesMissToNil(t *testing.T) {
	c := Default()
	assert.Nil(t, c.ProblemFeatures("no such problem"))
	assert.Nil(t, c.TechFeatures("no such tech"))
	assert.Nil(t, c.InnovationFeatures("no such pattern"))
	assert.Nil(t, c.TechChallenges("no such tech"))
	assert.Nil(t, c.ProblemDemos("no such problem"))
}
