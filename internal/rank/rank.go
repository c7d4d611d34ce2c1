// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores synthesized ideas for feasibility and innovation
// and orders them by the weighted overall score.
package rank

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// Overall score weights. Feasibility dominates: a hackathon idea that
// cannot be built in time loses to a slightly less novel one that can.
const (
	feasibilityWeight = 0.6
	innovationWeight  = 0.4
)

// noveltyPatterns are the innovation patterns that earn the novel-combination bonus.
var noveltyPatterns = []string{"ar_vr_integration", "blockchain_verification", "voice_interface"}

// Rank populates the three scores of every idea in place and sorts the
// slice descending by overall score. The sort is stable: ties keep the
// synthesis batch order. The scored slice is returned for chaining.
func Rank(ideas []types.Idea, constraints []string) []types.Idea {
	for i := range ideas {
		score(&ideas[i], constraints)
	}
	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].OverallScore > ideas[j].OverallScore
	})
	return ideas
}

// score computes all three scores together so they are never partially stale.
func score(idea *types.Idea, constraints []string) {
	idea.FeasibilityScore = feasibility(idea, constraints)
	idea.InnovationScore = innovation(idea)
	idea.OverallScore = idea.FeasibilityScore*feasibilityWeight + idea.InnovationScore*innovationWeight
}

// feasibility starts from a base of 50, penalizes technology count,
// rewards short timelines, penalizes long timelines under a time
// constraint, and clamps to [0, 100].
func feasibility(idea *types.Idea, constraints []string) float64 {
	f := 50.0

	f -= math.Min(30, float64(len(idea.Technologies))*10)

	hours := idea.MVPTimeline.TotalHours
	switch {
	case hours <= 24:
		f += 20
	case hours <= 48:
		f += 10
	}

	if slices.Contains(constraints, "time") && hours > 30 {
		f -= 15
	}

	return math.Max(0, math.Min(100, f))
}

// innovation starts from a base of 40 and adds bonuses for ML/AI
// technologies, novel interaction patterns, and high social impact,
// capped at 100. The ML/AI check is a substring match on each technology
// tag, so any tag containing "ai" qualifies, not only exact matches.
func innovation(idea *types.Idea) float64 {
	n := 40.0

	for _, tech := range idea.Technologies {
		if strings.Contains(tech, "machine_learning") || strings.Contains(tech, "ai") {
			n += 20
			break
		}
	}

	if slices.Contains(noveltyPatterns, idea.InnovationPattern) {
		n += 15
	}

	if idea.PotentialImpact.SocialImpact == types.ImpactHigh {
		n += 10
	}

	return math.Min(100, n)
}
