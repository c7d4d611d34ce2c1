// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package refine adjusts a single idea in response to free-text feedback.
package refine

import (
	"math"
	"strings"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// Caps applied when feedback asks for a simpler idea.
const (
	simplifiedFeatures     = 5
	simplifiedTechnologies = 2
)

// timelineScale stretches the MVP estimate when feedback questions feasibility.
const timelineScale = 1.5

// innovativeAddOns are appended (first two) when feedback asks for more novelty.
var innovativeAddOns = []string{
	"AI-powered recommendations",
	"Machine learning optimization",
	"Blockchain verification",
	"AR/VR interface",
}

// Refine returns an adjusted copy of idea; the original is untouched.
// Feedback is matched case-insensitively against three independent
// trigger groups, all of which may apply to the same feedback:
//
//   - "simple"/"complex" trims features and technologies
//   - "innovative"/"unique" appends add-on features (past the usual cap;
//     refinement does not re-truncate)
//   - "feasible"/"timeline" stretches the timeline estimate
//
// The feasibility score always gains 10 points, capped at 100. Refine
// never re-ranks; callers re-sort their collection if order matters.
func Refine(idea types.Idea, feedback string) types.Idea {
	out := idea.Clone()
	fb := strings.ToLower(feedback)

	if strings.Contains(fb, "simple") || strings.Contains(fb, "complex") {
		out.Features = truncate(out.Features, simplifiedFeatures)
		out.Technologies = truncate(out.Technologies, simplifiedTechnologies)
	}

	if strings.Contains(fb, "innovative") || strings.Contains(fb, "unique") {
		out.Features = append(out.Features, innovativeAddOns[:2]...)
	}

	if strings.Contains(fb, "feasible") || strings.Contains(fb, "timeline") {
		out.MVPTimeline.TotalHours *= timelineScale
		out.MVPTimeline.DaysEstimate = int(out.MVPTimeline.TotalHours / 8)
	}

	out.FeasibilityScore = math.Min(100, out.FeasibilityScore+10)
	return out
}

func truncate(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
