// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/idea-engine/pkg/types"
)

// FormatTable writes a ranked idea list as a human-readable table to w.
func FormatTable(ideas []types.Idea, w io.Writer) {
	if len(ideas) == 0 {
		fmt.Fprintln(w, "No ideas generated.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-44s  %-12s  %-7s  %-7s  %-7s  %s\n",
		"Rank", "Title", "Domain", "Overall", "Feas.", "Innov.", "Days")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, idea := range ideas {
		title := idea.Title
		if r := []rune(title); len(r) > 44 {
			title = string(r[:41]) + "..."
		}
		fmt.Fprintf(w, "%-4d  %-44s  %-12s  %-7.1f  %-7.0f  %-7.0f  %d\n",
			i+1, title, idea.Domain, idea.OverallScore,
			idea.FeasibilityScore, idea.InnovationScore,
			idea.MVPTimeline.DaysEstimate)
	}

	fmt.Fprintf(w, "\n%d ideas\n", len(ideas))
}

// FormatDetail writes one idea in full to w, for the refine command and
// single-idea views.
func FormatDetail(idea types.Idea, w io.Writer) {
	fmt.Fprintf(w, "%s\n", idea.Title)
	fmt.Fprintln(w, strings.Repeat("=", len(idea.Title)))
	fmt.Fprintf(w, "\n%s\n", idea.Description)
	fmt.Fprintf(w, "\nDomain:     %s (%s)\n", idea.Domain, idea.Problem)
	fmt.Fprintf(w, "Audience:   %s\n", idea.TargetAudience)
	fmt.Fprintf(w, "Tech:       %s (%s)\n", strings.Join(idea.Technologies, ", "), idea.TechnologyCategory)
	fmt.Fprintf(w, "Innovation: %s\n", idea.InnovationPattern)

	fmt.Fprintf(w, "\nScores: overall %.1f (feasibility %.0f, innovation %.0f)\n",
		idea.OverallScore, idea.FeasibilityScore, idea.InnovationScore)
	fmt.Fprintf(w, "Timeline: %.0f hours (~%d days)\n",
		idea.MVPTimeline.TotalHours, idea.MVPTimeline.DaysEstimate)

	fmt.Fprintln(w, "\nFeatures:")
	for _, f := range idea.Features {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	if len(idea.TechnicalChallenges) > 0 {
		fmt.Fprintln(w, "\nTechnical challenges:")
		for _, c := range idea.TechnicalChallenges {
			fmt.Fprintf(w, "  - %s\n", c)
		}
	}
	if len(idea.DemoSuggestions) > 0 {
		fmt.Fprintln(w, "\nDemo suggestions:")
		for _, d := range idea.DemoSuggestions {
			fmt.Fprintf(w, "  - %s\n", d)
		}
	}
}

// FormatJSON writes ideas as indented JSON to w.
func FormatJSON(ideas []types.Idea, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ideas)
}
