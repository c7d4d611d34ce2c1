package rank

import (
	"math"
	"testing"

	"github.com/pdiddy/idea-engine/pkg/types"
)

func idea(title string, techs []string, hours float64) types.Idea {
	return types.Idea{
		Title:        title,
		Technologies: techs,
		MVPTimeline:  types.MVPTimeline{TotalHours: hours},
		PotentialImpact: types.PotentialImpact{
			SocialImpact: types.ImpactMedium,
		},
		InnovationPattern: "gamification",
	}
}

func TestFeasibilityScore(t *testing.T) {
	tests := []struct {
		name        string
		techs       []string
		hours       float64
		constraints []string
		want        float64
	}{
		{"one tech, short timeline", []string{"fastapi"}, 20, nil, 60},
		{"one tech, mid timeline", []string{"fastapi"}, 40, nil, 50},
		{"one tech, long timeline", []string{"fastapi"}, 60, nil, 40},
		{"three techs cap the penalty", []string{"a", "b", "c"}, 20, nil, 40},
		{"time constraint penalty", []string{"fastapi"}, 40, []string{"time"}, 35},
		{"time constraint not triggered under 30h", []string{"fastapi"}, 20, []string{"time"}, 60},
		{"floor stays above zero", []string{"a", "b", "c"}, 100, []string{"time"}, 5},
		{"no technologies", nil, 20, nil, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ideas := []types.Idea{idea("x", tt.techs, tt.hours)}
			Rank(ideas, tt.constraints)
			if got := ideas[0].FeasibilityScore; got != tt.want {
				t.Errorf("feasibility = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestInnovationScore(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Idea)
		want   float64
	}{
		{"base", func(i *types.Idea) {}, 40},
		{"machine learning bonus", func(i *types.Idea) {
			i.Technologies = []string{"machine_learning"}
		}, 60},
		{"ai substring bonus applies to any tag containing ai", func(i *types.Idea) {
			i.Technologies = []string{"maintainable"}
		}, 60},
		{"novel pattern bonus", func(i *types.Idea) {
			i.InnovationPattern = "voice_interface"
		}, 55},
		{"social impact bonus", func(i *types.Idea) {
			i.PotentialImpact.SocialImpact = types.ImpactHigh
		}, 50},
		{"all bonuses", func(i *types.Idea) {
			i.Technologies = []string{"machine_learning"}
			i.InnovationPattern = "ar_vr_integration"
			i.PotentialImpact.SocialImpact = types.ImpactHigh
		}, 85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := idea("x", nil, 100)
			tt.mutate(&base)
			ideas := []types.Idea{base}
			Rank(ideas, nil)
			if got := ideas[0].InnovationScore; got != tt.want {
				t.Errorf("innovation = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestOverallScoreWeighting(t *testing.T) {
	ideas := []types.Idea{idea("x", []string{"fastapi"}, 20)}
	Rank(ideas, nil)

	got := ideas[0]
	want := got.FeasibilityScore*0.6 + got.InnovationScore*0.4
	if math.Abs(got.OverallScore-want) > 1e-9 {
		t.Errorf("overall = %f, want %f", got.OverallScore, want)
	}
	// Scenario: feasibility 60, innovation 40 → overall 52.
	if math.Abs(got.OverallScore-52) > 1e-9 {
		t.Errorf("overall = %f, want 52", got.OverallScore)
	}
}

func TestScoreBounds(t *testing.T) {
	ideas := []types.Idea{
		idea("a", []string{"machine_learning", "nlp", "computer_vision"}, 100),
		idea("b", nil, 10),
		idea("c", []string{"maintainable"}, 50),
	}
	Rank(ideas, []string{"time"})

	for _, i := range ideas {
		if i.FeasibilityScore < 0 || i.FeasibilityScore > 100 {
			t.Errorf("%s: feasibility %f out of range", i.Title, i.FeasibilityScore)
		}
		if i.InnovationScore < 0 || i.InnovationScore > 100 {
			t.Errorf("%s: innovation %f out of range", i.Title, i.InnovationScore)
		}
	}
}

func TestRankSortsDescending(t *testing.T) {
	ideas := []types.Idea{
		idea("slow", []string{"a", "b", "c"}, 100),
		idea("fast", []string{"fastapi"}, 20),
		idea("mid", []string{"a", "b"}, 40),
	}
	Rank(ideas, nil)

	for i := 1; i < len(ideas); i++ {
		if ideas[i].OverallScore > ideas[i-1].OverallScore {
			t.Errorf("not sorted: [%d]=%f > [%d]=%f",
				i, ideas[i].OverallScore, i-1, ideas[i-1].OverallScore)
		}
	}
	if ideas[0].Title != "fast" {
		t.Errorf("top idea = %q, want \"fast\"", ideas[0].Title)
	}
}

func TestRankStableOnTies(t *testing.T) {
	ideas := []types.Idea{
		idea("first", []string{"fastapi"}, 20),
		idea("second", []string{"fastapi"}, 20),
		idea("third", []string{"fastapi"}, 20),
	}
	Rank(ideas, nil)

	for i, want := range []string{"first", "second", "third"} {
		if ideas[i].Title != want {
			t.Errorf("tie order broken: [%d] = %q, want %q", i, ideas[i].Title, want)
		}
	}
}
