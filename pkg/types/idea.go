// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ImpactLevel grades a dimension of an idea's potential impact.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// MVPTimeline estimates the development effort for an idea's MVP.
type MVPTimeline struct {
	// TotalHours is the summed per-technology build estimate plus setup time.
	// Refinement may scale it, so it is fractional after adjustment.
	TotalHours float64 `json:"total_hours" yaml:"total_hours"`

	// DaysEstimate is TotalHours divided into 8-hour days, rounded down.
	DaysEstimate int `json:"days_estimate" yaml:"days_estimate"`

	// Phases maps phase name (setup, backend, frontend, integration,
	// testing) to a rendered duration such as "18 hours".
	Phases map[string]string `json:"phases" yaml:"phases"`
}

// PotentialImpact assesses the reach of an idea across impact dimensions.
type PotentialImpact struct {
	// SocialImpact grades benefit to people and communities.
	SocialImpact ImpactLevel `json:"social_impact" yaml:"social_impact"`

	// EconomicImpact grades commercial or cost-saving value.
	EconomicImpact ImpactLevel `json:"economic_impact" yaml:"economic_impact"`

	// TechnicalImpact grades how much the idea advances its technical area.
	TechnicalImpact ImpactLevel `json:"technical_impact" yaml:"technical_impact"`

	// TargetUsers describes the expected user base (e.g. "1000+ students").
	TargetUsers string `json:"target_users" yaml:"target_users"`

	// Scalability is "high" for domains that scale cheaply, else "medium".
	Scalability string `json:"scalability" yaml:"scalability"`
}

// MarketPotential summarizes the commercial outlook for an idea's domain.
type MarketPotential struct {
	// MarketSize is a human-readable market estimate for the domain.
	MarketSize string `json:"market_size" yaml:"market_size"`

	// Competition is the expected competition level (e.g. "Moderate").
	Competition string `json:"competition" yaml:"competition"`

	// Monetization lists viable revenue models.
	Monetization []string `json:"monetization" yaml:"monetization"`

	// GrowthPotential is the expected market growth (e.g. "High").
	GrowthPotential string `json:"growth_potential" yaml:"growth_potential"`
}

// Idea is a synthesized project concept with derived estimates and scores.
// The synthesizer constructs it with zero scores, the ranker populates
// FeasibilityScore, InnovationScore, and OverallScore together, and
// refinement may adjust lists, timeline, and feasibility afterward.
type Idea struct {
	// Title is the generated project name.
	Title string `json:"title" yaml:"title"`

	// Description is a short pitch for the concept.
	Description string `json:"description" yaml:"description"`

	// Domain is the problem-domain id the idea belongs to (e.g. "healthcare").
	Domain string `json:"domain" yaml:"domain"`

	// TargetAudience is the audience the idea serves, drawn from the domain.
	TargetAudience string `json:"target_audience" yaml:"target_audience"`

	// Problem is the domain problem the idea addresses.
	Problem string `json:"problem" yaml:"problem"`

	// TechnologyCategory is the tech-combination id (e.g. "ai_powered").
	TechnologyCategory string `json:"technology_category" yaml:"technology_category"`

	// Technologies lists the selected technology tags, at most 3.
	Technologies []string `json:"technologies" yaml:"technologies"`

	// InnovationPattern is the pattern making the idea novel (e.g. "gamification").
	InnovationPattern string `json:"innovation_pattern" yaml:"innovation_pattern"`

	// TemplateKind is the idea-template family the concept was framed with.
	TemplateKind string `json:"template_kind" yaml:"template_kind"`

	// FeasibilityScore grades build-within-constraints likelihood, 0-100.
	// Zero until the idea has been ranked.
	FeasibilityScore float64 `json:"feasibility_score" yaml:"feasibility_score"`

	// InnovationScore grades novelty and differentiation, 0-100.
	// Zero until the idea has been ranked.
	InnovationScore float64 `json:"innovation_score" yaml:"innovation_score"`

	// OverallScore is FeasibilityScore*0.6 + InnovationScore*0.4.
	OverallScore float64 `json:"overall_score" yaml:"overall_score"`

	// Features lists key product features. The synthesizer caps the list at
	// 8; refinement may extend it past the cap.
	Features []string `json:"features" yaml:"features"`

	// MVPTimeline estimates the build effort.
	MVPTimeline MVPTimeline `json:"mvp_timeline" yaml:"mvp_timeline"`

	// PotentialImpact assesses the idea's reach.
	PotentialImpact PotentialImpact `json:"potential_impact" yaml:"potential_impact"`

	// TechnicalChallenges lists expected difficulties, at most 5.
	TechnicalChallenges []string `json:"technical_challenges" yaml:"technical_challenges"`

	// MarketPotential summarizes the commercial outlook.
	MarketPotential MarketPotential `json:"market_potential" yaml:"market_potential"`

	// DemoSuggestions lists ways to demo the idea, at most 6.
	DemoSuggestions []string `json:"demo_suggestions" yaml:"demo_suggestions"`
}

// Clone returns a deep copy of the idea. Slices and the phase map are
// copied so mutating the clone never touches the original.
func (i Idea) Clone() Idea {
	out := i
	out.Technologies = append([]string(nil), i.Technologies...)
	out.Features = append([]string(nil), i.Features...)
	out.TechnicalChallenges = append([]string(nil), i.TechnicalChallenges...)
	out.DemoSuggestions = append([]string(nil), i.DemoSuggestions...)
	out.MarketPotential.Monetization = append([]string(nil), i.MarketPotential.Monetization...)
	if i.MVPTimeline.Phases != nil {
		out.MVPTimeline.Phases = make(map[string]string, len(i.MVPTimeline.Phases))
		for k, v := range i.MVPTimeline.Phases {
			out.MVPTimeline.Phases[k] = v
		}
	}
	return out
}
