// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import "github.com/pdiddy/idea-engine/pkg/types"

// build assembles the compiled-in catalog. Slice order is part of the
// contract: seeded selection indexes into these lists, so reordering
// entries changes every generated idea.
func build() *Catalog {
	c := &Catalog{
		domains:        make(map[string]Domain),
		techCategories: make(map[string]TechCategory),
		templates:      make(map[string]Template),
	}

	for _, d := range []Domain{
		{
			ID: "healthcare",
			Problems: []string{
				"medication adherence",
				"patient data management",
				"telemedicine accessibility",
				"mental health support",
				"fitness tracking",
				"elderly care",
			},
			Audiences:   []string{"patients", "doctors", "caregivers", "hospitals"},
			Constraints: []string{"privacy", "regulations", "accuracy"},
		},
		{
			ID: "education",
			Problems: []string{
				"remote learning engagement",
				"skill assessment",
				"personalized learning paths",
				"student collaboration",
				"teacher workload",
				"accessibility",
			},
			Audiences:   []string{"students", "teachers", "parents", "institutions"},
			Constraints: []string{"age_appropriate", "scalability", "cost"},
		},
		{
			ID: "environment",
			Problems: []string{
				"carbon footprint tracking",
				"waste management",
				"renewable energy optimization",
				"water conservation",
				"sustainable transportation",
				"recycling systems",
			},
			Audiences:   []string{"individuals", "communities", "businesses", "governments"},
			Constraints: []string{"data_availability", "behavior_change", "measurement"},
		},
		{
			ID: "finance",
			Problems: []string{
				"budgeting and savings",
				"investment education",
				"fraud detection",
				"financial inclusion",
				"cryptocurrency management",
				"small business accounting",
			},
			Audiences:   []string{"consumers", "small_businesses", "banks", "investors"},
			Constraints: []string{"security", "regulations", "trust"},
		},
		{
			ID: "productivity",
			Problems: []string{
				"time management",
				"team collaboration",
				"project planning",
				"automation workflows",
				"document management",
				"communication efficiency",
			},
			Audiences:   []string{"professionals", "teams", "managers", "freelancers"},
			Constraints: []string{"integration", "learning_curve", "customization"},
		},
	} {
		c.domainIDs = append(c.domainIDs, d.ID)
		c.domains[d.ID] = d
	}

	for _, t := range []TechCategory{
		{
			ID:           "ai_powered",
			Technologies: []string{"machine_learning", "nlp", "computer_vision", "recommendation_systems"},
			Applications: []string{"content_generation", "prediction", "automation", "personalization"},
		},
		{
			ID:           "real_time",
			Technologies: []string{"websockets", "streaming", "live_updates", "collaboration"},
			Applications: []string{"gaming", "communication", "monitoring", "trading"},
		},
		{
			ID:           "mobile_first",
			Technologies: []string{"react_native", "flutter", "pwa", "mobile_apis"},
			Applications: []string{"lifestyle", "productivity", "social", "utility"},
		},
		{
			ID:           "blockchain",
			Technologies: []string{"smart_contracts", "defi", "nft", "tokenization"},
			Applications: []string{"finance", "voting", "supply_chain", "identity"},
		},
		{
			ID:           "iot_connected",
			Technologies: []string{"sensors", "raspberry_pi", "arduino", "cloud_integration"},
			Applications: []string{"home_automation", "health_monitoring", "environmental", "agriculture"},
		},
	} {
		c.techIDs = append(c.techIDs, t.ID)
		c.techCategories[t.ID] = t
	}

	for _, kt := range []struct {
		kind string
		tpl  Template
	}{
		{"problem_solution", Template{
			Pattern: "Create a {solution_type} that helps {target_audience} {action} by {method}",
			Examples: []string{
				"Create a mobile app that helps students learn by gamifying study sessions",
				"Create a web platform that helps small businesses manage inventory by using AI predictions",
			},
		}},
		{"enhancement", Template{
			Pattern: "Build a tool that makes {existing_thing} {improvement} for {audience}",
			Examples: []string{
				"Build a tool that makes online meetings more engaging for remote teams",
				"Build a tool that makes code reviews faster for developers",
			},
		}},
		{"automation", Template{
			Pattern: "Automate {manual_process} using {technology} to save {benefit}",
			Examples: []string{
				"Automate expense reporting using AI to save hours of manual work",
				"Automate social media posting using ML to save marketing effort",
			},
		}},
		{"marketplace", Template{
			Pattern: "Connect {group_a} with {group_b} through {platform_type}",
			Examples: []string{
				"Connect freelance developers with startup founders through a skill-matching platform",
				"Connect local farmers with urban consumers through a direct-sales app",
			},
		}},
	} {
		c.templateKinds = append(c.templateKinds, kt.kind)
		c.templates[kt.kind] = kt.tpl
	}

	c.innovationPatterns = []string{
		"gamification",
		"ai_personalization",
		"community_driven",
		"real_time_collaboration",
		"predictive_analytics",
		"voice_interface",
		"ar_vr_integration",
		"blockchain_verification",
		"iot_automation",
		"social_impact",
	}

	c.problemFeatures = map[string][]string{
		"medication_adherence": {"Pill reminder system", "Dosage tracking", "Doctor notifications"},
		"remote_learning":      {"Virtual classrooms", "Progress tracking", "Interactive assignments"},
		"carbon_footprint":     {"Activity logging", "Impact visualization", "Goal setting"},
		"budgeting":            {"Expense categorization", "Savings goals", "Financial insights"},
		"time_management":      {"Task prioritization", "Calendar integration", "Productivity metrics"},
	}

	c.techFeatures = map[string][]string{
		"machine_learning": {"Predictive recommendations", "Pattern analysis", "Automated insights"},
		"computer_vision":  {"Image recognition", "Visual search", "Object detection"},
		"blockchain":       {"Secure transactions", "Transparent records", "Decentralized storage"},
		"iot":              {"Sensor integration", "Remote monitoring", "Automated triggers"},
	}

	c.innovationFeatures = map[string][]string{
		"gamification":            {"Achievement system", "Leaderboards", "Progress badges"},
		"real_time_collaboration": {"Live editing", "Team notifications", "Shared workspaces"},
		"voice_interface":         {"Voice commands", "Speech recognition", "Audio feedback"},
	}

	c.techHours = map[string]float64{
		"machine_learning": 12,
		"computer_vision":  15,
		"blockchain":       18,
		"react":            8,
		"fastapi":          6,
		"websockets":       10,
		"database":         4,
	}

	c.impact = map[string]ImpactProfile{
		"healthcare":   {Social: types.ImpactHigh, Economic: types.ImpactHigh, Technical: types.ImpactMedium},
		"education":    {Social: types.ImpactHigh, Economic: types.ImpactMedium, Technical: types.ImpactMedium},
		"environment":  {Social: types.ImpactHigh, Economic: types.ImpactMedium, Technical: types.ImpactHigh},
		"finance":      {Social: types.ImpactMedium, Economic: types.ImpactHigh, Technical: types.ImpactMedium},
		"productivity": {Social: types.ImpactMedium, Economic: types.ImpactHigh, Technical: types.ImpactLow},
	}

	c.market = map[string]MarketProfile{
		"healthcare": {
			MarketSize:      "Large ($4.5T global market)",
			Competition:     "Moderate",
			Monetization:    []string{"Subscription model", "Freemium", "B2B licensing"},
			GrowthPotential: "Medium",
		},
		"education": {
			MarketSize:      "Large ($6T global market)",
			Competition:     "Low",
			Monetization:    []string{"Subscription model", "Freemium", "B2B licensing"},
			GrowthPotential: "High",
		},
		"environment": {
			MarketSize:      "Growing ($1.1T green tech market)",
			Competition:     "Low",
			Monetization:    []string{"Subscription model", "Freemium", "B2B licensing"},
			GrowthPotential: "High",
		},
		"finance": {
			MarketSize:      "Massive ($22T global market)",
			Competition:     "Moderate",
			Monetization:    []string{"Subscription model", "Freemium", "B2B licensing"},
			GrowthPotential: "Medium",
		},
		"productivity": {
			MarketSize:      "Stable ($65B productivity software market)",
			Competition:     "Low",
			Monetization:    []string{"Subscription model", "Freemium", "B2B licensing"},
			GrowthPotential: "Medium",
		},
	}

	c.techChallenges = map[string][]string{
		"machine_learning": {"Data quality and quantity", "Model training time", "Inference optimization"},
		"blockchain":       {"Transaction costs", "Scalability issues", "User adoption"},
		"computer_vision":  {"Image processing performance", "Lighting conditions", "Hardware requirements"},
		"real_time":        {"Network latency", "Concurrent users", "Data synchronization"},
	}

	c.problemDemos = map[string][]string{
		"medication_adherence": {"Mock pill reminder demonstration", "Doctor dashboard view"},
		"remote_learning":      {"Live virtual classroom session", "Student progress tracking"},
		"carbon_footprint":     {"Real-time carbon calculation", "Impact visualization charts"},
		"budgeting":            {"Expense tracking demo", "Savings goal achievement"},
	}

	return c
}
