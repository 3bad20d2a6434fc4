package planner

import (
	"fmt"

	"basegraph.app/growthplan/internal/model"
)

var expansionStrategy = &strategy{
	goal:  model.GrowthGoalExpansion,
	title: "Expansion",
	aim:   "test new products, partners and channels for %s before committing larger spend",
	methods: []methodSpec{
		{
			description: "Test one new product or service",
			how:         "Make a small batch, give samples to regulars and ask whether they would pay for it.",
			owner:       2,
			lineItem:    "expansion.samples",
			location:    "In store",
			timing:      "Weeks 1 and 2",
			gate:        always,
		},
		{
			description: "Partner with a nearby business",
			how:         "Propose a simple cross-promotion or supply deal with a shop that serves the same customers.",
			owner:       1,
			location:    "Neighbouring businesses",
			timing:      "Week 2",
			gate:        always,
		},
		{
			description: "List on a delivery or online ordering app",
			how:         "Sign up with one delivery platform, list five best-sellers and watch order volume for two weeks.",
			owner:       1,
			lineItem:    "expansion.delivery",
			location:    "Delivery app",
			timing:      "Week 3",
			gate:        paidOnly,
		},
		{
			description: "Run a pop-up stall at a local market or event",
			how:         "Take best-sellers and the new product to one market day and collect contacts from visitors.",
			owner:       2,
			lineItem:    "expansion.popup",
			location:    "Local market or event",
			timing:      "One weekend in weeks 3 or 4",
			gate:        paidFullTime,
		},
		{
			description: "Train part-time help",
			how:         "Write a one-page routine for opening, serving and closing so a helper can cover busy hours.",
			owner:       1,
			lineItem:    "expansion.training",
			location:    "In store",
			timing:      "Week 4",
			gate:        budgetAtLeast(500),
		},
		{
			description: "Announce the expansion on Instagram and Facebook",
			how:         "Share the new product, partner or channel with photos and a drafted caption.",
			owner:       1,
			lineItem:    "expansion.ads",
			location:    "Instagram and Facebook",
			timing:      "At each launch",
			gate:        socialOnly,
		},
	},
	lineItems: []lineItemSpec{
		{key: "expansion.samples", item: "New product samples", unitCost: 20, fraction: 0.25, ceiling: 300, purpose: "Trial the new line with regular customers", gate: always},
		{key: "expansion.delivery", item: "Delivery platform onboarding", unitCost: 50, fraction: 0.20, ceiling: 250, purpose: "Open a new sales channel", gate: paidOnly},
		{key: "expansion.popup", item: "Pop-up stall fee", unitCost: 75, fraction: 0.30, ceiling: 800, purpose: "Meet customers outside the shop", gate: paidFullTime},
		{key: "expansion.training", item: "Training materials for helpers", unitCost: 30, fraction: 0.15, ceiling: 200, purpose: "Prepare extra hands for growth", gate: budgetAtLeast(500)},
		{key: "expansion.ads", item: "Launch announcement ads (per day)", unitCost: 10, fraction: 0.25, ceiling: 500, purpose: "Tell nearby customers about the new offer", gate: paidSocial},
	},
	weekly: weeklyTemplate{
		solo: [5][]string{
			{
				"Worker 1: Research two nearby markets or events where you could run a stall",
				"Worker 1: Write a short description of one new product or service to test",
				"Worker 1: Post a teaser about the new product on Instagram",
			},
			{
				"Worker 1: Visit one neighbouring business to propose a partnership",
				"Worker 1: Make five samples of the new product for regular customers",
				"Worker 1: Share customer reactions to the samples on Facebook",
			},
			{
				"Worker 1: Compare prices of two competitors for the new product",
				"Worker 1: Check delivery app sign-up steps and fees",
				"Worker 1: Create a social media post announcing the trial",
			},
			{
				"Worker 1: Ask ten customers whether they would buy the new product",
				"Worker 1: Draft a simple partnership offer for the neighbouring business",
				"Worker 1: Update the menu or price list to include the new item",
			},
			{
				"Worker 1: Decide go or no-go on the new product from this week's feedback",
				"Worker 1: Verify costs and margin of the new product",
				"Worker 1: Post a weekend launch announcement on Instagram and Facebook",
			},
		},
		pair: [5][]string{
			{
				"Worker 1: Research two nearby markets or events where you could run a stall",
				"Worker 2: Make five samples of the new product for regular customers",
				"Worker 1: Post a teaser about the new product on Instagram",
				"Worker 2: Write a short description of one new product or service to test",
			},
			{
				"Worker 1: Visit one neighbouring business to propose a partnership",
				"Worker 2: Ask ten customers whether they would buy the new product",
				"Worker 1: Share customer reactions to the samples on Facebook",
				"Worker 2: Note which sample options people preferred",
			},
			{
				"Worker 1: Check delivery app sign-up steps and fees",
				"Worker 2: Compare prices of two competitors for the new product",
				"Worker 1: Create a social media post announcing the trial",
				"Worker 2: Prepare a small display for the new product",
			},
			{
				"Worker 1: Draft a simple partnership offer for the neighbouring business",
				"Worker 2: Verify costs and margin of the new product",
				"Worker 1: Update the menu or price list to include the new item",
				"Worker 2: Pack a trial batch for the weekend",
			},
			{
				"Worker 1: Decide go or no-go on the new product from this week's feedback",
				"Worker 2: Run the weekend trial at the counter",
				"Worker 1: Post a weekend launch announcement on Instagram and Facebook",
				"Worker 2: Note questions customers asked about the new item",
			},
		},
		thirdRow: [5]string{
			"Worker 3: List supplies needed for a market stall",
			"Worker 3: Photograph the new product for the menu board",
			"Worker 3: Reply to questions about the new product on social media",
			"Worker 3: Call the market organiser to ask about stall fees",
			"Worker 3: Clean and pack the stall kit for next week",
		},
	},
	roles: [3]roleSpec{
		{role: "Growth and partnerships", tasks: []string{
			"Research markets, events and delivery apps",
			"Agree partnerships with nearby businesses",
			"Announce new products on Instagram and Facebook",
		}},
		{role: "Product trials", tasks: []string{
			"Prepare samples of the new product",
			"Collect customer feedback",
			"Work out costs and margins",
		}},
		{role: "Operations", tasks: []string{
			"Prepare stall kits and displays",
			"Manage supplies for the new line",
			"Help run pop-up events",
		}},
	},
	classification: classificationSpec{
		automated: []gatedText{
			{text: "Online order notifications", gate: paidOnly},
			{text: "Low-stock alerts for the new line", gate: always},
		},
		aiAssisted: []gatedText{
			{text: "Researching nearby markets and events", gate: always},
			{text: "Drafting partnership proposals", gate: always},
			{text: "Writing new product descriptions", gate: always},
			{text: "Drafting launch announcement posts", gate: socialOnly},
		},
		humanOnly: []gatedText{
			{text: "Negotiating with partners", gate: always},
			{text: "Testing new products with customers", gate: always},
			{text: "Hiring and training helpers", gate: budgetAtLeast(500)},
			{text: "Running the pop-up stall", gate: paidFullTime},
		},
	},
	phases: [4]phaseSpec{
		{
			name:  "Explore options",
			focus: "Find the most promising next step",
			milestones: func(model.Constraints, model.Flags) []string {
				return []string{
					"Two markets or events shortlisted",
					"One new product idea chosen",
				}
			},
		},
		{
			name:  "Test small",
			focus: "Trial before committing",
			milestones: func(c model.Constraints, _ model.Flags) []string {
				return []string{
					fmt.Sprintf("Samples tested with %d customers", 10*c.WorkerCount),
					"Costs and margin of the new product worked out",
				}
			},
		},
		{
			name:  "Partner and launch",
			focus: "Grow through partners and new channels",
			milestones: func(_ model.Constraints, f model.Flags) []string {
				m := []string{"One partnership agreed"}
				if !f.LowBudget {
					m = append(m, "Delivery app or pop-up stall tried once")
				}
				return m
			},
		},
		{
			name:  "Measure and refine",
			focus: "Decide what to scale",
			milestones: func(c model.Constraints, _ model.Flags) []string {
				return []string{
					"Go or no-go decision recorded for each experiment",
					fmt.Sprintf("Expansion spend kept within %s", formatAmount(c.MonthlyBudget)),
				}
			},
		},
	},
	collaborationIdea: func(model.Flags) string {
		return "Share a pop-up stall at a local market with another small brand"
	},
}
