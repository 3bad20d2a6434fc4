package planner

import (
	"fmt"

	"basegraph.app/growthplan/internal/model"
)

var salesStrategy = &strategy{
	goal:  model.GrowthGoalSales,
	title: "Sales",
	aim:   "turn the people already walking into %s into more and bigger purchases",
	methods: []methodSpec{
		{
			description: "Launch a combo offer",
			how:         "Pair a best-seller with a slow mover at a small discount and write it on the counter board.",
			owner:       1,
			lineItem:    "sales.discounts",
			location:    "Counter",
			timing:      "Week 1, keep running",
			gate:        always,
		},
		{
			description: "Start a loyalty card",
			how:         "Buy 5, get 1 free. Stamp every visit and note repeat customers.",
			owner:       2,
			lineItem:    "sales.loyalty",
			location:    "Counter",
			timing:      "From week 1",
			gate:        always,
		},
		{
			description: "Message past customers with weekly offers",
			how:         "Send one short WhatsApp message a week to customers who agreed to hear from you.",
			owner:       1,
			location:    "WhatsApp",
			timing:      "Every Monday",
			gate:        always,
		},
		{
			description: "Suggest an add-on at the counter",
			how:         "Offer one matching item with every purchase using a simple one-line script.",
			owner:       2,
			location:    "Counter",
			timing:      "Every sale",
			gate:        always,
		},
		{
			description: "Post a deal of the day on Instagram and Facebook",
			how:         "Photograph the offer, use a drafted caption and mention the end time.",
			owner:       1,
			location:    "Instagram and Facebook",
			timing:      "Monday to Friday, 10 minutes",
			gate:        socialOnly,
		},
		{
			description: "Boost offer posts to nearby customers",
			how:         "Put a small daily boost behind the weekend deal post and stop when it stops bringing sales.",
			owner:       1,
			lineItem:    "sales.boost",
			location:    "Instagram and Facebook, 3 km radius",
			timing:      "Thursday to Saturday",
			gate:        paidSocial,
		},
		{
			description: "Set up a point-of-sale display",
			how:         "Put impulse items and the combo offer right next to the till.",
			owner:       3,
			lineItem:    "sales.display",
			location:    "Next to the till",
			timing:      "Week 2",
			gate:        paidOnly,
		},
	},
	lineItems: []lineItemSpec{
		{key: "sales.loyalty", item: "Loyalty cards (pack of 100)", unitCost: 12, fraction: 0.15, ceiling: 150, purpose: "Bring customers back for repeat visits", gate: always},
		{key: "sales.discounts", item: "Combo and discount fund", unitCost: 25, fraction: 0.30, ceiling: 400, purpose: "Cover the margin given away on offers", gate: always},
		{key: "sales.boost", item: "Boosted offer posts (per day)", unitCost: 10, fraction: 0.30, ceiling: 600, purpose: "Push weekend deals to nearby customers", gate: paidSocial},
		{key: "sales.display", item: "Point-of-sale display", unitCost: 35, fraction: 0.25, ceiling: 250, purpose: "Lift impulse buys at the till", gate: paidOnly},
	},
	weekly: weeklyTemplate{
		solo: [5][]string{
			{
				"Worker 1: Set up a simple combo offer and write it on the counter board",
				"Worker 1: Send a WhatsApp message with this week's offer to past customers",
				"Worker 1: Post the deal of the day on Instagram",
			},
			{
				"Worker 1: Suggest one add-on item to every customer at the counter",
				"Worker 1: Hand out loyalty cards: buy 5, get 1 free",
				"Worker 1: Share a customer photo on Facebook with their permission",
			},
			{
				"Worker 1: Track daily sales in a notebook or spreadsheet",
				"Worker 1: Draft a mid-week discount message for regulars",
				"Worker 1: Create an Instagram story counting down to the weekend deal",
			},
			{
				"Worker 1: Call five regular customers about the weekend offer",
				"Worker 1: Check which items sold least and bundle them with best-sellers",
				"Worker 1: Post a limited-time offer on social media",
			},
			{
				"Worker 1: Run the weekend deal at the counter with a visible price tag",
				"Worker 1: Analyze this week's sales against last week",
				"Worker 1: Post a thank-you note to customers on Instagram and Facebook",
			},
		},
		pair: [5][]string{
			{
				"Worker 1: Set up a simple combo offer and write it on the counter board",
				"Worker 2: Suggest one add-on item to every customer at the counter",
				"Worker 1: Post the deal of the day on Instagram",
				"Worker 2: Hand out loyalty cards: buy 5, get 1 free",
			},
			{
				"Worker 1: Send a WhatsApp message with this week's offer to past customers",
				"Worker 2: Track daily sales in a notebook or spreadsheet",
				"Worker 1: Share a customer photo on Facebook with their permission",
				"Worker 2: Restock and move best-sellers to eye level",
			},
			{
				"Worker 1: Draft a mid-week discount message for regulars",
				"Worker 2: Call five regular customers about the weekend offer",
				"Worker 1: Create an Instagram story counting down to the weekend deal",
				"Worker 2: Stamp loyalty cards and note repeat visits",
			},
			{
				"Worker 1: Check which items sold least and bundle them with best-sellers",
				"Worker 2: Prepare price tags for the weekend deal",
				"Worker 1: Post a limited-time offer on social media",
				"Worker 2: Ask paying customers if they want offer updates on WhatsApp",
			},
			{
				"Worker 1: Analyze this week's sales against last week",
				"Worker 2: Run the weekend deal at the counter with a visible price tag",
				"Worker 1: Post a thank-you note to customers on Instagram and Facebook",
				"Worker 2: Count redeemed loyalty cards and combo sales",
			},
		},
		thirdRow: [5]string{
			"Worker 3: Greet customers at the door and mention today's combo",
			"Worker 3: Pack ready-to-go bundles for busy hours",
			"Worker 3: Reply to offer enquiries on social media",
			"Worker 3: Hand out discount slips to passers-by",
			"Worker 3: Keep the sales tally during the weekend rush",
		},
	},
	roles: [3]roleSpec{
		{role: "Offers and promotions", tasks: []string{
			"Design the weekly combo offer",
			"Send offer messages on WhatsApp",
			"Post deals on Instagram and Facebook",
		}},
		{role: "Counter sales", tasks: []string{
			"Suggest add-on items at the counter",
			"Run the loyalty card scheme",
			"Track daily sales",
		}},
		{role: "Stock and displays", tasks: []string{
			"Keep best-sellers at eye level",
			"Pack ready-to-go bundles",
			"Hand out discount slips",
		}},
	},
	classification: classificationSpec{
		automated: []gatedText{
			{text: "Loyalty stamp tracking in a spreadsheet", gate: always},
			{text: "Scheduled WhatsApp offer broadcasts", gate: always},
			{text: "Daily sales tally formulas", gate: always},
		},
		aiAssisted: []gatedText{
			{text: "Writing offer messages", gate: always},
			{text: "Drafting deal-of-the-day posts", gate: socialOnly},
			{text: "Suggesting combo pairings from sales data", gate: always},
			{text: "Writing boosted post copy", gate: paidSocial},
		},
		humanOnly: []gatedText{
			{text: "Upselling at the counter", gate: always},
			{text: "Setting discount limits", gate: always},
			{text: "Handling complaints and refunds", gate: always},
			{text: "Running weekend tastings and demos", gate: fullTimeOnly},
		},
	},
	phases: [4]phaseSpec{
		{
			name:  "Launch offers",
			focus: "Put a clear offer in front of every customer",
			milestones: func(model.Constraints, model.Flags) []string {
				return []string{
					"Combo offer live at the counter",
					"Loyalty cards printed and in use",
				}
			},
		},
		{
			name:  "Drive repeat visits",
			focus: "Bring past customers back",
			milestones: func(c model.Constraints, _ model.Flags) []string {
				return []string{
					"Weekly WhatsApp offer sent to past customers",
					fmt.Sprintf("%d loyalty cards stamped at least twice", 25*c.WorkerCount),
				}
			},
		},
		{
			name:  "Raise basket size",
			focus: "Sell one more item per visit",
			milestones: func(model.Constraints, model.Flags) []string {
				return []string{
					"Add-on suggested with every sale",
					"Average bill up by a tenth",
				}
			},
		},
		{
			name:  "Measure and refine",
			focus: "Compare sales week over week and keep the winners",
			milestones: func(c model.Constraints, _ model.Flags) []string {
				return []string{
					"Weekly sales tally kept for the whole plan",
					fmt.Sprintf("Offer and promotion spend kept within %s", formatAmount(c.MonthlyBudget)),
				}
			},
		},
	},
	collaborationIdea: func(model.Flags) string {
		return "Offer a joint discount with a partner shop for shared customers"
	},
}
