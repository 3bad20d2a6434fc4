package planner

import (
	"fmt"

	"basegraph.app/growthplan/internal/model"
)

var visibilityStrategy = &strategy{
	goal:  model.GrowthGoalVisibility,
	title: "Visibility",
	aim:   "make more nearby people aware of %s and able to find it online and on the street",
	methods: []methodSpec{
		{
			description: "Claim and complete the Google Business Profile",
			how:         "Add opening hours, phone number, five clear photos and the right category so the shop shows up in nearby searches.",
			owner:       1,
			location:    "Google Maps and Search",
			timing:      "Week 1, about 45 minutes",
			gate:        always,
		},
		{
			description: "Post on Instagram and Facebook three times a week",
			how:         "Rotate a product photo, a behind-the-scenes moment and a customer favourite. Use the drafted captions and edit them in your own voice.",
			owner:       1,
			location:    "Instagram and Facebook",
			timing:      "Monday, Wednesday and Friday, 15 minutes each",
			gate:        socialOnly,
		},
		{
			description: "Put up a clear shop-front sign",
			how:         "Make the shop name and one line about what you sell readable from across the street.",
			owner:       2,
			lineItem:    "visibility.sign",
			location:    "Shop front",
			timing:      "Week 1",
			gate:        always,
		},
		{
			description: "Hand out flyers to neighbours",
			how:         "Give flyers to shops, offices and colleges within a ten-minute walk, with one offer and an end date.",
			owner:       2,
			lineItem:    "visibility.flyers",
			location:    "Within a ten-minute walk",
			timing:      "Every Tuesday",
			gate:        always,
		},
		{
			description: "Run a small local ad",
			how:         "Boost your best post to people within 3 km for a few days and stop if it brings no new faces.",
			owner:       1,
			lineItem:    "visibility.ads",
			location:    "Instagram and Facebook, 3 km radius",
			timing:      "Weeks 2 to 4",
			gate:        paidSocial,
		},
		{
			description: "List the shop in free local directories",
			how:         "Add the same name, address and phone to two free directories and local community groups.",
			owner:       1,
			location:    "Online directories",
			timing:      "Week 2",
			gate:        always,
		},
		{
			description: "Style products for better photos",
			how:         "Use a plain background, daylight and a few simple props so every photo looks like the shop.",
			owner:       3,
			lineItem:    "visibility.props",
			timing:      "Week 2, then reuse",
			gate:        paidOnly,
		},
	},
	lineItems: []lineItemSpec{
		{key: "visibility.sign", item: "Shop-front sign or banner", unitCost: 40, fraction: 0.30, ceiling: 300, purpose: "Make the shop easy to spot from the street", gate: always},
		{key: "visibility.flyers", item: "Printed flyers (pack of 100)", unitCost: 15, fraction: 0.25, ceiling: 150, purpose: "Reach neighbours and passers-by", gate: always},
		{key: "visibility.ads", item: "Local ad boost (per day)", unitCost: 10, fraction: 0.30, ceiling: 500, purpose: "Show the best post to people within 3 km", gate: paidSocial},
		{key: "visibility.props", item: "Photo props and backdrop", unitCost: 20, fraction: 0.20, ceiling: 200, purpose: "Consistent product photos for listings and posts", gate: paidOnly},
	},
	weekly: weeklyTemplate{
		solo: [5][]string{
			{
				"Worker 1: Update the Google Business Profile with opening hours, phone number and five fresh photos",
				"Worker 1: Post a shop-front photo on Instagram with a short welcome caption",
				"Worker 1: Write a one-line offer for the board outside the shop",
			},
			{
				"Worker 1: Hand 20 flyers to neighbouring shops and offices",
				"Worker 1: Reply to every Google review from the last month",
				"Worker 1: Share a behind-the-scenes story on Facebook",
			},
			{
				"Worker 1: Ask three regular customers to leave a Google review",
				"Worker 1: Create a short Instagram reel showing your best-selling item",
				"Worker 1: List the shop on two free local directories",
			},
			{
				"Worker 1: Take clear photos of five products in daylight",
				"Worker 1: Draft a caption for Friday's social media post",
				"Worker 1: Check which posts got the most views this week",
			},
			{
				"Worker 1: Put up a poster on the nearest community notice board",
				"Worker 1: Post the weekend offer on Instagram and Facebook",
				"Worker 1: Count new customers who said they found you online",
			},
		},
		pair: [5][]string{
			{
				"Worker 1: Update the Google Business Profile with opening hours, phone number and five fresh photos",
				"Worker 2: Hand 20 flyers to neighbouring shops and offices",
				"Worker 1: Post a shop-front photo on Instagram with a short welcome caption",
				"Worker 2: Write a one-line offer for the board outside the shop",
			},
			{
				"Worker 1: Reply to every Google review from the last month",
				"Worker 2: Ask three regular customers to leave a Google review",
				"Worker 1: Share a behind-the-scenes story on Facebook",
				"Worker 2: Take clear photos of five products in daylight",
			},
			{
				"Worker 1: List the shop on two free local directories",
				"Worker 2: Visit two nearby businesses to swap flyers",
				"Worker 1: Create a short Instagram reel showing your best-selling item",
				"Worker 2: Greet walk-ins and ask how they heard about the shop",
			},
			{
				"Worker 1: Check which posts got the most views this week",
				"Worker 2: Put up a poster on the nearest community notice board",
				"Worker 1: Draft a caption for Friday's social media post",
				"Worker 2: Tidy the shop front and window display",
			},
			{
				"Worker 1: Count new customers who said they found you online",
				"Worker 2: Hand 20 flyers near the busiest street corner",
				"Worker 1: Post the weekend offer on Instagram and Facebook",
				"Worker 2: Note customer questions to answer in next week's posts",
			},
		},
		thirdRow: [5]string{
			"Worker 3: Photograph the shop interior for the Google profile",
			"Worker 3: Hand 20 flyers at the nearest bus stop or college gate",
			"Worker 3: Collect phone numbers of customers who want offer updates",
			"Worker 3: Reply to comments and messages on social media",
			"Worker 3: Restock flyers and signs for next week",
		},
	},
	roles: [3]roleSpec{
		{role: "Online presence lead", tasks: []string{
			"Keep the Google Business Profile up to date",
			"Post three times a week on Instagram and Facebook",
			"Reply to reviews within a day",
		}},
		{role: "Local outreach", tasks: []string{
			"Hand out flyers to nearby shops and offices",
			"Ask happy customers for reviews",
			"Keep the shop front clean and well signed",
		}},
		{role: "Customer follow-up", tasks: []string{
			"Collect customer contacts for offer updates",
			"Photograph products and the shop",
			"Greet walk-ins and ask how they found you",
		}},
	},
	classification: classificationSpec{
		automated: []gatedText{
			{text: "Scheduled Google Business Profile updates", gate: always},
			{text: "Auto-reply to new messages with opening hours", gate: always},
			{text: "Scheduled Instagram and Facebook posts", gate: socialOnly},
		},
		aiAssisted: []gatedText{
			{text: "Drafting social media captions", gate: socialOnly},
			{text: "Writing flyer copy", gate: always},
			{text: "Drafting replies to reviews", gate: always},
			{text: "Picking the best post to boost", gate: paidSocial},
		},
		humanOnly: []gatedText{
			{text: "Talking to neighbouring shop owners", gate: always},
			{text: "Taking product photos", gate: always},
			{text: "Approving every public post and reply", gate: always},
			{text: "Handing out flyers", gate: always},
		},
	},
	phases: [4]phaseSpec{
		{
			name:  "Set up presence",
			focus: "Get found online and on the street",
			milestones: func(c model.Constraints, _ model.Flags) []string {
				return []string{
					"Google Business Profile complete with hours, phone and photos",
					fmt.Sprintf("First %d flyers handed out", 20*c.WorkerCount),
				}
			},
		},
		{
			name:  "Build habits",
			focus: "Show up on a steady weekly rhythm",
			milestones: func(c model.Constraints, f model.Flags) []string {
				m := []string{fmt.Sprintf("%d new Google reviews", 5*c.WorkerCount)}
				if f.CanDoSocialMedia {
					m = append(m, "Three posts a week for two weeks running")
				} else {
					m = append(m, "A flyer round every week")
				}
				return m
			},
		},
		{
			name:  "Grow reach",
			focus: "Widen the circle beyond regulars",
			milestones: func(model.Constraints, model.Flags) []string {
				return []string{
					"Two local directory listings live",
					"One cross-promotion with a neighbouring business",
				}
			},
		},
		{
			name:  "Measure and refine",
			focus: "Keep what brings people in and drop the rest",
			milestones: func(c model.Constraints, _ model.Flags) []string {
				return []string{
					"Count customers who found the shop online or through a flyer",
					fmt.Sprintf("Visibility spend kept within %s", formatAmount(c.MonthlyBudget)),
				}
			},
		},
	},
	collaborationIdea: func(f model.Flags) string {
		if f.CanDoSocialMedia {
			return "Share each other's posts with a nearby business on social media"
		}
		return "Keep each other's cards at the counter with a nearby business"
	},
}
