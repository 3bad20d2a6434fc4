package planner

import (
	"strings"

	"basegraph.app/growthplan/internal/model"
)

var categoryLabels = map[model.BusinessCategory]string{
	model.BusinessCategoryBakery:     "bakery",
	model.BusinessCategoryRepairShop: "repair shop",
	model.BusinessCategoryCoolDrinks: "cool drinks shop",
	model.BusinessCategoryOther:      "local business",
}

var categoryInsights = map[model.BusinessCategory]string{
	model.BusinessCategoryBakery:     "Fresh items sell on smell and sight, so morning photos and a visible daily special do most of the work.",
	model.BusinessCategoryRepairShop: "Customers pick repair shops they trust, so reviews, clear prices and quick turnaround matter most.",
	model.BusinessCategoryCoolDrinks: "Sales follow the weather and foot traffic, so timing offers for hot afternoons pays off.",
	model.BusinessCategoryOther:      "Neighbours are the first customers, so being easy to find and easy to recommend comes first.",
}

var captionSuggestions = map[model.BusinessCategory][]string{
	model.BusinessCategoryBakery: {
		"Fresh out of the oven: come by before they are gone!",
		"Your morning needs this. Baked today, just around the corner.",
		"Tag a friend who deserves a treat this week.",
	},
	model.BusinessCategoryRepairShop: {
		"Cracked screen? Most repairs are done the same day.",
		"Before you buy new, let us take a look. Honest quotes, no surprises.",
		"Another phone back in action. What can we fix for you?",
	},
	model.BusinessCategoryCoolDrinks: {
		"Beat the heat with something cold, made fresh to order.",
		"Afternoon slump? Our chilled specials are waiting.",
		"Bring a friend and try this week's new flavour.",
	},
	model.BusinessCategoryOther: {
		"Your neighbourhood shop, here for you every day.",
		"Drop in this week and see what is new.",
		"Thank you for shopping local. It means the world to us.",
	},
}

var collaborationIdeas = map[model.BusinessCategory][]string{
	model.BusinessCategoryBakery: {
		"Supply pastries to a nearby coffee shop in exchange for their flyers at your counter",
		"Offer a morning bundle with a newsagent or tea stall next door",
		"Bake a small tray for a local school or office event with your name on the box",
	},
	model.BusinessCategoryRepairShop: {
		"Agree referrals with a phone accessories shop nearby",
		"Offer a discount to students at the closest college",
		"Leave cards with electronics sellers who do not do repairs",
	},
	model.BusinessCategoryCoolDrinks: {
		"Pair up with a snack stall for a drink and snack combo",
		"Supply chilled drinks to a nearby gym or sports ground",
		"Set up at a local event or match day with the organiser's permission",
	},
	model.BusinessCategoryOther: {
		"Swap flyers with a shop that serves the same customers",
		"Join or start a local shopkeepers' group for shared promotions",
		"Sponsor a small community event in exchange for a mention",
	},
}

var (
	checklistGoogleProfile = []string{
		"Business name and category are correct",
		"Opening hours and phone number are filled in",
		"At least five recent photos are uploaded",
		"Every review from the last month has a reply",
	}
	checklistFlyer = []string{
		"Shop name, address and phone are easy to read",
		"One clear offer with an end date",
		"Print only as many as can be handed out this week",
	}
	checklistOffer = []string{
		"Price and end date are written clearly",
		"Margin after discount is still positive",
		"Everyone at the counter knows the offer",
	}
)

// taskContent attaches drafted captions to prepared social tasks and checklists to
// profile, flyer and offer tasks. It returns nil when there is nothing to attach.
func taskContent(text string, weekly model.WeeklyTaskCategory, category model.BusinessCategory) *model.TaskContent {
	lower := strings.ToLower(text)
	content := &model.TaskContent{}

	if weekly == model.WeeklyTaskAIPrepared && IsSocialMediaTask(text) {
		content.Captions = append([]string(nil), captionSuggestions[category]...)
	}
	switch {
	case strings.Contains(lower, "google business profile"):
		content.Checklist = append([]string(nil), checklistGoogleProfile...)
	case strings.Contains(lower, "flyer"):
		content.Checklist = append([]string(nil), checklistFlyer...)
	case containsAny(lower, []string{"offer", "deal", "discount", "combo"}):
		content.Checklist = append([]string(nil), checklistOffer...)
	}

	if len(content.Captions) == 0 && len(content.Checklist) == 0 {
		return nil
	}
	return content
}

func buildCollaborationIdeas(s *strategy, f model.Flags, category model.BusinessCategory) []string {
	ideas := append([]string(nil), collaborationIdeas[category]...)
	return append(ideas, s.collaborationIdea(f))
}
