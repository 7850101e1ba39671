// Package catalog holds the static list of purchasable lesson plans.
package catalog

import "github.com/BERSERKRobot/chess-website-v2/internal/domain"

var plans = []domain.Plan{
	{
		ID:           "single-lesson",
		Name:         "Single Lesson",
		Price:        70,
		DisplayPrice: "$70",
		Description:  "Perfect for trying out our lessons",
		Features: []string{
			"One-on-one instruction",
			"Personalized lesson plan",
			"Focus on your specific needs",
			"Email support",
		},
	},
	{
		ID:             "5-lessons",
		Name:           "5 Lesson Package",
		Price:          325,
		DisplayPrice:   "$325",
		PricePerLesson: "$65 per lesson",
		Description:    "Our most popular option",
		Features: []string{
			"One-on-one instruction",
			"Personalized lesson plan",
			"Game analysis",
			"Homework assignments",
			"Priority email support",
		},
		Popular: true,
	},
	{
		ID:             "10-lessons",
		Name:           "10 Lesson Package",
		Price:          600,
		DisplayPrice:   "$600",
		PricePerLesson: "$60 per lesson",
		Description:    "Best value for serious students",
		Features: []string{
			"One-on-one instruction",
			"Comprehensive improvement plan",
			"Unlimited game analysis",
			"Tournament preparation",
			"Opening repertoire development",
			"24/7 coach access",
		},
	},
}

// Plans returns all plans in display order. Callers must not mutate the
// returned slice.
func Plans() []domain.Plan {
	return plans
}

// FindPlan looks a plan up by id.
func FindPlan(id string) (domain.Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Plan{}, false
}
