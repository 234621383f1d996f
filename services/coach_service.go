package services

import (
	"math/rand"
	"strings"
)

// The coach is a keyword-matched lookup table, not an inference engine. A
// message is classified into the first category whose keyword it contains;
// the reply is drawn from that category's canned pool.

type coachCategory struct {
	name     string
	keywords []string
	replies  []string
}

var coachCategories = []coachCategory{
	{
		name:     "nutrition",
		keywords: []string{"eat", "food", "meal", "diet", "calorie", "protein", "carb", "nutrition", "hungry"},
		replies: []string{
			"Aim to fill half your plate with vegetables, a quarter with lean protein and a quarter with whole grains.",
			"Protein at every meal keeps you full longer — eggs, yogurt, chicken or tofu are easy wins.",
			"Logging your meals for a week is the fastest way to spot where extra calories sneak in.",
		},
	},
	{
		name:     "workout",
		keywords: []string{"workout", "exercise", "train", "gym", "run", "lift", "cardio", "strength"},
		replies: []string{
			"Consistency beats intensity: three moderate sessions a week outwork one heroic one.",
			"Mix strength and cardio across the week — your dashboard's count-by-type chart shows the balance.",
			"Schedule workouts like appointments. A plan with fixed days is far easier to keep.",
		},
	},
	{
		name:     "sleep",
		keywords: []string{"sleep", "tired", "rest", "recovery", "fatigue"},
		replies: []string{
			"Recovery is training too. Aim for 7–9 hours and keep your bedtime consistent.",
			"Feeling drained often means under-recovery, not under-training. Check your sleep hours trend first.",
		},
	},
	{
		name:     "hydration",
		keywords: []string{"water", "drink", "hydrate", "thirsty"},
		replies: []string{
			"A glass of water with every meal and every workout gets most people to their daily target.",
			"Your water streak resets at midnight — log as you drink, not at the end of the day.",
		},
	},
	{
		name:     "motivation",
		keywords: []string{"motivat", "goal", "give up", "streak", "progress", "stuck"},
		replies: []string{
			"Look at your progress chart over weeks, not days — trends motivate, snapshots discourage.",
			"Small goals you hit beat big goals you miss. Try a 7-day streak before a 30-day one.",
			"Plateaus are normal. Change one variable — duration, intensity or type — and give it two weeks.",
		},
	},
}

var coachFallbacks = []string{
	"I can help with nutrition, workouts, sleep, hydration and motivation. What's on your mind?",
	"Tell me a bit more — are you asking about food, training or recovery?",
}

type CoachService struct{}

func NewCoachService() *CoachService { return &CoachService{} }

// Reply classifies the message and returns the matched category alongside a
// canned response; the category is "general" when nothing matches.
func (s *CoachService) Reply(message string) (string, string) {
	lower := strings.ToLower(message)
	for _, cat := range coachCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.name, cat.replies[rand.Intn(len(cat.replies))]
			}
		}
	}
	return "general", coachFallbacks[rand.Intn(len(coachFallbacks))]
}
