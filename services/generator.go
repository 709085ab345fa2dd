package services

import (
	"math/rand"
	"strings"

	"hunter-fitness-system/models"
)

const (
	questBaseXP     = 50
	questBaseCoins  = 100
	weeklyQuestOdds = 0.2
)

// GeneratedWorkout is a workout suggestion before it is saved and cached.
type GeneratedWorkout struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Exercises   []models.Exercise `json:"exercises"`
	TargetStat  string            `json:"targetStat"`
}

// GeneratedQuest is a quest suggestion with rewards already scaled to rank.
type GeneratedQuest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Type           string `json:"type"`
	XPReward       int    `json:"xpReward"`
	CoinReward     int    `json:"coinReward"`
	TargetStat     string `json:"targetStat"`
	RequiredAmount int    `json:"requiredAmount"`
}

// Generator picks workout and quest templates for a hunter. It holds no
// state between calls; the random source is injected so tests can pin both
// the weekly/daily branch and the template index.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// highestStat returns the best stat, ties broken by the fixed priority
// order in models.Stats (strength, stamina, speed, endurance).
func highestStat(stats models.StatMap) string {
	best := models.Stats[0]
	for _, s := range models.Stats[1:] {
		if stats[s] > stats[best] {
			best = s
		}
	}
	return best
}

// lowestStat mirrors highestStat for the weakest stat.
func lowestStat(stats models.StatMap) string {
	worst := models.Stats[0]
	for _, s := range models.Stats[1:] {
		if stats[s] < stats[worst] {
			worst = s
		}
	}
	return worst
}

// RecommendWorkout builds a routine for the hunter's strongest stat from the
// (job, stat) template table, falling back to a generic three-exercise
// routine when the job has no entry.
func (g *Generator) RecommendWorkout(stats models.StatMap, rank, job string) *GeneratedWorkout {
	stat := highestStat(stats)

	if byStat, ok := workoutTemplates[job]; ok {
		if tpl, ok := byStat[stat]; ok {
			return &GeneratedWorkout{
				Title:       tpl.Title,
				Description: tpl.Description,
				Exercises:   tpl.Exercises,
				TargetStat:  stat,
			}
		}
	}

	return &GeneratedWorkout{
		Title:       job + " " + strings.ToUpper(stat[:1]) + stat[1:] + " Training",
		Description: "Personalized workout for " + rank + "-Rank " + job + " focused on " + stat,
		Exercises: []models.Exercise{
			{Name: "Push-ups", Sets: 3, Reps: "10"},
			{Name: "Squats", Sets: 3, Reps: "15"},
			{Name: "Planks", Sets: 3, Reps: "30s"},
		},
		TargetStat: stat,
	}
}

// RecommendQuest targets the hunter's weakest stat. One draw in five comes
// from the weekly pool; weekly quests double the rank-scaled rewards.
// RequiredAmount is taken verbatim from the chosen template.
func (g *Generator) RecommendQuest(stats models.StatMap, rank string) *GeneratedQuest {
	stat := lowestStat(stats)
	multiplier := models.RankIndex(rank) + 1

	var tpl questTemplate
	if g.rng.Float64() < weeklyQuestOdds {
		tpl = weeklyQuestTemplates[g.rng.Intn(len(weeklyQuestTemplates))]
	} else {
		pool := questTemplates[stat]
		tpl = pool[g.rng.Intn(len(pool))]
	}

	rewardScale := multiplier
	if tpl.Type == models.QuestTypeWeekly {
		rewardScale *= 2
	}

	return &GeneratedQuest{
		Title:          tpl.Title,
		Description:    tpl.Description,
		Type:           tpl.Type,
		XPReward:       questBaseXP * rewardScale,
		CoinReward:     questBaseCoins * rewardScale,
		TargetStat:     stat,
		RequiredAmount: tpl.RequiredAmount,
	}
}
