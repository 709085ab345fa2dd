package services

import "hunter-fitness-system/models"

// workoutTemplate is a static routine keyed by (job, stat).
type workoutTemplate struct {
	Title       string
	Description string
	Exercises   []models.Exercise
}

// questTemplate is a static objective; rewards are scaled at pick time.
type questTemplate struct {
	Title          string
	Description    string
	Type           string
	RequiredAmount int
}

var workoutTemplates = map[string]map[string]workoutTemplate{
	"Novice Hunter": {
		"strength": {
			Title:       "Novice Strength Builder",
			Description: "Basic strength training for beginners",
			Exercises: []models.Exercise{
				{Name: "Push-ups", Sets: 3, Reps: "10"},
				{Name: "Bodyweight Squats", Sets: 3, Reps: "15"},
				{Name: "Planks", Sets: 3, Reps: "30s"},
			},
		},
		"stamina": {
			Title:       "Novice Endurance Training",
			Description: "Basic stamina building for beginners",
			Exercises: []models.Exercise{
				{Name: "Jumping Jacks", Sets: 3, Reps: "30s"},
				{Name: "High Knees", Sets: 3, Reps: "30s"},
				{Name: "Jogging in Place", Sets: 3, Reps: "1m"},
			},
		},
		"speed": {
			Title:       "Novice Speed Training",
			Description: "Basic speed development for beginners",
			Exercises: []models.Exercise{
				{Name: "Burpees", Sets: 3, Reps: "10"},
				{Name: "Mountain Climbers", Sets: 3, Reps: "15 each leg"},
				{Name: "Jump Rope", Sets: 3, Reps: "30s"},
			},
		},
		"endurance": {
			Title:       "Novice Endurance Builder",
			Description: "Basic endurance training for beginners",
			Exercises: []models.Exercise{
				{Name: "Wall Sit", Sets: 3, Reps: "30s"},
				{Name: "Bicycle Crunches", Sets: 3, Reps: "15 each side"},
				{Name: "Plank Shoulder Taps", Sets: 3, Reps: "10 each arm"},
			},
		},
	},
	"Assassin": {
		"strength": {
			Title:       "Assassin's Strength Circuit",
			Description: "Focused strength training for Assassin-class hunters",
			Exercises: []models.Exercise{
				{Name: "Pull-ups", Sets: 3, Reps: "8"},
				{Name: "Push-ups with Clap", Sets: 3, Reps: "12"},
				{Name: "Pistol Squats", Sets: 2, Reps: "5 each leg"},
			},
		},
		"stamina": {
			Title:       "Assassin's Stamina Builder",
			Description: "Specialized stamina training for Assassin-class hunters",
			Exercises: []models.Exercise{
				{Name: "Box Jumps", Sets: 4, Reps: "12"},
				{Name: "Burpees", Sets: 3, Reps: "15"},
				{Name: "Jump Rope - Double Unders", Sets: 3, Reps: "30s"},
			},
		},
		"speed": {
			Title:       "Shadow Step Training",
			Description: "Advanced speed drills for Assassin-class hunters",
			Exercises: []models.Exercise{
				{Name: "High-Knee Sprints", Sets: 5, Reps: "20s"},
				{Name: "Lateral Jumps", Sets: 4, Reps: "10 each side"},
				{Name: "Agility Ladder Drills", Sets: 3, Reps: "30s"},
			},
		},
		"endurance": {
			Title:       "Assassin's Endurance Protocol",
			Description: "Endurance training designed for Assassin-class hunters",
			Exercises: []models.Exercise{
				{Name: "Wall Climb", Sets: 3, Reps: "45s"},
				{Name: "Hanging Leg Raises", Sets: 3, Reps: "12"},
				{Name: "Side Plank with Rotation", Sets: 3, Reps: "10 each side"},
			},
		},
	},
	"Berserker": {
		"strength": {
			Title:       "Berserker's Rage Circuit",
			Description: "Extreme strength training for Berserker-class hunters",
			Exercises: []models.Exercise{
				{Name: "Deadlifts", Sets: 5, Reps: "5"},
				{Name: "Weighted Push-ups", Sets: 4, Reps: "8"},
				{Name: "Kettlebell Swings", Sets: 3, Reps: "15"},
			},
		},
		"stamina": {
			Title:       "Berserker Stamina Challenge",
			Description: "High-intensity stamina training for Berserker-class hunters",
			Exercises: []models.Exercise{
				{Name: "Battle Ropes", Sets: 3, Reps: "30s"},
				{Name: "Sledgehammer Strikes", Sets: 3, Reps: "15 each side"},
				{Name: "Tire Flips", Sets: 3, Reps: "8"},
			},
		},
		"speed": {
			Title:       "Berserker Speed Drills",
			Description: "Power-focused speed training for Berserker-class hunters",
			Exercises: []models.Exercise{
				{Name: "Box Jumps", Sets: 4, Reps: "8"},
				{Name: "Medicine Ball Slams", Sets: 3, Reps: "12"},
				{Name: "Explosive Push-ups", Sets: 3, Reps: "10"},
			},
		},
		"endurance": {
			Title:       "Berserker Endurance Protocol",
			Description: "Brutal endurance training for Berserker-class hunters",
			Exercises: []models.Exercise{
				{Name: "Farmer's Carry", Sets: 3, Reps: "40s"},
				{Name: "Weighted Planks", Sets: 3, Reps: "45s"},
				{Name: "Sandbag Carries", Sets: 3, Reps: "30s"},
			},
		},
	},
	"Mage": {
		"strength": {
			Title:       "Mage's Core Strengthening",
			Description: "Core-focused strength training for Mage-class hunters",
			Exercises: []models.Exercise{
				{Name: "Stability Ball Crunches", Sets: 3, Reps: "15"},
				{Name: "Medicine Ball Russian Twists", Sets: 3, Reps: "12 each side"},
				{Name: "Plank with Leg Lift", Sets: 3, Reps: "8 each leg"},
			},
		},
		"stamina": {
			Title:       "Mage's Energy Flow Circuit",
			Description: "Flow-based stamina training for Mage-class hunters",
			Exercises: []models.Exercise{
				{Name: "Sun Salutations", Sets: 3, Reps: "5 complete flows"},
				{Name: "Deep Breathing Squats", Sets: 3, Reps: "12"},
				{Name: "Flow Burpees", Sets: 3, Reps: "10"},
			},
		},
		"speed": {
			Title:       "Mage's Quick Cast Training",
			Description: "Reaction-based speed training for Mage-class hunters",
			Exercises: []models.Exercise{
				{Name: "Agility Ladder Drills", Sets: 4, Reps: "30s"},
				{Name: "Reaction Ball Drills", Sets: 3, Reps: "45s"},
				{Name: "Direction Change Sprints", Sets: 4, Reps: "15s"},
			},
		},
		"endurance": {
			Title:       "Mage's Mana Extension",
			Description: "Mental and physical endurance training for Mage-class hunters",
			Exercises: []models.Exercise{
				{Name: "Breathing Planks", Sets: 3, Reps: "60s"},
				{Name: "Wall Sits with Arm Extension", Sets: 3, Reps: "45s"},
				{Name: "Meditation Squat Holds", Sets: 3, Reps: "60s"},
			},
		},
	},
	"Tank": {
		"strength": {
			Title:       "Tank's Fortress Builder",
			Description: "Heavy strength training for Tank-class hunters",
			Exercises: []models.Exercise{
				{Name: "Goblet Squats", Sets: 4, Reps: "10"},
				{Name: "Dumbbell Rows", Sets: 3, Reps: "12 each arm"},
				{Name: "Weighted Lunges", Sets: 3, Reps: "10 each leg"},
			},
		},
		"stamina": {
			Title:       "Tank's Resilience Circuit",
			Description: "Stamina training for Tank-class hunters",
			Exercises: []models.Exercise{
				{Name: "Weighted Step-ups", Sets: 3, Reps: "12 each leg"},
				{Name: "Rucksack Walks", Sets: 3, Reps: "2 minutes"},
				{Name: "Wall Ball Shots", Sets: 3, Reps: "15"},
			},
		},
		"speed": {
			Title:       "Tank's Defensive Movement",
			Description: "Agility-focused speed training for Tank-class hunters",
			Exercises: []models.Exercise{
				{Name: "Lateral Shuffles", Sets: 4, Reps: "20s each direction"},
				{Name: "Defensive Slides", Sets: 3, Reps: "30s"},
				{Name: "Quick Direction Changes", Sets: 4, Reps: "15s"},
			},
		},
		"endurance": {
			Title:       "Tank's Unbreakable Protocol",
			Description: "Extreme endurance training for Tank-class hunters",
			Exercises: []models.Exercise{
				{Name: "Weighted Vest Walk", Sets: 2, Reps: "5 minutes"},
				{Name: "Farmer's Carry", Sets: 3, Reps: "60s"},
				{Name: "Weighted Plank", Sets: 3, Reps: "60s"},
			},
		},
	},
	"Warlock": {
		"strength": {
			Title:       "Warlock's Dark Power",
			Description: "Mysterious strength training for Warlock-class hunters",
			Exercises: []models.Exercise{
				{Name: "Weighted Pull-ups", Sets: 4, Reps: "8"},
				{Name: "Skull Crushers", Sets: 3, Reps: "12"},
				{Name: "Dragon Flags", Sets: 3, Reps: "6"},
			},
		},
		"stamina": {
			Title:       "Warlock's Mana Circuit",
			Description: "Dark energy stamina training for Warlock-class hunters",
			Exercises: []models.Exercise{
				{Name: "Shadow Boxing", Sets: 3, Reps: "45s"},
				{Name: "Tabata Protocol", Sets: 4, Reps: "20s work/10s rest"},
				{Name: "Circuit Training", Sets: 2, Reps: "3 minutes"},
			},
		},
		"speed": {
			Title:       "Warlock's Shadow Step",
			Description: "Supernatural speed training for Warlock-class hunters",
			Exercises: []models.Exercise{
				{Name: "Shadow Sprints", Sets: 5, Reps: "15s"},
				{Name: "Bounding Leaps", Sets: 4, Reps: "8 each leg"},
				{Name: "Explosive Transitions", Sets: 3, Reps: "10"},
			},
		},
		"endurance": {
			Title:       "Warlock's Eternal Darkness",
			Description: "Soul-draining endurance training for Warlock-class hunters",
			Exercises: []models.Exercise{
				{Name: "Weighted Wall Sits", Sets: 3, Reps: "90s"},
				{Name: "L-Sit Progression", Sets: 3, Reps: "30s"},
				{Name: "Hollow Body Holds", Sets: 3, Reps: "60s"},
			},
		},
	},
	"Shadow Monarch": {
		"strength": {
			Title:       "Monarch's Domain",
			Description: "Ultimate strength training for Shadow Monarch-class hunters",
			Exercises: []models.Exercise{
				{Name: "Weighted Muscle-ups", Sets: 4, Reps: "6"},
				{Name: "Heavy Deadlifts", Sets: 5, Reps: "5"},
				{Name: "One-Arm Push-up Progression", Sets: 3, Reps: "5 each arm"},
			},
		},
		"stamina": {
			Title:       "Arise Protocol",
			Description: "Ultimate stamina building for Shadow Monarch-class hunters",
			Exercises: []models.Exercise{
				{Name: "Hurricane Training", Sets: 3, Reps: "2 minutes"},
				{Name: "CrossFit WOD", Sets: 1, Reps: "10 minute AMRAP"},
				{Name: "VO2 Max Training", Sets: 4, Reps: "4 minute cycles"},
			},
		},
		"speed": {
			Title:       "Shadow Rush",
			Description: "Supernatural speed development for Shadow Monarch-class hunters",
			Exercises: []models.Exercise{
				{Name: "Flying Sprints", Sets: 6, Reps: "20s"},
				{Name: "Depth Jumps", Sets: 4, Reps: "8"},
				{Name: "Olympic Lifts", Sets: 4, Reps: "5"},
			},
		},
		"endurance": {
			Title:       "Eternal Monarch",
			Description: "God-tier endurance training for Shadow Monarch-class hunters",
			Exercises: []models.Exercise{
				{Name: "Iron Crucible", Sets: 3, Reps: "2 minutes"},
				{Name: "Mace 360s", Sets: 3, Reps: "20 each direction"},
				{Name: "Loaded Carries Complex", Sets: 2, Reps: "5 minutes"},
			},
		},
	},
}

var questTemplates = map[string][]questTemplate{
	"strength": {
		{Title: "Power Within", Description: "Complete strength exercises to unlock your hidden potential", Type: models.QuestTypeDaily, RequiredAmount: 5},
		{Title: "Mighty Hunter", Description: "Demonstrate your strength through intense training", Type: models.QuestTypeDaily, RequiredAmount: 8},
		{Title: "Surge of Power", Description: "Push your strength to new limits with focused exercises", Type: models.QuestTypeDaily, RequiredAmount: 10},
	},
	"stamina": {
		{Title: "Endless Energy", Description: "Build your stamina through persistent training", Type: models.QuestTypeDaily, RequiredAmount: 6},
		{Title: "Breathing Control", Description: "Master your stamina through controlled breathing exercises", Type: models.QuestTypeDaily, RequiredAmount: 8},
		{Title: "Mana Extension", Description: "Expand your energy reserves through challenging stamina drills", Type: models.QuestTypeDaily, RequiredAmount: 12},
	},
	"speed": {
		{Title: "Lightning Reflexes", Description: "Sharpen your speed with quick, explosive movements", Type: models.QuestTypeDaily, RequiredAmount: 5},
		{Title: "Shadow Step", Description: "Move like a shadow with these speed-enhancing exercises", Type: models.QuestTypeDaily, RequiredAmount: 8},
		{Title: "Time Warp", Description: "Train to move so fast that time seems to slow down around you", Type: models.QuestTypeDaily, RequiredAmount: 15},
	},
	"endurance": {
		{Title: "Unbreakable", Description: "Build your endurance to withstand any challenge", Type: models.QuestTypeDaily, RequiredAmount: 7},
		{Title: "Last Hunter Standing", Description: "Outlast your opponents by building superior endurance", Type: models.QuestTypeDaily, RequiredAmount: 10},
		{Title: "Eternal Guardian", Description: "Train your body to overcome any endurance challenge", Type: models.QuestTypeDaily, RequiredAmount: 12},
	},
}

var weeklyQuestTemplates = []questTemplate{
	{Title: "Gate Clearing", Description: "A dangerous gate has appeared! Complete a full week of training to close it", Type: models.QuestTypeWeekly, RequiredAmount: 25},
	{Title: "Hunter Association Challenge", Description: "The Hunter Association has issued a special training challenge", Type: models.QuestTypeWeekly, RequiredAmount: 30},
	{Title: "Dungeon Break", Description: "A dungeon break has occurred! Train intensely to handle the crisis", Type: models.QuestTypeWeekly, RequiredAmount: 35},
}
