package services

import (
	"time"

	"hunter-fitness-system/config"
	"hunter-fitness-system/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Seed populates an empty database with the bootstrap admin and demo
// hunters plus starter content. It is idempotent: any existing user row
// disables it, so restarts never duplicate content. Seeding is also skipped
// when no admin password is configured.
func Seed(db *gorm.DB, users *UserService, cfg *config.Config) error {
	if cfg.AdminPassword == "" {
		log.Warn().Msg("SEED_ADMIN_PASSWORD not set, skipping database seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := users.Register(cfg.AdminUsername, cfg.AdminPassword, true); err != nil {
		return err
	}
	if cfg.DemoPassword != "" {
		if _, err := users.Register(cfg.DemoUsername, cfg.DemoPassword, false); err != nil {
			return err
		}
	}

	workouts := []models.Workout{
		{
			Title:       "Novice Strength Training",
			Description: "Basic strength training for beginners",
			Exercises: models.ExerciseList{
				{Name: "Push-ups", Sets: 3, Reps: "10"},
				{Name: "Squats", Sets: 3, Reps: "15"},
				{Name: "Planks", Sets: 3, Reps: "30s"},
			},
			TargetStat: "strength",
			TargetRank: "E",
			TargetJob:  "Novice Hunter",
		},
		{
			Title:       "Berserker Strength Routine",
			Description: "Designed for B-Rank hunters to maximize strength gains",
			Exercises: models.ExerciseList{
				{Name: "Bench Press", Sets: 4, Reps: "8"},
				{Name: "Barbell Squat", Sets: 4, Reps: "10"},
				{Name: "Deadlift", Sets: 3, Reps: "6"},
				{Name: "Pull-ups", Sets: 3, Reps: "Max"},
			},
			TargetStat: "strength",
			TargetRank: "B",
			TargetJob:  "Berserker",
		},
	}
	if err := db.Create(&workouts).Error; err != nil {
		return err
	}

	items := []models.ShopItem{
		{Name: "XP Booster", Description: "Double XP for a day", Price: 500, Type: models.ItemTypeBooster, EffectValue: 2},
		{Name: "Cosmic Avatar", Description: "Exclusive cosmic-themed avatar", Price: 1000, Type: models.ItemTypeCosmetic, EffectValue: 0},
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	now := time.Now()
	rankUpStart := now.Add(2 * 24 * time.Hour)
	rankUpEnd := now.Add(5 * 24 * time.Hour)
	doubleXPStart := now.Add(5 * 24 * time.Hour)
	doubleXPEnd := now.Add(7 * 24 * time.Hour)
	events := []models.Event{
		{
			Title:       "Rank Up Challenge",
			Description: "Complete special tasks to advance to A-Rank",
			StartDate:   &rankUpStart,
			EndDate:     &rankUpEnd,
			Type:        "rankup",
		},
		{
			Title:       "Double XP Weekend",
			Description: "All workouts earn 2x XP for the weekend",
			StartDate:   &doubleXPStart,
			EndDate:     &doubleXPEnd,
			Type:        "doublexp",
		},
	}
	if err := db.Create(&events).Error; err != nil {
		return err
	}

	log.Info().Msg("database seeded with starter hunters, workouts, items and events")
	return nil
}
