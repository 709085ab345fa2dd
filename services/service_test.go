package services

import (
	"testing"

	"hunter-fitness-system/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Quest{},
		&models.UserQuest{},
		&models.Workout{},
		&models.ShopItem{},
		&models.UserItem{},
		&models.Event{},
	))
	return db
}

// createHunter inserts a hunter with explicit progression state.
func createHunter(t *testing.T, db *gorm.DB, username, rank, job string, level, xp, coins int, stats models.StatMap) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		PasswordHash: "x",
		Rank:         rank,
		Job:          job,
		Level:        level,
		XP:           xp,
		Coins:        coins,
		Stats:        stats,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func allStats(v int) models.StatMap {
	return models.StatMap{"strength": v, "stamina": v, "speed": v, "endurance": v}
}
