package services

import (
	"testing"
	"time"

	"hunter-fitness-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuestService(t *testing.T) (*QuestService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewQuestService(db, NewGenerator(dailyRNG()), NewProgressionService(db)), db
}

func makeQuest(t *testing.T, db *gorm.DB, targetStat string, required int, expiresAt time.Time) *models.Quest {
	t.Helper()
	quest := &models.Quest{
		Title: "t", Description: "d", Type: models.QuestTypeDaily,
		XPReward: 50, CoinReward: 100, TargetStat: targetStat,
		RequiredAmount: required, ExpiresAt: expiresAt,
	}
	require.NoError(t, db.Create(quest).Error)
	return quest
}

func TestListActiveQuests(t *testing.T) {
	svc, db := newQuestService(t)
	live := makeQuest(t, db, "strength", 5, time.Now().Add(time.Hour))
	makeQuest(t, db, "speed", 5, time.Now().Add(-time.Hour))

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, live.ID, active[0].ID)
}

func TestAcceptQuest(t *testing.T) {
	svc, db := newQuestService(t)
	user := createHunter(t, db, "acc", "E", "Novice Hunter", 1, 0, 100, allStats(10))
	quest := makeQuest(t, db, "strength", 5, time.Now().Add(time.Hour))

	uq, err := svc.Accept(user.ID, quest.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, uq.Progress)
	assert.False(t, uq.Completed)

	t.Run("second accept is rejected", func(t *testing.T) {
		_, err := svc.Accept(user.ID, quest.ID)
		assert.ErrorIs(t, err, ErrQuestAlreadyAccepted)
	})

	t.Run("unknown quest", func(t *testing.T) {
		_, err := svc.Accept(user.ID, 999)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestPatchUserQuest(t *testing.T) {
	svc, db := newQuestService(t)
	user := createHunter(t, db, "pat", "E", "Novice Hunter", 1, 0, 100, allStats(10))
	quest := makeQuest(t, db, "stamina", 10, time.Now().Add(time.Hour))
	uq, err := svc.Accept(user.ID, quest.ID)
	require.NoError(t, err)

	progress := 4
	updated, err := svc.PatchUserQuest(uq.ID, &models.UserQuestPatchRequest{Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Progress)
	assert.False(t, updated.Completed)

	// Flipping completed pays out: 50 XP, 100 coins, ceil(10/10) stamina.
	completed := true
	updated, err = svc.PatchUserQuest(uq.ID, &models.UserQuestPatchRequest{Completed: &completed})
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 50, stored.XP)
	assert.Equal(t, 200, stored.Coins)
	assert.Equal(t, 11, stored.Stats["stamina"])

	t.Run("re-completing pays nothing", func(t *testing.T) {
		_, err := svc.PatchUserQuest(uq.ID, &models.UserQuestPatchRequest{Completed: &completed})
		require.NoError(t, err)
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, 50, stored.XP)
		assert.Equal(t, 200, stored.Coins)
	})
}

func TestGenerateQuest(t *testing.T) {
	t.Run("daily quest expires in a day and is auto-accepted", func(t *testing.T) {
		svc, db := newQuestService(t)
		stats := models.StatMap{"strength": 40, "stamina": 40, "speed": 15, "endurance": 40}
		user := createHunter(t, db, "gen", "E", "Novice Hunter", 1, 0, 100, stats)

		result, err := svc.Generate(user)
		require.NoError(t, err)
		assert.Equal(t, models.QuestTypeDaily, result.Quest.Type)
		assert.Equal(t, "speed", result.Quest.TargetStat)
		assert.Equal(t, user.ID, result.UserQuest.UserID)
		assert.Equal(t, result.Quest.ID, result.UserQuest.QuestID)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 1), result.Quest.ExpiresAt, time.Minute)
	})

	t.Run("weekly quest expires in a week", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewQuestService(db, NewGenerator(weeklyRNG()), NewProgressionService(db))
		user := createHunter(t, db, "gen2", "E", "Novice Hunter", 1, 0, 100, allStats(10))

		result, err := svc.Generate(user)
		require.NoError(t, err)
		assert.Equal(t, models.QuestTypeWeekly, result.Quest.Type)
		assert.WithinDuration(t, time.Now().AddDate(0, 0, 7), result.Quest.ExpiresAt, time.Minute)
	})
}

func TestListForUserDetailed(t *testing.T) {
	svc, db := newQuestService(t)
	user := createHunter(t, db, "det", "E", "Novice Hunter", 1, 0, 100, allStats(10))
	open := makeQuest(t, db, "strength", 5, time.Now().Add(time.Hour))
	done := makeQuest(t, db, "speed", 5, time.Now().Add(time.Hour))
	require.NoError(t, db.Create(&models.UserQuest{UserID: user.ID, QuestID: open.ID}).Error)
	require.NoError(t, db.Create(&models.UserQuest{UserID: user.ID, QuestID: done.ID, Progress: 5, Completed: true}).Error)

	activeList, err := svc.ListForUserDetailed(user.ID, false)
	require.NoError(t, err)
	require.Len(t, activeList, 1)
	require.NotNil(t, activeList[0].Quest)
	assert.Equal(t, open.ID, activeList[0].Quest.ID)

	completedList, err := svc.ListForUserDetailed(user.ID, true)
	require.NoError(t, err)
	require.Len(t, completedList, 1)
	assert.Equal(t, done.ID, completedList[0].QuestID)
}
