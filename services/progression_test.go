package services

import (
	"errors"
	"testing"
	"time"

	"hunter-fitness-system/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncreaseStat(t *testing.T) {
	t.Run("saturates at 100", func(t *testing.T) {
		u := &models.User{Stats: allStats(95)}
		IncreaseStat(u, "strength", 20)
		assert.Equal(t, 100, u.Stats["strength"])
	})

	t.Run("floors at 0", func(t *testing.T) {
		u := &models.User{Stats: allStats(5)}
		IncreaseStat(u, "speed", -20)
		assert.Equal(t, 0, u.Stats["speed"])
	})

	t.Run("initializes a nil stat block", func(t *testing.T) {
		u := &models.User{}
		IncreaseStat(u, "stamina", 5)
		assert.Equal(t, 15, u.Stats["stamina"])
		assert.Equal(t, 10, u.Stats["strength"])
	})
}

func TestGrantXP(t *testing.T) {
	t.Run("below threshold keeps level", func(t *testing.T) {
		u := &models.User{Level: 1, XP: 0}
		GrantXP(u, 499)
		assert.Equal(t, 1, u.Level)
		assert.Equal(t, 499, u.XP)
	})

	t.Run("exact threshold rolls over to zero", func(t *testing.T) {
		u := &models.User{Level: 1, XP: 0}
		GrantXP(u, 500)
		assert.Equal(t, 2, u.Level)
		assert.Equal(t, 0, u.XP)
	})

	t.Run("one large grant jumps multiple levels", func(t *testing.T) {
		// 1600 XP at level 1: 500 to reach 2, 1000 to reach 3, 100 left.
		u := &models.User{Level: 1, XP: 0}
		GrantXP(u, 1600)
		assert.Equal(t, 3, u.Level)
		assert.Equal(t, 100, u.XP)
	})

	t.Run("split grants equal one combined grant", func(t *testing.T) {
		a := &models.User{Level: 1, XP: 0}
		GrantXP(a, 700)
		GrantXP(a, 900)

		b := &models.User{Level: 1, XP: 0}
		GrantXP(b, 1600)

		assert.Equal(t, b.Level, a.Level)
		assert.Equal(t, b.XP, a.XP)
	})

	t.Run("xp always ends below the level threshold", func(t *testing.T) {
		u := &models.User{Level: 1, XP: 0}
		for _, grant := range []int{123, 5000, 77, 9999, 1} {
			GrantXP(u, grant)
			assert.Less(t, u.XP, 500*u.Level)
		}
	})
}

func TestGrantCoins(t *testing.T) {
	u := &models.User{Coins: 100}
	GrantCoins(u, 50)
	assert.Equal(t, 150, u.Coins)

	GrantCoins(u, -500)
	assert.Equal(t, 0, u.Coins)
}

func TestTrainStat(t *testing.T) {
	t.Run("raises stat and grants rank-scaled xp", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		user := createHunter(t, db, "jin", "E", "Novice Hunter", 1, 0, 100, allStats(10))

		// 50 x 10 x 1 = 500 XP: exactly one level at level 1.
		result, err := svc.TrainStat(user.ID, "strength", 50)
		require.NoError(t, err)

		assert.Equal(t, "strength", result.StatIncreased)
		assert.Equal(t, 50, result.AmountIncreased)
		assert.Equal(t, 500, result.XPGained)
		assert.Equal(t, 60, result.User.Stats["strength"])
		assert.Equal(t, 2, result.User.Level)
		assert.Equal(t, 0, result.User.XP)

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, 2, stored.Level)
		assert.Equal(t, 60, stored.Stats["strength"])
	})

	t.Run("higher rank multiplies xp", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		user := createHunter(t, db, "cha", "C", "Berserker", 12, 0, 100, allStats(50))

		// C is rank index 2, so 10 x 10 x 3 = 300 XP.
		result, err := svc.TrainStat(user.ID, "speed", 10)
		require.NoError(t, err)
		assert.Equal(t, 300, result.XPGained)
		assert.Equal(t, 300, result.User.XP)
		assert.Equal(t, 12, result.User.Level)
	})

	t.Run("advances matching active quests", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		user := createHunter(t, db, "yoo", "E", "Novice Hunter", 1, 0, 100, allStats(10))

		quest := &models.Quest{
			Title: "Power Within", Description: "d", Type: models.QuestTypeDaily,
			XPReward: 50, CoinReward: 100, TargetStat: "strength",
			RequiredAmount: 5, ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		require.NoError(t, db.Create(quest).Error)
		other := &models.Quest{
			Title: "Endless Energy", Description: "d", Type: models.QuestTypeDaily,
			XPReward: 50, CoinReward: 100, TargetStat: "stamina",
			RequiredAmount: 6, ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		require.NoError(t, db.Create(other).Error)
		require.NoError(t, db.Create(&models.UserQuest{UserID: user.ID, QuestID: quest.ID}).Error)
		require.NoError(t, db.Create(&models.UserQuest{UserID: user.ID, QuestID: other.ID}).Error)

		result, err := svc.TrainStat(user.ID, "strength", 3)
		require.NoError(t, err)
		require.Len(t, result.UpdatedQuests, 1)
		assert.Equal(t, 3, result.UpdatedQuests[0].Progress)
		assert.False(t, result.UpdatedQuests[0].Completed)

		// Crossing the line completes the quest and pays out once:
		// quest XP 50, coins 100, ceil(5/10) = 1 extra strength.
		result, err = svc.TrainStat(user.ID, "strength", 2)
		require.NoError(t, err)
		require.Len(t, result.UpdatedQuests, 1)
		assert.True(t, result.UpdatedQuests[0].Completed)
		assert.Equal(t, 5, result.UpdatedQuests[0].Progress)
		assert.Equal(t, 16, result.User.Stats["strength"]) // 10 + 3 + 2 + 1
		assert.Equal(t, 200, result.User.Coins)

		var staminaQuest models.UserQuest
		require.NoError(t, db.Where("quest_id = ?", other.ID).First(&staminaQuest).Error)
		assert.Equal(t, 0, staminaQuest.Progress)
	})

	t.Run("completed quests are not advanced again", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		user := createHunter(t, db, "baek", "E", "Novice Hunter", 1, 0, 100, allStats(10))

		quest := &models.Quest{
			Title: "q", Description: "d", Type: models.QuestTypeDaily,
			XPReward: 50, CoinReward: 100, TargetStat: "endurance",
			RequiredAmount: 2, ExpiresAt: time.Now().Add(24 * time.Hour),
		}
		require.NoError(t, db.Create(quest).Error)
		require.NoError(t, db.Create(&models.UserQuest{UserID: user.ID, QuestID: quest.ID}).Error)

		first, err := svc.TrainStat(user.ID, "endurance", 2)
		require.NoError(t, err)
		coinsAfter := first.User.Coins

		second, err := svc.TrainStat(user.ID, "endurance", 2)
		require.NoError(t, err)
		assert.Empty(t, second.UpdatedQuests)
		assert.Equal(t, coinsAfter, second.User.Coins)
	})
}

func TestRankUp(t *testing.T) {
	t.Run("level too low", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		user := createHunter(t, db, "low", "E", "Novice Hunter", 9, 0, 100, allStats(30))

		_, err := svc.RankUp(user.ID)
		var reqErr *RankRequirementError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "Level 10 required to rank up to D-Rank", reqErr.Message)
		assert.Nil(t, reqErr.Requirements)

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, "E", stored.Rank)
		assert.Equal(t, 100, stored.Coins)
	})

	t.Run("stats too low reports requirements and mutates nothing", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		stats := allStats(25)
		stats["speed"] = 24
		user := createHunter(t, db, "slow", "E", "Novice Hunter", 10, 0, 100, stats)

		_, err := svc.RankUp(user.ID)
		var reqErr *RankRequirementError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "Stats too low for rank-up", reqErr.Message)
		assert.Equal(t, map[string]int{
			"strength": 25, "stamina": 25, "speed": 25, "endurance": 25,
		}, reqErr.Requirements)

		var stored models.User
		require.NoError(t, db.First(&stored, user.ID).Error)
		assert.Equal(t, "E", stored.Rank)
		assert.Equal(t, "Novice Hunter", stored.Job)
	})

	t.Run("E to D promotes job and pays coins", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		user := createHunter(t, db, "jin2", "E", "Novice Hunter", 10, 0, 100, allStats(25))

		result, err := svc.RankUp(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "E", result.PreviousRank)
		assert.Equal(t, "D", result.NewRank)
		assert.Equal(t, "Assassin", result.NewJob)
		assert.Equal(t, 1000, result.CoinsRewarded)
		assert.Equal(t, 1100, result.User.Coins)
	})

	t.Run("D to C becomes Berserker", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		user := createHunter(t, db, "jin3", "D", "Assassin", 15, 0, 0, allStats(50))

		result, err := svc.RankUp(user.ID)
		require.NoError(t, err)
		assert.Equal(t, "C", result.NewRank)
		assert.Equal(t, "Berserker", result.NewJob)
		assert.Equal(t, 1500, result.CoinsRewarded)
	})

	t.Run("SS is terminal", func(t *testing.T) {
		db := newTestDB(t)
		svc := NewProgressionService(db)
		user := createHunter(t, db, "sung", "SS", "Shadow Monarch", 99, 0, 0, allStats(100))

		_, err := svc.RankUp(user.ID)
		assert.True(t, errors.Is(err, ErrMaxRank))
	})
}

func TestRecordProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewProgressionService(db)
	user := createHunter(t, db, "rec", "E", "Novice Hunter", 1, 0, 100, allStats(10))

	quest := &models.Quest{
		Title: "Unbreakable", Description: "d", Type: models.QuestTypeDaily,
		XPReward: 80, CoinReward: 40, TargetStat: "endurance",
		RequiredAmount: 7, ExpiresAt: time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, db.Create(quest).Error)
	uq := &models.UserQuest{UserID: user.ID, QuestID: quest.ID}
	require.NoError(t, db.Create(uq).Error)

	updated, err := svc.RecordProgress(uq.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Progress)
	assert.False(t, updated.Completed)

	// Progress is capped at the requirement; overshoot completes once.
	updated, err = svc.RecordProgress(uq.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Progress)
	assert.True(t, updated.Completed)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 80, stored.XP)
	assert.Equal(t, 140, stored.Coins)
	assert.Equal(t, 11, stored.Stats["endurance"]) // ceil(7/10) = 1

	// A second call on a completed quest changes nothing.
	updated, err = svc.RecordProgress(uq.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, updated.Progress)

	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, 80, stored.XP)
	assert.Equal(t, 140, stored.Coins)
}
