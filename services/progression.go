package services

import (
	"errors"
	"fmt"

	"hunter-fitness-system/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrMaxRank is returned by RankUp when the hunter already holds SS.
var ErrMaxRank = errors.New("already at maximum rank")

// RankRequirementError reports a failed rank-up precondition. Requirements
// carries the per-stat minimum when stats were the blocker.
type RankRequirementError struct {
	Message      string
	Requirements map[string]int
}

func (e *RankRequirementError) Error() string { return e.Message }

// ProgressionService owns the XP/level/rank/coin rules. Every composite
// mutation runs inside one transaction so a quest reward can never be half
// applied.
type ProgressionService struct {
	DB *gorm.DB
}

func NewProgressionService(db *gorm.DB) *ProgressionService {
	return &ProgressionService{DB: db}
}

// IncreaseStat adds amount to one stat, saturating silently at [0, 100].
func IncreaseStat(u *models.User, stat string, amount int) {
	if u.Stats == nil {
		u.Stats = models.DefaultStats()
	}
	v := u.Stats[stat] + amount
	if v > models.StatMax {
		v = models.StatMax
	}
	if v < models.StatMin {
		v = models.StatMin
	}
	u.Stats[stat] = v
}

// GrantXP adds xp and rolls levels while the level-dependent threshold
// (500 x current level) is reached, so one large grant can jump several
// levels. Afterwards xp is always below the current threshold.
func GrantXP(u *models.User, amount int) {
	u.XP += amount
	for u.XP >= 500*u.Level {
		u.XP -= 500 * u.Level
		u.Level++
	}
}

// GrantCoins adjusts the balance; negative amounts (purchases) floor at zero.
func GrantCoins(u *models.User, amount int) {
	u.Coins += amount
	if u.Coins < 0 {
		u.Coins = 0
	}
}

// applyQuestProgress advances a quest record and, exactly once, on the
// incomplete-to-complete transition, issues the quest's XP, coins and stat
// reward onto u. Returns true when this call completed the quest.
func applyQuestProgress(u *models.User, uq *models.UserQuest, quest *models.Quest, amount int) bool {
	if uq.Completed {
		return false
	}

	uq.Progress += amount
	if uq.Progress > quest.RequiredAmount {
		uq.Progress = quest.RequiredAmount
	}
	if uq.Progress < quest.RequiredAmount {
		return false
	}

	uq.Completed = true
	GrantXP(u, quest.XPReward)
	GrantCoins(u, quest.CoinReward)
	IncreaseStat(u, quest.TargetStat, (quest.RequiredAmount+9)/10)
	return true
}

// TrainResult is the outcome of one training session.
type TrainResult struct {
	User            *models.User       `json:"user"`
	StatIncreased   string             `json:"statIncreased"`
	AmountIncreased int                `json:"amountIncreased"`
	XPGained        int                `json:"xpGained"`
	UpdatedQuests   []models.UserQuest `json:"updatedQuests,omitempty"`
}

// TrainStat raises one stat, grants XP scaled by rank
// (amount x 10 x (rankIndex+1)), and advances any active quest targeting the
// same stat by the same amount, issuing completion rewards where due.
func (s *ProgressionService) TrainStat(userID uint, stat string, amount int) (*TrainResult, error) {
	var result *TrainResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		IncreaseStat(&user, stat, amount)

		xpGained := amount * 10 * (models.RankIndex(user.Rank) + 1)
		GrantXP(&user, xpGained)

		var active []models.UserQuest
		if err := tx.Where("user_id = ? AND completed = ?", userID, false).Find(&active).Error; err != nil {
			return err
		}

		var touched []models.UserQuest
		for i := range active {
			var quest models.Quest
			if err := tx.First(&quest, active[i].QuestID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			if quest.TargetStat != stat {
				continue
			}
			if applyQuestProgress(&user, &active[i], &quest, amount) {
				log.Info().Uint("userId", userID).Uint("questId", quest.ID).
					Str("quest", quest.Title).Msg("quest completed during training")
			}
			if err := tx.Save(&active[i]).Error; err != nil {
				return err
			}
			touched = append(touched, active[i])
		}

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		result = &TrainResult{
			User:            &user,
			StatIncreased:   stat,
			AmountIncreased: amount,
			XPGained:        xpGained,
			UpdatedQuests:   touched,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RankUpResult is the outcome of a successful promotion.
type RankUpResult struct {
	User          *models.User `json:"user"`
	PreviousRank  string       `json:"previousRank"`
	NewRank       string       `json:"newRank"`
	NewJob        string       `json:"newJob"`
	CoinsRewarded int          `json:"coinsRewarded"`
}

// RankUp promotes a hunter to the next rank when level and all four stats
// meet the thresholds. The check-and-promote is all-or-nothing: on any
// unmet requirement nothing is mutated.
func (s *ProgressionService) RankUp(userID uint) (*RankUpResult, error) {
	var result *RankUpResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		idx := models.RankIndex(user.Rank)
		if idx >= len(models.Ranks)-1 {
			return ErrMaxRank
		}

		nextRank := models.Ranks[idx+1]
		requiredLevel := (idx + 2) * 5
		if user.Level < requiredLevel {
			return &RankRequirementError{
				Message: fmt.Sprintf("Level %d required to rank up to %s-Rank", requiredLevel, nextRank),
			}
		}

		minStat := (idx + 1) * 25
		requirements := make(map[string]int, len(models.Stats))
		ok := true
		for _, stat := range models.Stats {
			requirements[stat] = minStat
			if user.Stats[stat] < minStat {
				ok = false
			}
		}
		if !ok {
			return &RankRequirementError{
				Message:      "Stats too low for rank-up",
				Requirements: requirements,
			}
		}

		previousRank := user.Rank
		coinsReward := (idx + 2) * 500
		user.Rank = nextRank
		user.Job = models.Jobs[idx+1]
		GrantCoins(&user, coinsReward)

		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		log.Info().Uint("userId", userID).Str("from", previousRank).Str("to", nextRank).
			Str("job", user.Job).Int("coins", coinsReward).Msg("hunter ranked up")

		result = &RankUpResult{
			User:          &user,
			PreviousRank:  previousRank,
			NewRank:       nextRank,
			NewJob:        user.Job,
			CoinsRewarded: coinsReward,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordProgress advances one quest acceptance by amount. Rewards are issued
// only when this call crosses the completion line; repeat calls on a
// completed quest change nothing.
func (s *ProgressionService) RecordProgress(userQuestID uint, amount int) (*models.UserQuest, error) {
	var updated *models.UserQuest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var uq models.UserQuest
		if err := tx.First(&uq, userQuestID).Error; err != nil {
			return err
		}
		var quest models.Quest
		if err := tx.First(&quest, uq.QuestID).Error; err != nil {
			return err
		}
		var user models.User
		if err := tx.First(&user, uq.UserID).Error; err != nil {
			return err
		}

		if applyQuestProgress(&user, &uq, &quest, amount) {
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
			log.Info().Uint("userId", user.ID).Uint("questId", quest.ID).
				Str("quest", quest.Title).Msg("quest completed")
		}
		if err := tx.Save(&uq).Error; err != nil {
			return err
		}
		updated = &uq
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
