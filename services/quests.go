package services

import (
	"errors"
	"time"

	"hunter-fitness-system/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrQuestAlreadyAccepted is returned when a hunter re-accepts a quest.
var ErrQuestAlreadyAccepted = errors.New("quest already accepted")

// QuestService owns quest templates and hunters' acceptance records.
type QuestService struct {
	DB          *gorm.DB
	Generator   *Generator
	Progression *ProgressionService
}

func NewQuestService(db *gorm.DB, gen *Generator, prog *ProgressionService) *QuestService {
	return &QuestService{DB: db, Generator: gen, Progression: prog}
}

func (s *QuestService) Get(id uint) (*models.Quest, error) {
	var quest models.Quest
	if err := s.DB.First(&quest, id).Error; err != nil {
		return nil, err
	}
	return &quest, nil
}

func (s *QuestService) List() ([]models.Quest, error) {
	var quests []models.Quest
	if err := s.DB.Order("id").Find(&quests).Error; err != nil {
		return nil, err
	}
	return quests, nil
}

// ListActive returns quests whose expiry is still in the future.
func (s *QuestService) ListActive() ([]models.Quest, error) {
	var quests []models.Quest
	if err := s.DB.Where("expires_at > ?", time.Now()).Order("id").Find(&quests).Error; err != nil {
		return nil, err
	}
	return quests, nil
}

func (s *QuestService) Create(req *models.QuestCreateRequest) (*models.Quest, error) {
	quest := &models.Quest{
		Title:          req.Title,
		Description:    req.Description,
		Type:           req.Type,
		XPReward:       req.XPReward,
		CoinReward:     req.CoinReward,
		TargetStat:     req.TargetStat,
		RequiredAmount: req.RequiredAmount,
		ExpiresAt:      req.ExpiresAt,
	}
	if err := s.DB.Create(quest).Error; err != nil {
		return nil, err
	}
	return quest, nil
}

func (s *QuestService) Patch(id uint, req *models.QuestPatchRequest) (*models.Quest, error) {
	var updated *models.Quest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var quest models.Quest
		if err := tx.First(&quest, id).Error; err != nil {
			return err
		}
		if req.Title != nil {
			quest.Title = *req.Title
		}
		if req.Description != nil {
			quest.Description = *req.Description
		}
		if req.Type != nil {
			quest.Type = *req.Type
		}
		if req.XPReward != nil {
			quest.XPReward = *req.XPReward
		}
		if req.CoinReward != nil {
			quest.CoinReward = *req.CoinReward
		}
		if req.TargetStat != nil {
			quest.TargetStat = *req.TargetStat
		}
		if req.RequiredAmount != nil {
			quest.RequiredAmount = *req.RequiredAmount
		}
		if req.ExpiresAt != nil {
			quest.ExpiresAt = *req.ExpiresAt
		}
		if err := tx.Save(&quest).Error; err != nil {
			return err
		}
		updated = &quest
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *QuestService) Delete(id uint) error {
	res := s.DB.Delete(&models.Quest{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Accept creates the hunter's progress record for a quest. A hunter can
// hold at most one acceptance per quest.
func (s *QuestService) Accept(userID, questID uint) (*models.UserQuest, error) {
	var created *models.UserQuest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var quest models.Quest
		if err := tx.First(&quest, questID).Error; err != nil {
			return err
		}

		var existing models.UserQuest
		err := tx.Where("user_id = ? AND quest_id = ?", userID, questID).First(&existing).Error
		if err == nil {
			return ErrQuestAlreadyAccepted
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		uq := &models.UserQuest{UserID: userID, QuestID: questID}
		if err := tx.Create(uq).Error; err != nil {
			return err
		}
		created = uq
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *QuestService) GetUserQuest(id uint) (*models.UserQuest, error) {
	var uq models.UserQuest
	if err := s.DB.First(&uq, id).Error; err != nil {
		return nil, err
	}
	return &uq, nil
}

func (s *QuestService) ListForUser(userID uint) ([]models.UserQuest, error) {
	var uqs []models.UserQuest
	if err := s.DB.Where("user_id = ?", userID).Order("id").Find(&uqs).Error; err != nil {
		return nil, err
	}
	return uqs, nil
}

// ListForUserDetailed returns acceptance records filtered by completion,
// each joined with its quest template.
func (s *QuestService) ListForUserDetailed(userID uint, completed bool) ([]models.UserQuestDetail, error) {
	var uqs []models.UserQuest
	err := s.DB.Where("user_id = ? AND completed = ?", userID, completed).Order("id").Find(&uqs).Error
	if err != nil {
		return nil, err
	}

	details := make([]models.UserQuestDetail, 0, len(uqs))
	for _, uq := range uqs {
		var quest models.Quest
		if err := s.DB.First(&quest, uq.QuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				details = append(details, models.UserQuestDetail{UserQuest: uq})
				continue
			}
			return nil, err
		}
		details = append(details, models.UserQuestDetail{UserQuest: uq, Quest: &quest})
	}
	return details, nil
}

// PatchUserQuest applies a raw progress/completed update. When the update
// flips an incomplete quest to completed, the quest rewards are issued,
// once.
func (s *QuestService) PatchUserQuest(id uint, req *models.UserQuestPatchRequest) (*models.UserQuest, error) {
	var updated *models.UserQuest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var uq models.UserQuest
		if err := tx.First(&uq, id).Error; err != nil {
			return err
		}

		wasCompleted := uq.Completed
		if req.Progress != nil {
			uq.Progress = *req.Progress
		}
		if req.Completed != nil {
			uq.Completed = *req.Completed
		}
		if err := tx.Save(&uq).Error; err != nil {
			return err
		}

		if uq.Completed && !wasCompleted {
			var quest models.Quest
			if err := tx.First(&quest, uq.QuestID).Error; err != nil {
				return err
			}
			var user models.User
			if err := tx.First(&user, uq.UserID).Error; err != nil {
				return err
			}
			GrantXP(&user, quest.XPReward)
			GrantCoins(&user, quest.CoinReward)
			IncreaseStat(&user, quest.TargetStat, (quest.RequiredAmount+9)/10)
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		}

		updated = &uq
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GeneratedQuestResult bundles the stored quest and its auto-acceptance.
type GeneratedQuestResult struct {
	Quest     *models.Quest     `json:"quest"`
	UserQuest *models.UserQuest `json:"userQuest"`
}

// Generate synthesizes a quest for the hunter's weakest stat, stores it
// (daily quests expire in a day, weekly in a week) and accepts it on the
// hunter's behalf.
func (s *QuestService) Generate(user *models.User) (*GeneratedQuestResult, error) {
	suggestion := s.Generator.RecommendQuest(user.Stats, user.Rank)

	expiry := time.Now().AddDate(0, 0, 1)
	if suggestion.Type == models.QuestTypeWeekly {
		expiry = time.Now().AddDate(0, 0, 7)
	}

	var result *GeneratedQuestResult
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		quest := &models.Quest{
			Title:          suggestion.Title,
			Description:    suggestion.Description,
			Type:           suggestion.Type,
			XPReward:       suggestion.XPReward,
			CoinReward:     suggestion.CoinReward,
			TargetStat:     suggestion.TargetStat,
			RequiredAmount: suggestion.RequiredAmount,
			ExpiresAt:      expiry,
		}
		if err := tx.Create(quest).Error; err != nil {
			return err
		}

		uq := &models.UserQuest{UserID: user.ID, QuestID: quest.ID}
		if err := tx.Create(uq).Error; err != nil {
			return err
		}

		log.Info().Uint("userId", user.ID).Str("quest", quest.Title).
			Str("type", quest.Type).Str("targetStat", quest.TargetStat).
			Msg("quest generated")

		result = &GeneratedQuestResult{Quest: quest, UserQuest: uq}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
