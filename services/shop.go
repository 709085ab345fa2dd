package services

import (
	"errors"

	"hunter-fitness-system/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ErrNotEnoughCoins is returned when a purchase exceeds the hunter's balance.
var ErrNotEnoughCoins = errors.New("not enough coins")

// ShopService owns the item catalog and purchases.
type ShopService struct {
	DB *gorm.DB
}

func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{DB: db}
}

func (s *ShopService) Get(id uint) (*models.ShopItem, error) {
	var item models.ShopItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ShopService) List() ([]models.ShopItem, error) {
	var items []models.ShopItem
	if err := s.DB.Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ShopService) Create(req *models.ShopItemCreateRequest) (*models.ShopItem, error) {
	item := &models.ShopItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Type:        req.Type,
		EffectValue: req.EffectValue,
	}
	if err := s.DB.Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ShopService) Patch(id uint, req *models.ShopItemPatchRequest) (*models.ShopItem, error) {
	var updated *models.ShopItem
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.ShopItem
		if err := tx.First(&item, id).Error; err != nil {
			return err
		}
		if req.Name != nil {
			item.Name = *req.Name
		}
		if req.Description != nil {
			item.Description = *req.Description
		}
		if req.Price != nil {
			item.Price = *req.Price
		}
		if req.Type != nil {
			item.Type = *req.Type
		}
		if req.EffectValue != nil {
			item.EffectValue = *req.EffectValue
		}
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		updated = &item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *ShopService) Delete(id uint) error {
	res := s.DB.Delete(&models.ShopItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Purchase buys quantity units of an item. It fails without any mutation
// when price x quantity exceeds the hunter's coins; otherwise coins are
// deducted and the ownership row is created or its quantity bumped, all in
// one transaction.
func (s *ShopService) Purchase(userID, itemID uint, quantity int) (*models.UserItemDetail, error) {
	var result *models.UserItemDetail
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var item models.ShopItem
		if err := tx.First(&item, itemID).Error; err != nil {
			return err
		}
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		totalCost := item.Price * quantity
		if totalCost > user.Coins {
			return ErrNotEnoughCoins
		}

		var owned models.UserItem
		err := tx.Where("user_id = ? AND item_id = ?", userID, itemID).First(&owned).Error
		switch {
		case err == nil:
			owned.Quantity += quantity
			if err := tx.Save(&owned).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			owned = models.UserItem{UserID: userID, ItemID: itemID, Quantity: quantity}
			if err := tx.Create(&owned).Error; err != nil {
				return err
			}
		default:
			return err
		}

		GrantCoins(&user, -totalCost)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		log.Info().Uint("userId", userID).Str("item", item.Name).
			Int("quantity", quantity).Int("cost", totalCost).Msg("item purchased")

		result = &models.UserItemDetail{UserItem: owned, Item: &item}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Inventory returns a hunter's items joined with their catalog entries.
func (s *ShopService) Inventory(userID uint) ([]models.UserItemDetail, error) {
	var owned []models.UserItem
	if err := s.DB.Where("user_id = ?", userID).Order("id").Find(&owned).Error; err != nil {
		return nil, err
	}

	details := make([]models.UserItemDetail, 0, len(owned))
	for _, ui := range owned {
		var item models.ShopItem
		if err := s.DB.First(&item, ui.ItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				details = append(details, models.UserItemDetail{UserItem: ui})
				continue
			}
			return nil, err
		}
		details = append(details, models.UserItemDetail{UserItem: ui, Item: &item})
	}
	return details, nil
}
