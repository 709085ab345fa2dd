package models

import "time"

const (
	ItemTypeBooster  = "booster"
	ItemTypeCosmetic = "cosmetic"
	ItemTypeGear     = "gear"
)

// ShopItem is a purchasable catalog entry. Price is in coins.
type ShopItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Price       int       `json:"price" gorm:"not null"`
	Type        string    `json:"type" gorm:"not null"` // booster | cosmetic | gear
	EffectValue int       `json:"effectValue" gorm:"default:0"`
	CreatedAt   time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// UserItem records ownership; quantity increments on repeat purchase.
type UserItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	ItemID    uint      `json:"itemId" gorm:"index;not null"`
	Quantity  int       `json:"quantity" gorm:"default:1"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// UserItemDetail pairs an ownership record with its catalog item.
type UserItemDetail struct {
	UserItem
	Item *ShopItem `json:"item"`
}
