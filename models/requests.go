package models

import "time"

// Typed request bodies for the API. Partial-update bodies use pointer fields
// so absent keys are distinguishable from zero values.

type CredentialsRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=4,max=128"`
}

type UserPatchRequest struct {
	IsAdmin *bool    `json:"isAdmin"`
	Rank    *string  `json:"rank" validate:"omitempty,oneof=E D C B A S SS"`
	Job     *string  `json:"job"`
	Level   *int     `json:"level" validate:"omitempty,min=1"`
	XP      *int     `json:"xp" validate:"omitempty,min=0"`
	Coins   *int     `json:"coins" validate:"omitempty,min=0"`
	Stats   *StatMap `json:"stats"`
}

type QuestCreateRequest struct {
	Title          string    `json:"title" validate:"required,max=255"`
	Description    string    `json:"description" validate:"required"`
	Type           string    `json:"type" validate:"required,oneof=daily weekly"`
	XPReward       int       `json:"xpReward" validate:"min=0"`
	CoinReward     int       `json:"coinReward" validate:"min=0"`
	TargetStat     string    `json:"targetStat" validate:"required,oneof=strength stamina speed endurance"`
	RequiredAmount int       `json:"requiredAmount" validate:"required,min=1"`
	ExpiresAt      time.Time `json:"expiresAt" validate:"required"`
}

type QuestPatchRequest struct {
	Title          *string    `json:"title" validate:"omitempty,max=255"`
	Description    *string    `json:"description"`
	Type           *string    `json:"type" validate:"omitempty,oneof=daily weekly"`
	XPReward       *int       `json:"xpReward" validate:"omitempty,min=0"`
	CoinReward     *int       `json:"coinReward" validate:"omitempty,min=0"`
	TargetStat     *string    `json:"targetStat" validate:"omitempty,oneof=strength stamina speed endurance"`
	RequiredAmount *int       `json:"requiredAmount" validate:"omitempty,min=1"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}

type AcceptQuestRequest struct {
	QuestID uint `json:"questId" validate:"required,min=1"`
}

type UserQuestPatchRequest struct {
	Progress  *int  `json:"progress" validate:"omitempty,min=0"`
	Completed *bool `json:"completed"`
}

type ProgressRequest struct {
	Amount int `json:"amount" validate:"omitempty,min=1"`
}

type TrainRequest struct {
	Amount int `json:"amount" validate:"omitempty,min=1"`
}

type WorkoutCreateRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"required"`
	Exercises   []Exercise `json:"exercises" validate:"required,min=1,dive"`
	TargetStat  string     `json:"targetStat" validate:"required,oneof=strength stamina speed endurance"`
	TargetRank  string     `json:"targetRank" validate:"required,oneof=E D C B A S SS"`
	TargetJob   string     `json:"targetJob" validate:"required"`
}

type WorkoutPatchRequest struct {
	Title       *string     `json:"title" validate:"omitempty,max=255"`
	Description *string     `json:"description"`
	Exercises   *[]Exercise `json:"exercises" validate:"omitempty,min=1,dive"`
	TargetStat  *string     `json:"targetStat" validate:"omitempty,oneof=strength stamina speed endurance"`
	TargetRank  *string     `json:"targetRank" validate:"omitempty,oneof=E D C B A S SS"`
	TargetJob   *string     `json:"targetJob"`
}

type ShopItemCreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	Price       int    `json:"price" validate:"min=0"`
	Type        string `json:"type" validate:"required,oneof=booster cosmetic gear"`
	EffectValue int    `json:"effectValue" validate:"min=0"`
}

type ShopItemPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Price       *int    `json:"price" validate:"omitempty,min=0"`
	Type        *string `json:"type" validate:"omitempty,oneof=booster cosmetic gear"`
	EffectValue *int    `json:"effectValue" validate:"omitempty,min=0"`
}

type PurchaseRequest struct {
	Quantity int `json:"quantity" validate:"omitempty,min=1"`
}

type EventCreateRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"required"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Type        string     `json:"type" validate:"required,max=64"`
}

type EventPatchRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=255"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Type        *string    `json:"type" validate:"omitempty,max=64"`
}
