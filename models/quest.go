package models

import "time"

const (
	QuestTypeDaily  = "daily"
	QuestTypeWeekly = "weekly"
)

// Quest is an immutable objective template, authored by an admin or by the
// quest generator.
type Quest struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"not null"`
	Description    string    `json:"description" gorm:"not null"`
	Type           string    `json:"type" gorm:"not null"` // daily | weekly
	XPReward       int       `json:"xpReward" gorm:"not null"`
	CoinReward     int       `json:"coinReward" gorm:"not null"`
	TargetStat     string    `json:"targetStat" gorm:"not null"`
	RequiredAmount int       `json:"requiredAmount" gorm:"not null"`
	ExpiresAt      time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// UserQuest is a hunter's acceptance-and-progress record against a Quest.
// At most one row exists per (user, quest) pair; rewards are issued exactly
// once, on the incomplete-to-complete transition.
type UserQuest struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	QuestID   uint      `json:"questId" gorm:"index;not null"`
	Progress  int       `json:"progress" gorm:"default:0"`
	Completed bool      `json:"completed" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// UserQuestDetail pairs a progress record with its quest template for
// responses that need both.
type UserQuestDetail struct {
	UserQuest
	Quest *Quest `json:"quest"`
}
