package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Hunter ranks, lowest to highest. Order matters: RankIndex and the job
// unlocked at each rank both derive from position in this slice.
var Ranks = []string{"E", "D", "C", "B", "A", "S", "SS"}

// Job classes, parallel to Ranks (rank-up advances both in lockstep).
var Jobs = []string{
	"Novice Hunter",
	"Assassin",
	"Berserker",
	"Mage",
	"Tank",
	"Warlock",
	"Shadow Monarch",
}

// Trainable stats. The order here is also the tie-break priority when
// picking a hunter's highest or lowest stat.
var Stats = []string{"strength", "stamina", "speed", "endurance"}

const (
	StatMin = 0
	StatMax = 100
)

// RankIndex returns the position of rank in Ranks, or -1 if unknown.
func RankIndex(rank string) int {
	for i, r := range Ranks {
		if r == rank {
			return i
		}
	}
	return -1
}

// IsValidStat reports whether s names one of the four trainable stats.
func IsValidStat(s string) bool {
	for _, stat := range Stats {
		if stat == s {
			return true
		}
	}
	return false
}

// StatMap holds the four stat values, stored as a JSON column.
type StatMap map[string]int

func (m StatMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

func (m *StatMap) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	case nil:
		*m = nil
		return nil
	}
	return errors.New("unsupported type for StatMap")
}

// DefaultStats returns the starting stat block for a fresh hunter.
func DefaultStats() StatMap {
	return StatMap{"strength": 10, "stamina": 10, "speed": 10, "endurance": 10}
}

// User is a hunter account. PasswordHash is a bcrypt hash and is never
// serialized into responses.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	IsAdmin      bool      `json:"isAdmin" gorm:"default:false"`
	Rank         string    `json:"rank" gorm:"default:'E'"`
	Job          string    `json:"job" gorm:"default:'Novice Hunter'"`
	Level        int       `json:"level" gorm:"default:1"`
	XP           int       `json:"xp" gorm:"default:0"`
	Coins        int       `json:"coins" gorm:"default:100"`
	Stats        StatMap   `json:"stats" gorm:"type:jsonb"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// NewUser builds a hunter with the starting defaults: E rank, Novice Hunter
// job, level 1, 100 coins, all stats at 10.
func NewUser(username, passwordHash string, isAdmin bool) *User {
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
		Rank:         Ranks[0],
		Job:          Jobs[0],
		Level:        1,
		XP:           0,
		Coins:        100,
		Stats:        DefaultStats(),
	}
}

// TotalXP is the lifetime XP figure used by the leaderboard.
func (u *User) TotalXP() int {
	return (u.Level-1)*500 + u.XP
}
