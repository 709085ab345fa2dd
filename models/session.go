package models

import "time"

// Session is a server-side login session referenced by an opaque cookie
// token. Expired rows are swept by the maintenance worker.
type Session struct {
	Token     string    `json:"token" gorm:"primaryKey;type:uuid"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

// Expired reports whether the session is past its lifetime.
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
