package models

import "time"

// Event is an informational calendar entry. Active means the current time
// falls within [StartDate, EndDate].
type Event struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description" gorm:"not null"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Type        string     `json:"type" gorm:"not null"` // e.g. "rankup", "doublexp"
	CreatedAt   time.Time  `json:"createdAt" gorm:"autoCreateTime"`
}

// IsActive reports whether the event window contains now.
func (e *Event) IsActive(now time.Time) bool {
	if e.StartDate == nil || e.EndDate == nil {
		return false
	}
	return !e.StartDate.After(now) && !e.EndDate.Before(now)
}
