package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Exercise is one movement inside a workout. Reps stays a string since
// templates mix counts, durations and "Max".
type Exercise struct {
	Name string `json:"name"`
	Sets int    `json:"sets"`
	Reps string `json:"reps"`
}

// ExerciseList is stored as a JSON column.
type ExerciseList []Exercise

func (l ExerciseList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *ExerciseList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("unsupported type for ExerciseList")
}

// Workout is a named exercise routine tagged for recommendation matching.
// Rows are admin-authored or cached output of the workout generator.
type Workout struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null"`
	Description string       `json:"description" gorm:"not null"`
	Exercises   ExerciseList `json:"exercises" gorm:"type:jsonb"`
	TargetStat  string       `json:"targetStat" gorm:"not null"`
	TargetRank  string       `json:"targetRank" gorm:"not null"`
	TargetJob   string       `json:"targetJob" gorm:"not null"`
	CreatedAt   time.Time    `json:"createdAt" gorm:"autoCreateTime"`
}
