package workers

import (
	"time"

	"hunter-fitness-system/models"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// StartMaintenance schedules the hourly cleanup jobs: expired login
// sessions, and expired quests nobody ever accepted (accepted quests stay
// for completion history). Returns the scheduler so main can shut it down.
func StartMaintenance(db *gorm.DB) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			res := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
			if res.Error != nil {
				log.Error().Err(res.Error).Msg("session sweep failed")
				return
			}
			if res.RowsAffected > 0 {
				log.Info().Int64("sessions", res.RowsAffected).Msg("expired sessions swept")
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(time.Hour),
		gocron.NewTask(func() {
			res := db.Where(
				"expires_at < ? AND id NOT IN (?)",
				time.Now(),
				db.Model(&models.UserQuest{}).Select("quest_id"),
			).Delete(&models.Quest{})
			if res.Error != nil {
				log.Error().Err(res.Error).Msg("quest sweep failed")
				return
			}
			if res.RowsAffected > 0 {
				log.Info().Int64("quests", res.RowsAffected).Msg("expired unaccepted quests swept")
			}
		}),
	)
	if err != nil {
		return nil, err
	}

	sched.Start()
	return sched, nil
}
