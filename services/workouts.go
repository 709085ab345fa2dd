package services

import (
	"math/rand"

	"hunter-fitness-system/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// WorkoutService owns workout templates and the recommendation flow.
type WorkoutService struct {
	DB        *gorm.DB
	Generator *Generator
	rng       *rand.Rand
}

func NewWorkoutService(db *gorm.DB, gen *Generator, rng *rand.Rand) *WorkoutService {
	return &WorkoutService{DB: db, Generator: gen, rng: rng}
}

func (s *WorkoutService) Get(id uint) (*models.Workout, error) {
	var workout models.Workout
	if err := s.DB.First(&workout, id).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func (s *WorkoutService) List() ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.DB.Order("id").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *WorkoutService) ListByRank(rank string) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.DB.Where("target_rank = ?", rank).Order("id").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *WorkoutService) ListByJob(job string) ([]models.Workout, error) {
	var workouts []models.Workout
	if err := s.DB.Where("target_job = ?", job).Order("id").Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (s *WorkoutService) Create(req *models.WorkoutCreateRequest) (*models.Workout, error) {
	workout := &models.Workout{
		Title:       req.Title,
		Description: req.Description,
		Exercises:   req.Exercises,
		TargetStat:  req.TargetStat,
		TargetRank:  req.TargetRank,
		TargetJob:   req.TargetJob,
	}
	if err := s.DB.Create(workout).Error; err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *WorkoutService) Patch(id uint, req *models.WorkoutPatchRequest) (*models.Workout, error) {
	var updated *models.Workout
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var workout models.Workout
		if err := tx.First(&workout, id).Error; err != nil {
			return err
		}
		if req.Title != nil {
			workout.Title = *req.Title
		}
		if req.Description != nil {
			workout.Description = *req.Description
		}
		if req.Exercises != nil {
			workout.Exercises = *req.Exercises
		}
		if req.TargetStat != nil {
			workout.TargetStat = *req.TargetStat
		}
		if req.TargetRank != nil {
			workout.TargetRank = *req.TargetRank
		}
		if req.TargetJob != nil {
			workout.TargetJob = *req.TargetJob
		}
		if err := tx.Save(&workout).Error; err != nil {
			return err
		}
		updated = &workout
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *WorkoutService) Delete(id uint) error {
	res := s.DB.Delete(&models.Workout{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Recommend returns a workout matching the hunter's rank and job, picking
// randomly when several match. When nothing is stored, it synthesizes one
// from the template tables and caches it as a regular workout row so the
// next call can reuse it.
func (s *WorkoutService) Recommend(user *models.User) (*models.Workout, error) {
	var matches []models.Workout
	err := s.DB.Where("target_rank = ? AND target_job = ?", user.Rank, user.Job).Find(&matches).Error
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return &matches[s.rng.Intn(len(matches))], nil
	}

	generated := s.Generator.RecommendWorkout(user.Stats, user.Rank, user.Job)
	workout := &models.Workout{
		Title:       generated.Title,
		Description: generated.Description,
		Exercises:   generated.Exercises,
		TargetStat:  generated.TargetStat,
		TargetRank:  user.Rank,
		TargetJob:   user.Job,
	}
	if err := s.DB.Create(workout).Error; err != nil {
		return nil, err
	}
	log.Info().Uint("userId", user.ID).Str("workout", workout.Title).Msg("workout synthesized and cached")
	return workout, nil
}
