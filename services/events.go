package services

import (
	"time"

	"hunter-fitness-system/models"

	"gorm.io/gorm"
)

// EventService owns the informational calendar.
type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

func (s *EventService) Get(id uint) (*models.Event, error) {
	var event models.Event
	if err := s.DB.First(&event, id).Error; err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *EventService) List() ([]models.Event, error) {
	var events []models.Event
	if err := s.DB.Order("id").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListActive returns events whose window contains now.
func (s *EventService) ListActive() ([]models.Event, error) {
	now := time.Now()
	var events []models.Event
	err := s.DB.Where("start_date <= ? AND end_date >= ?", now, now).Order("id").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) Create(req *models.EventCreateRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Type:        req.Type,
	}
	if err := s.DB.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) Patch(id uint, req *models.EventPatchRequest) (*models.Event, error) {
	var updated *models.Event
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, id).Error; err != nil {
			return err
		}
		if req.Title != nil {
			event.Title = *req.Title
		}
		if req.Description != nil {
			event.Description = *req.Description
		}
		if req.StartDate != nil {
			event.StartDate = req.StartDate
		}
		if req.EndDate != nil {
			event.EndDate = req.EndDate
		}
		if req.Type != nil {
			event.Type = *req.Type
		}
		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		updated = &event
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *EventService) Delete(id uint) error {
	res := s.DB.Delete(&models.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
