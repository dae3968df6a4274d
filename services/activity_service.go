package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/samyog8/community-events-backend/apperrors"
	"github.com/samyog8/community-events-backend/models"
)

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) List(activeOnly bool) ([]models.Activity, error) {
	query := s.db.Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var activities []models.Activity
	err := query.Find(&activities).Error
	return activities, err
}

func (s *ActivityService) Get(id uint) (*models.Activity, error) {
	var activity models.Activity
	err := s.db.First(&activity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("activity with ID %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

type ActivityInput struct {
	Name            string
	Description     string
	Type            models.ActivityType
	DurationMinutes int
	IsActive        bool
}

func (s *ActivityService) Create(in ActivityInput) (*models.Activity, error) {
	activity := models.Activity{
		Name:            in.Name,
		Description:     in.Description,
		Type:            in.Type,
		DurationMinutes: in.DurationMinutes,
		IsActive:        true,
	}
	if err := s.db.Create(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (s *ActivityService) Update(id uint, in ActivityInput) (*models.Activity, error) {
	activity, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	activity.Name = in.Name
	activity.Description = in.Description
	activity.Type = in.Type
	activity.DurationMinutes = in.DurationMinutes
	activity.IsActive = in.IsActive
	if err := s.db.Save(activity).Error; err != nil {
		return nil, err
	}
	return activity, nil
}

// Delete removes the activity; its event links cascade away with it.
func (s *ActivityService) Delete(id uint) error {
	res := s.db.Delete(&models.Activity{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("activity with ID %d not found", id)
	}
	return nil
}

func (s *ActivityService) ToggleStatus(id uint) (bool, error) {
	activity, err := s.Get(id)
	if err != nil {
		return false, err
	}
	active := models.ToggleStatus(activity)
	if err := s.db.Save(activity).Error; err != nil {
		return false, err
	}
	return active, nil
}
