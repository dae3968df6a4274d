package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/samyog8/community-events-backend/apperrors"
	"github.com/samyog8/community-events-backend/models"
)

type VenueService struct {
	db *gorm.DB
}

func NewVenueService(db *gorm.DB) *VenueService {
	return &VenueService{db: db}
}

// List returns venues ordered by name, optionally restricted to active
// ones.
func (s *VenueService) List(activeOnly bool) ([]models.Venue, error) {
	query := s.db.Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var venues []models.Venue
	err := query.Find(&venues).Error
	return venues, err
}

func (s *VenueService) Get(id uint) (*models.Venue, error) {
	var venue models.Venue
	err := s.db.First(&venue, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("venue with ID %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

// VenueInput is the create/update shape for a venue.
type VenueInput struct {
	Name        string
	Address     string
	City        string
	PostCode    string
	Capacity    int
	Description string
	IsActive    bool
}

func (s *VenueService) Create(in VenueInput) (*models.Venue, error) {
	venue := models.Venue{
		Name:        in.Name,
		Address:     in.Address,
		City:        in.City,
		PostCode:    in.PostCode,
		Capacity:    in.Capacity,
		Description: in.Description,
		IsActive:    true,
	}
	if err := s.db.Create(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (s *VenueService) Update(id uint, in VenueInput) (*models.Venue, error) {
	venue, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	venue.Name = in.Name
	venue.Address = in.Address
	venue.City = in.City
	venue.PostCode = in.PostCode
	venue.Capacity = in.Capacity
	venue.Description = in.Description
	venue.IsActive = in.IsActive
	if err := s.db.Save(venue).Error; err != nil {
		return nil, err
	}
	return venue, nil
}

// Delete removes the venue; the foreign key on its events is set to null by
// the database, the events themselves survive.
func (s *VenueService) Delete(id uint) error {
	res := s.db.Delete(&models.Venue{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("venue with ID %d not found", id)
	}
	return nil
}

func (s *VenueService) ToggleStatus(id uint) (bool, error) {
	venue, err := s.Get(id)
	if err != nil {
		return false, err
	}
	active := models.ToggleStatus(venue)
	if err := s.db.Save(venue).Error; err != nil {
		return false, err
	}
	return active, nil
}

// CheckAvailability reports whether the venue is free for the window on the
// date. This is advisory: it is meant to be called before creating or
// editing an event to warn about double-booking, nothing blocks on it.
func (s *VenueService) CheckAvailability(venueID uint, date time.Time, startTime, endTime string, excludeEventID uint) (bool, error) {
	if !ValidClock(startTime) || !ValidClock(endTime) {
		return false, apperrors.Validation("times must be in HH:MM format")
	}
	if endTime <= startTime {
		return false, apperrors.Validation("end time must be after start time")
	}

	var venue models.Venue
	err := s.db.
		Preload("Events", "is_active = ? AND date = ?", true, models.DateOnly(date)).
		First(&venue, venueID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, apperrors.NotFound("venue with ID %d not found", venueID)
	}
	if err != nil {
		return false, err
	}
	return venue.IsAvailable(date, startTime, endTime, excludeEventID), nil
}
