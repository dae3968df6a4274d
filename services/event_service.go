// Package services holds the business logic between the HTTP controllers
// and the gorm models: event lifecycle, the registration workflow and the
// event filter queries.
package services

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/samyog8/community-events-backend/apperrors"
	"github.com/samyog8/community-events-backend/models"
)

const clockLayout = "15:04"

// ValidClock reports whether s is a zero-padded "HH:MM" string.
func ValidClock(s string) bool {
	_, err := time.Parse(clockLayout, s)
	return err == nil && len(s) == 5
}

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// EventInput is the create/update shape for an event. SelectedActivityIDs
// is treated as a set; duplicates are collapsed.
type EventInput struct {
	Name                string
	Description         string
	Date                time.Time
	StartTime           string
	EndTime             string
	MaxCapacity         int
	VenueID             *uint
	IsActive            bool
	SelectedActivityIDs []uint
}

func (in *EventInput) validateTimes() error {
	if !ValidClock(in.StartTime) || !ValidClock(in.EndTime) {
		return apperrors.Validation("times must be in HH:MM format")
	}
	if in.EndTime <= in.StartTime {
		return apperrors.Validation("end time must be after start time")
	}
	return nil
}

func (s *EventService) preloaded() *gorm.DB {
	return s.db.
		Preload("Venue").
		Preload("Registrations").
		Preload("EventActivities", func(db *gorm.DB) *gorm.DB {
			return db.Order("event_activities.display_order, event_activities.id")
		}).
		Preload("EventActivities.Activity")
}

// All returns every event, newest date first. The descending order is what
// the admin listing wants; public listings use Upcoming or Filter instead.
func (s *EventService) All() ([]models.Event, error) {
	var events []models.Event
	err := s.preloaded().
		Order("date DESC, start_time").
		Find(&events).Error
	return events, err
}

// Upcoming returns active events dated today or later, soonest first.
func (s *EventService) Upcoming() ([]models.Event, error) {
	var events []models.Event
	err := s.preloaded().
		Where("is_active = ? AND date >= ?", true, models.Today()).
		Order("date, start_time").
		Find(&events).Error
	return events, err
}

// EventFilter is the optional-criteria search shape. Every set field must
// match; unset fields are ignored.
type EventFilter struct {
	Search       string
	DateFrom     *time.Time
	DateTo       *time.Time
	VenueID      *uint
	ActivityType *models.ActivityType
	IncludePast  bool
}

// Filter searches events with an AND-conjunction of the set criteria. Only
// active events are returned, past events only when IncludePast is set, and
// results come back ordered by date then start time, ascending.
func (s *EventService) Filter(f EventFilter) ([]models.Event, error) {
	query := s.preloaded()

	if !f.IncludePast {
		query = query.Where("date >= ?", models.Today())
	}
	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", term, term)
	}
	if f.DateFrom != nil {
		query = query.Where("date >= ?", models.DateOnly(*f.DateFrom))
	}
	if f.DateTo != nil {
		query = query.Where("date <= ?", models.DateOnly(*f.DateTo))
	}
	if f.VenueID != nil {
		query = query.Where("venue_id = ?", *f.VenueID)
	}
	if f.ActivityType != nil {
		query = query.Where(
			"id IN (SELECT ea.event_id FROM event_activities ea JOIN activities a ON a.id = ea.activity_id WHERE a.type = ?)",
			*f.ActivityType)
	}

	var events []models.Event
	err := query.
		Where("is_active = ?", true).
		Order("date, start_time").
		Find(&events).Error
	return events, err
}

// Get loads one event with venue, registrations (with participants) and
// linked activities.
func (s *EventService) Get(id uint) (*models.Event, error) {
	var event models.Event
	err := s.preloaded().
		Preload("Registrations.Participant").
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("event with ID %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create validates the input and stores the event together with its
// activity links in one transaction. New events may not be dated in the
// past.
func (s *EventService) Create(in EventInput) (*models.Event, error) {
	if err := in.validateTimes(); err != nil {
		return nil, err
	}
	if models.DateOnly(in.Date).Before(models.Today()) {
		return nil, apperrors.Validation("event date cannot be in the past")
	}

	event := models.Event{
		Name:        in.Name,
		Description: in.Description,
		Date:        models.DateOnly(in.Date),
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		MaxCapacity: in.MaxCapacity,
		VenueID:     in.VenueID,
		IsActive:    true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		return createActivityLinks(tx, event.ID, in.SelectedActivityIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(event.ID)
}

// Update rewrites the event and replaces its activity links with the
// submitted set. Unlike Create it accepts past dates, so old events stay
// editable.
func (s *EventService) Update(id uint, in EventInput) (*models.Event, error) {
	if err := in.validateTimes(); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("event with ID %d not found", id)
			}
			return err
		}

		event.Name = in.Name
		event.Description = in.Description
		event.Date = models.DateOnly(in.Date)
		event.StartTime = in.StartTime
		event.EndTime = in.EndTime
		event.MaxCapacity = in.MaxCapacity
		event.VenueID = in.VenueID
		event.IsActive = in.IsActive

		if err := tx.Save(&event).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.EventActivity{}).Error; err != nil {
			return err
		}
		return createActivityLinks(tx, id, in.SelectedActivityIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

func createActivityLinks(tx *gorm.DB, eventID uint, activityIDs []uint) error {
	seen := make(map[uint]bool, len(activityIDs))
	order := 0
	for _, activityID := range activityIDs {
		if seen[activityID] {
			continue
		}
		seen[activityID] = true
		link := models.EventActivity{
			EventID:      eventID,
			ActivityID:   activityID,
			DisplayOrder: order,
		}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		order++
	}
	return nil
}

// Delete removes the event; registrations and activity links cascade.
func (s *EventService) Delete(id uint) error {
	res := s.db.Delete(&models.Event{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("event with ID %d not found", id)
	}
	return nil
}

// ToggleStatus flips the active flag and returns the new state.
func (s *EventService) ToggleStatus(id uint) (bool, error) {
	var event models.Event
	if err := s.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.NotFound("event with ID %d not found", id)
		}
		return false, err
	}
	active := models.ToggleStatus(&event)
	if err := s.db.Save(&event).Error; err != nil {
		return false, err
	}
	return active, nil
}

// AddActivity links an activity to an event. It reports false if the link
// already exists.
func (s *EventService) AddActivity(eventID, activityID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.EventActivity{}).
		Where("event_id = ? AND activity_id = ?", eventID, activityID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	link := models.EventActivity{EventID: eventID, ActivityID: activityID}
	if err := s.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoveActivity unlinks an activity from an event. It reports false if no
// such link existed.
func (s *EventService) RemoveActivity(eventID, activityID uint) (bool, error) {
	res := s.db.
		Where("event_id = ? AND activity_id = ?", eventID, activityID).
		Delete(&models.EventActivity{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
