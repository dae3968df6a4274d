package services

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/samyog8/community-events-backend/apperrors"
	"github.com/samyog8/community-events-backend/models"
)

type RegistrationService struct {
	db *gorm.DB
}

func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// Get loads one registration with its participant and event (with venue).
func (s *RegistrationService) Get(id uint) (*models.Registration, error) {
	var reg models.Registration
	err := s.db.
		Preload("Participant").
		Preload("Event").
		Preload("Event.Venue").
		First(&reg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("registration with ID %d not found", id)
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

// ByEvent lists an event's registrations, oldest first.
func (s *RegistrationService) ByEvent(eventID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.db.
		Preload("Participant").
		Where("event_id = ?", eventID).
		Order("registered_at").
		Find(&regs).Error
	return regs, err
}

// ByParticipant lists a participant's registrations, newest event first.
func (s *RegistrationService) ByParticipant(participantID uint) ([]models.Registration, error) {
	var regs []models.Registration
	err := s.db.
		Preload("Event").
		Preload("Event.Venue").
		Select("registrations.*").
		Joins("JOIN events ON events.id = registrations.event_id").
		Where("registrations.participant_id = ?", participantID).
		Order("events.date DESC").
		Find(&regs).Error
	return regs, err
}

// ByEmail lists the registrations of the participant holding the given
// email, matched case-insensitively. An unknown email yields an empty list,
// not an error.
func (s *RegistrationService) ByEmail(email string) ([]models.Registration, error) {
	var participant models.Participant
	err := s.db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&participant).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []models.Registration{}, nil
	}
	if err != nil {
		return nil, err
	}
	return s.ByParticipant(participant.ID)
}

// Pending lists registrations awaiting triage, oldest first.
func (s *RegistrationService) Pending() ([]models.Registration, error) {
	var regs []models.Registration
	err := s.db.
		Preload("Participant").
		Preload("Event").
		Preload("Event.Venue").
		Where("status = ?", models.StatusPending).
		Order("registered_at").
		Find(&regs).Error
	return regs, err
}

// IsAlreadyRegistered reports whether the email holds a non-Cancelled
// registration on the event.
func (s *RegistrationService) IsAlreadyRegistered(email string, eventID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Registration{}).
		Joins("JOIN participants ON participants.id = registrations.participant_id").
		Where("LOWER(participants.email) = ? AND registrations.event_id = ? AND registrations.status <> ?",
			strings.ToLower(email), eventID, models.StatusCancelled).
		Count(&count).Error
	return count > 0, err
}

// RegisterInput is the public registration form shape.
type RegisterInput struct {
	EventID   uint
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Notes     string
}

// RegisterForEvent creates a Pending registration for the event, creating
// the participant on first registration (matched by case-insensitive
// email). The whole check-then-insert runs in one transaction, and the
// partial unique index on registrations is the backstop: when two
// submissions race past the duplicate check, one insert fails with a
// duplicate-key error and surfaces as a Duplicate failure.
func (s *RegistrationService) RegisterForEvent(in RegisterInput) (*models.Registration, error) {
	var created models.Registration

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		err := tx.Preload("Registrations").First(&event, in.EventID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("event with ID %d not found", in.EventID)
		}
		if err != nil {
			return err
		}

		if !event.CanRegister() {
			return apperrors.Validation("this event is not available for registration")
		}

		var participant models.Participant
		err = tx.Where("LOWER(email) = ?", strings.ToLower(in.Email)).First(&participant).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			participant = models.Participant{
				FirstName: in.FirstName,
				LastName:  in.LastName,
				Email:     in.Email,
				Phone:     in.Phone,
			}
			if err := tx.Create(&participant).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.Duplicate("you are already registered for this event")
				}
				return err
			}
		case err != nil:
			return err
		default:
			var count int64
			err = tx.Model(&models.Registration{}).
				Where("participant_id = ? AND event_id = ? AND status <> ?",
					participant.ID, in.EventID, models.StatusCancelled).
				Count(&count).Error
			if err != nil {
				return err
			}
			if count > 0 {
				return apperrors.Validation("you are already registered for this event")
			}
		}

		created = models.Registration{
			ParticipantID: participant.ID,
			EventID:       event.ID,
			RegisteredAt:  time.Now().UTC(),
			Status:        models.StatusPending,
			Notes:         in.Notes,
		}
		if err := tx.Create(&created).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.Duplicate("you are already registered for this event")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"event_id":        created.EventID,
		"registration_id": created.ID,
	}).Info("registration created")
	return &created, nil
}

// transition loads the registration, applies the given in-memory state
// change and persists it when it took effect. A missing registration or a
// disallowed transition both report false; only storage failures are
// errors.
func (s *RegistrationService) transition(id uint, apply func(*models.Registration) bool) (bool, error) {
	var reg models.Registration
	err := s.db.First(&reg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !apply(&reg) {
		return false, nil
	}
	if err := s.db.Save(&reg).Error; err != nil {
		return false, err
	}
	return true, nil
}

// Confirm moves a Pending registration to Confirmed.
func (s *RegistrationService) Confirm(id uint) (bool, error) {
	return s.transition(id, (*models.Registration).Confirm)
}

// Reject moves a Pending registration to Rejected.
func (s *RegistrationService) Reject(id uint) (bool, error) {
	return s.transition(id, (*models.Registration).Reject)
}

// MarkAttended moves a Confirmed registration to Attended.
func (s *RegistrationService) MarkAttended(id uint) (bool, error) {
	return s.transition(id, (*models.Registration).MarkAttended)
}

// Cancel moves any non-Attended registration to Cancelled, freeing its
// seat.
func (s *RegistrationService) Cancel(id uint) (bool, error) {
	return s.transition(id, (*models.Registration).Cancel)
}
