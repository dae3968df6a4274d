package models

import (
	"time"
)

type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "Pending"
	StatusConfirmed RegistrationStatus = "Confirmed"
	StatusCancelled RegistrationStatus = "Cancelled"
	StatusAttended  RegistrationStatus = "Attended"
	StatusRejected  RegistrationStatus = "Rejected"
)

// Registration is one participant's seat on one event. At most one
// non-Cancelled registration may exist per (participant, event) pair; the
// partial unique index created in database.Migrate enforces that, while
// still allowing re-registration after a cancellation.
type Registration struct {
	ID            uint               `gorm:"primaryKey" json:"id"`
	ParticipantID uint               `gorm:"not null;index" json:"participant_id"`
	EventID       uint               `gorm:"not null;index" json:"event_id"`
	RegisteredAt  time.Time          `gorm:"not null" json:"registered_at"`
	Status        RegistrationStatus `gorm:"size:20;not null;default:'Pending'" json:"status"`
	Notes         string             `gorm:"size:500" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`

	Participant *Participant `gorm:"foreignKey:ParticipantID" json:"participant,omitempty"`
	Event       *Event       `gorm:"foreignKey:EventID" json:"event,omitempty"`
}

// The status machine:
//
//	Pending   -> Confirmed | Rejected | Cancelled
//	Confirmed -> Attended  | Cancelled
//	Rejected  -> Cancelled
//	Attended  -> (terminal)
//
// Each transition method applies in memory and reports whether it did;
// an illegal transition is a normal no-op, not an error.

// Confirm moves Pending to Confirmed.
func (r *Registration) Confirm() bool {
	if r.Status != StatusPending {
		return false
	}
	r.Status = StatusConfirmed
	return true
}

// Reject moves Pending to Rejected.
func (r *Registration) Reject() bool {
	if r.Status != StatusPending {
		return false
	}
	r.Status = StatusRejected
	return true
}

// MarkAttended moves Confirmed to Attended.
func (r *Registration) MarkAttended() bool {
	if r.Status != StatusConfirmed {
		return false
	}
	r.Status = StatusAttended
	return true
}

// Cancel moves any state except Attended to Cancelled.
func (r *Registration) Cancel() bool {
	if r.Status == StatusAttended {
		return false
	}
	r.Status = StatusCancelled
	return true
}

func (r *Registration) CanBeApproved() bool { return r.Status == StatusPending }
func (r *Registration) CanBeRejected() bool { return r.Status == StatusPending }
