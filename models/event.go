package models

import (
	"time"
)

// Event times are a date-only Date column plus zero-padded "HH:MM" start and
// end strings. Zero-padding means lexical order matches clock order, so the
// strings compare and sort correctly both in Go and in SQL.
type Event struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Date        time.Time `gorm:"type:date;not null;index" json:"date"`
	StartTime   string    `gorm:"size:5;not null" json:"start_time"`
	EndTime     string    `gorm:"size:5;not null" json:"end_time"`
	MaxCapacity int       `gorm:"not null;default:100" json:"max_capacity"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	VenueID     *uint     `json:"venue_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Venue *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`

	// Both child collections die with the event.
	Registrations   []Registration  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
	EventActivities []EventActivity `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"activities,omitempty"`
}

func (e *Event) Activate()   { e.IsActive = true }
func (e *Event) Deactivate() { e.IsActive = false }

func (e *Event) Active() bool { return e.IsActive }

// AvailableSpots is max capacity minus every registration that still holds a
// seat. Pending, Confirmed, Attended and Rejected all consume one; only
// Cancelled frees it. The result is not clamped at zero. Requires
// e.Registrations to be loaded, and must be recomputed after any status
// change rather than cached.
func (e *Event) AvailableSpots() int {
	held := 0
	for _, r := range e.Registrations {
		if r.Status != StatusCancelled {
			held++
		}
	}
	return e.MaxCapacity - held
}

// CanRegister reports whether the event accepts new registrations: it must
// be active, dated today or later (date-only comparison), and have spots
// left.
func (e *Event) CanRegister() bool {
	return e.IsActive && !DateOnly(e.Date).Before(Today()) && e.AvailableSpots() > 0
}

// DateOnly strips the time-of-day portion, keeping the calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return DateOnly(time.Now())
}
