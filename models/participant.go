package models

import (
	"time"
)

// Participant email uniqueness is case-insensitive; the index lives on
// LOWER(email) (created in database.Migrate) and every lookup compares
// lowercased.
type Participant struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:100;not null" json:"first_name"`
	LastName  string    `gorm:"size:100;not null" json:"last_name"`
	Email     string    `gorm:"size:255;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone,omitempty"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Registrations []Registration `gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE" json:"-"`
}

func (p *Participant) Activate()   { p.IsActive = true }
func (p *Participant) Deactivate() { p.IsActive = false }

func (p *Participant) Active() bool { return p.IsActive }

func (p *Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ActiveRegistrationCount counts registrations that still hold a seat
// somewhere. Requires p.Registrations to be loaded.
func (p *Participant) ActiveRegistrationCount() int {
	n := 0
	for _, r := range p.Registrations {
		if r.Status != StatusCancelled {
			n++
		}
	}
	return n
}
