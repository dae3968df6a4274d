package models

import (
	"time"
)

type Venue struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Address     string    `gorm:"size:500;not null" json:"address"`
	City        string    `gorm:"size:100" json:"city"`
	PostCode    string    `gorm:"size:20" json:"post_code"`
	Capacity    int       `gorm:"not null;default:100" json:"capacity"`
	Description string    `gorm:"type:text" json:"description"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Back-reference only: deleting a venue nulls the foreign key on its
	// events, it never deletes them.
	Events []Event `gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL" json:"-"`
}

func (v *Venue) Activate()   { v.IsActive = true }
func (v *Venue) Deactivate() { v.IsActive = false }

func (v *Venue) Active() bool { return v.IsActive }

// FullAddress joins address, city and post code for display.
func (v *Venue) FullAddress() string {
	if v.City == "" {
		return v.Address
	}
	addr := v.Address + ", " + v.City
	if v.PostCode != "" {
		addr += " " + v.PostCode
	}
	return addr
}

// IsAvailable reports whether the venue is free for the given window on the
// given date. Windows are half-open [start, end): a conflict exists when the
// candidate start falls inside an existing event, the candidate end falls
// inside one, or the candidate window fully contains one. Only active events
// on the same calendar date count, and excludeEventID (the event being
// edited, 0 for none) is skipped. Requires v.Events to be loaded.
func (v *Venue) IsAvailable(date time.Time, startTime, endTime string, excludeEventID uint) bool {
	day := DateOnly(date)
	for _, e := range v.Events {
		if e.ID == excludeEventID || !e.IsActive || !DateOnly(e.Date).Equal(day) {
			continue
		}
		if (startTime >= e.StartTime && startTime < e.EndTime) ||
			(endTime > e.StartTime && endTime <= e.EndTime) ||
			(startTime <= e.StartTime && endTime >= e.EndTime) {
			return false
		}
	}
	return true
}
