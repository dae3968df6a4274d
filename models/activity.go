package models

import (
	"fmt"
	"time"
)

type ActivityType string

const (
	TypeWorkshop    ActivityType = "Workshop"
	TypeTalk        ActivityType = "Talk"
	TypeGame        ActivityType = "Game"
	TypePerformance ActivityType = "Performance"
	TypeExhibition  ActivityType = "Exhibition"
	TypeNetworking  ActivityType = "Networking"
	TypeOther       ActivityType = "Other"
)

// ActivityTypes lists every valid activity type.
var ActivityTypes = []ActivityType{
	TypeWorkshop, TypeTalk, TypeGame, TypePerformance,
	TypeExhibition, TypeNetworking, TypeOther,
}

// ParseActivityType validates a raw string against the known types.
func ParseActivityType(s string) (ActivityType, bool) {
	for _, t := range ActivityTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

type Activity struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Name            string       `gorm:"size:200;not null" json:"name"`
	Description     string       `gorm:"type:text" json:"description"`
	Type            ActivityType `gorm:"size:20;not null;default:'Other'" json:"type"`
	DurationMinutes int          `gorm:"not null;default:60" json:"duration_minutes"`
	IsActive        bool         `gorm:"not null;default:true" json:"is_active"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`

	EventActivities []EventActivity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE" json:"-"`
}

func (a *Activity) Activate()   { a.IsActive = true }
func (a *Activity) Deactivate() { a.IsActive = false }

func (a *Activity) Active() bool { return a.IsActive }

// DurationDisplay formats the duration as "45 min", "2h" or "1h 30m".
func (a *Activity) DurationDisplay() string {
	if a.DurationMinutes < 60 {
		return fmt.Sprintf("%d min", a.DurationMinutes)
	}
	hours := a.DurationMinutes / 60
	mins := a.DurationMinutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}
