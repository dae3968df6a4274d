package models

// EventActivity links one event to one activity, unique per pair. It carries
// an optional scheduled time within the event plus display metadata.
type EventActivity struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	EventID       uint    `gorm:"not null;uniqueIndex:idx_event_activity" json:"event_id"`
	ActivityID    uint    `gorm:"not null;uniqueIndex:idx_event_activity" json:"activity_id"`
	ScheduledTime *string `gorm:"size:5" json:"scheduled_time,omitempty"`
	Notes         string  `gorm:"size:500" json:"notes,omitempty"`
	DisplayOrder  int     `gorm:"not null;default:0" json:"display_order"`

	Event    *Event    `gorm:"foreignKey:EventID" json:"-"`
	Activity *Activity `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}
