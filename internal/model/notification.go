package model

import "time"

const (
	NotificationEventApproved = "EVENT_APPROVED"
	NotificationEventRejected = "EVENT_REJECTED"
)

// Notification is a console-facing record of an event state change. Rows are
// also published over Redis so connected consoles receive them live.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	EventID   *uint     `json:"eventId,omitempty"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
