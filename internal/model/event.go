package model

import "time"

// Event approval states. A PENDING event moves to APPROVED or REJECTED through
// the status operation only; no other transition is allowed.
const (
	EventStatePending  = "PENDING"
	EventStateApproved = "APPROVED"
	EventStateRejected = "REJECTED"
)

type EventType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Color       string    `gorm:"size:20" json:"color"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Event struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"size:255;not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	StartDateTime time.Time `gorm:"not null" json:"startDateTime"`
	EndDateTime   time.Time `gorm:"not null" json:"endDateTime"`
	Location      string    `gorm:"size:255" json:"location"`
	State         string    `gorm:"size:20;not null;default:PENDING" json:"state"`
	ReviewComment *string   `gorm:"type:text" json:"reviewComment,omitempty"`
	EventTypeID   uint      `gorm:"not null" json:"eventTypeId"`
	EventType     EventType `gorm:"constraint:OnDelete:RESTRICT" json:"eventType,omitempty"`
	PlaceID       uint      `gorm:"not null" json:"placeId"`
	Place         Place     `gorm:"constraint:OnDelete:RESTRICT" json:"place,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Responsibility struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Participant records who does what at an event.
type Participant struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	EventID          uint           `gorm:"not null;uniqueIndex:idx_event_person_resp" json:"eventId"`
	Event            Event          `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	PersonID         uint           `gorm:"not null;uniqueIndex:idx_event_person_resp" json:"personId"`
	Person           Person         `gorm:"constraint:OnDelete:CASCADE" json:"person,omitempty"`
	ResponsibilityID uint           `gorm:"not null;uniqueIndex:idx_event_person_resp" json:"responsibilityId"`
	Responsibility   Responsibility `gorm:"constraint:OnDelete:CASCADE" json:"responsibility,omitempty"`
	CreatedAt        time.Time      `gorm:"autoCreateTime" json:"created_at"`
}

// PostEvent is the report attached to a completed event: a photo plus the
// organizer's comment and conclusion. It may only exist for APPROVED events.
type PostEvent struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PhotoURL   string    `gorm:"type:text;not null" json:"photoUrl"`
	Comment    string    `gorm:"type:text" json:"comment"`
	Conclusion string    `gorm:"type:text" json:"conclusion"`
	EventID    uint      `gorm:"not null" json:"eventId"`
	Event      Event     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
