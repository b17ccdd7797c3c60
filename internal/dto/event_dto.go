package dto

import "time"

type CreateEventRequest struct {
	Title         string    `json:"title" binding:"required,min=2,max=255"`
	Description   string    `json:"description"`
	StartDateTime time.Time `json:"startDateTime" binding:"required"`
	EndDateTime   time.Time `json:"endDateTime" binding:"required,gtfield=StartDateTime"`
	Location      string    `json:"location" binding:"max=255"`
	EventTypeID   uint      `json:"eventTypeId" binding:"required"`
	PlaceID       uint      `json:"placeId" binding:"required"`
}

// UpdateEventRequest never carries the state; transitions go through the
// status operation only.
type UpdateEventRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=2,max=255"`
	Description   *string    `json:"description"`
	StartDateTime *time.Time `json:"startDateTime"`
	EndDateTime   *time.Time `json:"endDateTime"`
	Location      *string    `json:"location" binding:"omitempty,max=255"`
	EventTypeID   *uint      `json:"eventTypeId"`
	PlaceID       *uint      `json:"placeId"`
}

type UpdateEventStatusRequest struct {
	State         string  `json:"state" binding:"required,oneof=APPROVED REJECTED"`
	ReviewComment *string `json:"reviewComment"`
}

type CreateEventTypeRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
	Color       string `json:"color" binding:"max=20"`
}

type UpdateEventTypeRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
	Color       *string `json:"color" binding:"omitempty,max=20"`
}

type CreateResponsibilityRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description"`
}

type UpdateResponsibilityRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description"`
}

// AddParticipantRequest assigns a person a responsibility at an event.
type AddParticipantRequest struct {
	PersonID         uint `json:"personId" binding:"required"`
	ResponsibilityID uint `json:"responsibilityId" binding:"required"`
}

type EventURI struct {
	EventID uint `uri:"eventId" binding:"required"`
}

// CreatePostEventRequest is bound from the multipart form; the photo file
// arrives separately. The "conclution" field name matches the console's wire
// format.
type CreatePostEventRequest struct {
	Comment    string `form:"comment"`
	Conclusion string `form:"conclution"`
	EventID    uint   `form:"eventId" binding:"required"`
}
