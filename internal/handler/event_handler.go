package handler

import (
	"net/http"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/franciscozv/iglesia-admin/pkg/validator"
	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	service      service.EventService
	participants service.ParticipantService
}

func NewEventHandler(service service.EventService, participants service.ParticipantService) *EventHandler {
	return &EventHandler{service: service, participants: participants}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "event created successfully", event)
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.service.GetEvents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "events retrieved", events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	var uri dto.EventURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	event, err := h.service.GetEvent(c.Request.Context(), uri.EventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event retrieved", event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var uri dto.EventURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), uri.EventID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event updated successfully", event)
}

func (h *EventHandler) UpdateEventStatus(c *gin.Context) {
	var uri dto.EventURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	var req dto.UpdateEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	event, err := h.service.UpdateStatus(c.Request.Context(), uri.EventID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event status updated", event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	var uri dto.EventURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), uri.EventID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event deleted successfully", nil)
}

// Event-scoped participants

func (h *EventHandler) AddParticipant(c *gin.Context) {
	var uri dto.EventURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	participant, err := h.participants.AddParticipant(c.Request.Context(), uri.EventID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "participant added", participant)
}

func (h *EventHandler) GetParticipants(c *gin.Context) {
	var uri dto.EventURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	participants, err := h.participants.GetParticipants(c.Request.Context(), uri.EventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "participants retrieved", participants)
}

func (h *EventHandler) RemoveParticipant(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.participants.RemoveParticipant(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "participant removed", nil)
}
