package handler

import (
	"net/http"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/franciscozv/iglesia-admin/pkg/validator"
	"github.com/gin-gonic/gin"
)

type EventTypeHandler struct {
	service service.EventTypeService
}

func NewEventTypeHandler(service service.EventTypeService) *EventTypeHandler {
	return &EventTypeHandler{service: service}
}

func (h *EventTypeHandler) CreateEventType(c *gin.Context) {
	var req dto.CreateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	eventType, err := h.service.CreateEventType(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "event type created successfully", eventType)
}

func (h *EventTypeHandler) GetEventTypes(c *gin.Context) {
	types, err := h.service.GetEventTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event types retrieved", types)
}

func (h *EventTypeHandler) GetEventType(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	eventType, err := h.service.GetEventType(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event type retrieved", eventType)
}

func (h *EventTypeHandler) UpdateEventType(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	var req dto.UpdateEventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	eventType, err := h.service.UpdateEventType(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event type updated successfully", eventType)
}

func (h *EventTypeHandler) DeleteEventType(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.DeleteEventType(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "event type deleted successfully", nil)
}
