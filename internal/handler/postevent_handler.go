package handler

import (
	"net/http"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/franciscozv/iglesia-admin/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PostEventHandler struct {
	service service.PostEventService
}

func NewPostEventHandler(service service.PostEventService) *PostEventHandler {
	return &PostEventHandler{service: service}
}

// CreatePostEvent accepts a multipart form: a required "photo" file plus
// "comment", "conclution" and "eventId" fields.
func (h *PostEventHandler) CreatePostEvent(c *gin.Context) {
	var req dto.CreatePostEventRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		response.BadRequest(c, "photo is required")
		return
	}

	f, err := file.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer f.Close()

	photo := &service.PhotoFile{
		Reader:   f,
		FileName: file.Filename,
	}

	postEvent, err := h.service.CreatePostEvent(c.Request.Context(), req, photo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "post-event report created", postEvent)
}

func (h *PostEventHandler) GetPostEvents(c *gin.Context) {
	reports, err := h.service.GetPostEvents(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post-event reports retrieved", reports)
}

func (h *PostEventHandler) GetPostEventsByEvent(c *gin.Context) {
	var uri dto.EventURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	reports, err := h.service.GetPostEventsByEvent(c.Request.Context(), uri.EventID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "post-event reports retrieved", reports)
}
