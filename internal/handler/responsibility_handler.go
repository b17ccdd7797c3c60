package handler

import (
	"net/http"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/franciscozv/iglesia-admin/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ResponsibilityHandler struct {
	service service.ResponsibilityService
}

func NewResponsibilityHandler(service service.ResponsibilityService) *ResponsibilityHandler {
	return &ResponsibilityHandler{service: service}
}

func (h *ResponsibilityHandler) CreateResponsibility(c *gin.Context) {
	var req dto.CreateResponsibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	responsibility, err := h.service.CreateResponsibility(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "responsibility created successfully", responsibility)
}

func (h *ResponsibilityHandler) GetResponsibilities(c *gin.Context) {
	responsibilities, err := h.service.GetResponsibilities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "responsibilities retrieved", responsibilities)
}

func (h *ResponsibilityHandler) GetResponsibility(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	responsibility, err := h.service.GetResponsibility(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "responsibility retrieved", responsibility)
}

func (h *ResponsibilityHandler) UpdateResponsibility(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	var req dto.UpdateResponsibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	responsibility, err := h.service.UpdateResponsibility(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "responsibility updated successfully", responsibility)
}

func (h *ResponsibilityHandler) DeleteResponsibility(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.DeleteResponsibility(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "responsibility deleted successfully", nil)
}
