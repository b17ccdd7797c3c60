package handler

import (
	"net/http"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/franciscozv/iglesia-admin/pkg/validator"
	"github.com/gin-gonic/gin"
)

type PeopleRoleHandler struct {
	service service.PeopleRoleService
}

func NewPeopleRoleHandler(service service.PeopleRoleService) *PeopleRoleHandler {
	return &PeopleRoleHandler{service: service}
}

func (h *PeopleRoleHandler) CreateRole(c *gin.Context) {
	var req dto.CreatePeopleRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	role, err := h.service.CreateRole(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "role created successfully", role)
}

func (h *PeopleRoleHandler) GetRoles(c *gin.Context) {
	roles, err := h.service.GetRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "roles retrieved", roles)
}

func (h *PeopleRoleHandler) GetRole(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	role, err := h.service.GetRole(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "role retrieved", role)
}

func (h *PeopleRoleHandler) UpdateRole(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	var req dto.UpdatePeopleRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	role, err := h.service.UpdateRole(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "role updated successfully", role)
}

func (h *PeopleRoleHandler) DeleteRole(c *gin.Context) {
	var uri dto.IDUri
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.DeleteRole(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "role deleted successfully", nil)
}
