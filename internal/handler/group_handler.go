package handler

import (
	"net/http"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/franciscozv/iglesia-admin/pkg/validator"
	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	service service.GroupService
	members service.GroupMemberService
}

func NewGroupHandler(service service.GroupService, members service.GroupMemberService) *GroupHandler {
	return &GroupHandler{service: service, members: members}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	group, err := h.service.CreateGroup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "group created successfully", group)
}

func (h *GroupHandler) GetGroups(c *gin.Context) {
	groups, err := h.service.GetGroups(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "groups retrieved", groups)
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	var uri dto.GroupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	group, err := h.service.GetGroup(c.Request.Context(), uri.GroupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "group retrieved", group)
}

func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	var uri dto.GroupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	group, err := h.service.UpdateGroup(c.Request.Context(), uri.GroupID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "group updated successfully", group)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	var uri dto.GroupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid id")
		return
	}

	if err := h.service.DeleteGroup(c.Request.Context(), uri.GroupID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "group deleted successfully", nil)
}

// Group-scoped role assignments

func (h *GroupHandler) AssignRole(c *gin.Context) {
	var uri dto.GroupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	var req dto.AssignGroupRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	assignment, err := h.service.AssignRole(c.Request.Context(), uri.GroupID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "role assigned to group", assignment)
}

func (h *GroupHandler) GetGroupRoles(c *gin.Context) {
	var uri dto.GroupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	assignments, err := h.service.GetGroupRoles(c.Request.Context(), uri.GroupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "group roles retrieved", assignments)
}

func (h *GroupHandler) RemoveRole(c *gin.Context) {
	var uri dto.GroupRoleURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid group or role id")
		return
	}

	if err := h.service.RemoveRole(c.Request.Context(), uri.GroupID, uri.RoleID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "role removed from group", nil)
}

// Group-scoped memberships

func (h *GroupHandler) AddMember(c *gin.Context) {
	var uri dto.GroupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	var req dto.AddGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	member, err := h.members.AddMember(c.Request.Context(), uri.GroupID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "member added to group", member)
}

func (h *GroupHandler) GetMembers(c *gin.Context) {
	var uri dto.GroupURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid group id")
		return
	}

	members, err := h.members.GetMembers(c.Request.Context(), uri.GroupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "group members retrieved", members)
}

func (h *GroupHandler) UpdateMember(c *gin.Context) {
	var uri dto.GroupMemberURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid group or person id")
		return
	}

	var req dto.UpdateGroupMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	member, err := h.members.UpdateMember(c.Request.Context(), uri.GroupID, uri.PersonID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "membership updated", member)
}

func (h *GroupHandler) RemoveMember(c *gin.Context) {
	var uri dto.GroupMemberURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "invalid group or person id")
		return
	}

	if err := h.members.RemoveMember(c.Request.Context(), uri.GroupID, uri.PersonID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "member removed from group", nil)
}
