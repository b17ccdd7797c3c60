package handler

import (
	"net/http"

	"github.com/franciscozv/iglesia-admin/internal/service"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/gin-gonic/gin"
)

type StatHandler struct {
	service service.StatService
}

func NewStatHandler(service service.StatService) *StatHandler {
	return &StatHandler{service: service}
}

func (h *StatHandler) GetEventsPerMonth(c *gin.Context) {
	rows, err := h.service.EventsPerMonth(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "events per month retrieved", rows)
}

func (h *StatHandler) GetMembersPerGroup(c *gin.Context) {
	rows, err := h.service.MembersPerGroup(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "members per group retrieved", rows)
}
