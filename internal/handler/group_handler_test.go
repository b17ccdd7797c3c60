package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"github.com/franciscozv/iglesia-admin/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGroupService struct {
	groups map[uint]*model.Group
}

func (s *stubGroupService) CreateGroup(_ context.Context, req dto.CreateGroupRequest) (*model.Group, error) {
	return &model.Group{ID: 1, Name: req.Name, Description: req.Description}, nil
}

func (s *stubGroupService) GetGroups(_ context.Context) ([]*model.Group, error) { return nil, nil }

func (s *stubGroupService) GetGroup(_ context.Context, id uint) (*model.Group, error) {
	g, ok := s.groups[id]
	if !ok {
		return nil, fmt.Errorf("group %d: %w", id, apperror.ErrNotFound)
	}
	return g, nil
}

func (s *stubGroupService) UpdateGroup(_ context.Context, id uint, req dto.UpdateGroupRequest) (*model.Group, error) {
	return nil, nil
}

func (s *stubGroupService) DeleteGroup(_ context.Context, id uint) error { return nil }

func (s *stubGroupService) AssignRole(_ context.Context, groupID uint, req dto.AssignGroupRoleRequest) (*model.GroupRoleAssignment, error) {
	return nil, nil
}

func (s *stubGroupService) GetGroupRoles(_ context.Context, groupID uint) ([]*model.GroupRoleAssignment, error) {
	return nil, nil
}

func (s *stubGroupService) RemoveRole(_ context.Context, groupID, roleID uint) error { return nil }

func newGroupRouter(svc *stubGroupService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGroupHandler(svc, nil)
	router := gin.New()
	router.POST("/api/groups", h.CreateGroup)
	router.GET("/api/groups/:groupId", h.GetGroup)
	return router
}

func TestCreateGroup(t *testing.T) {
	router := newGroupRouter(&stubGroupService{})

	body, _ := json.Marshal(dto.CreateGroupRequest{Name: "Choir", Description: "Sunday choir"})
	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "group created successfully", env.Message)
}

func TestCreateGroupValidation(t *testing.T) {
	router := newGroupRouter(&stubGroupService{})

	body := []byte(`{"name":"","description":"Sunday choir"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/groups", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Contains(t, env.Message, "Name")
}

func TestGetGroupNotFound(t *testing.T) {
	router := newGroupRouter(&stubGroupService{groups: map[uint]*model.Group{}})

	req := httptest.NewRequest(http.MethodGet, "/api/groups/42", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var env response.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusNotFound, env.StatusCode)
}
