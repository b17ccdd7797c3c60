package service

import (
	"context"
	"testing"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGroupServiceForTest() GroupService {
	groups := &fakeGroupRepo{groups: map[uint]*model.Group{
		1: {ID: 1, Name: "Choir"},
	}}
	roles := &fakePeopleRoleRepo{roles: map[uint]*model.PeopleRole{
		5: {ID: 5, Name: "Director"},
	}}
	return NewGroupService(groups, roles, newFakeGroupRoleRepo())
}

func TestCreateGroupRejectsDuplicateName(t *testing.T) {
	svc := newGroupServiceForTest()

	_, err := svc.CreateGroup(context.Background(), dto.CreateGroupRequest{
		Name:        "Choir",
		Description: "another choir",
	})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestCreateGroupSanitizesDescription(t *testing.T) {
	svc := newGroupServiceForTest()

	group, err := svc.CreateGroup(context.Background(), dto.CreateGroupRequest{
		Name:        "Ushers",
		Description: `Welcomes visitors <script>alert("x")</script>`,
	})
	require.NoError(t, err)
	assert.NotContains(t, group.Description, "<script>")
}

func TestAssignRole(t *testing.T) {
	svc := newGroupServiceForTest()

	assignment, err := svc.AssignRole(context.Background(), 1, dto.AssignGroupRoleRequest{RoleID: 5})
	require.NoError(t, err)
	assert.Equal(t, uint(1), assignment.GroupID)
	assert.Equal(t, uint(5), assignment.RoleID)

	// The same role cannot be assigned to the group twice.
	_, err = svc.AssignRole(context.Background(), 1, dto.AssignGroupRoleRequest{RoleID: 5})
	assert.ErrorIs(t, err, apperror.ErrDuplicate)
}

func TestAssignRoleValidatesReferences(t *testing.T) {
	svc := newGroupServiceForTest()

	_, err := svc.AssignRole(context.Background(), 99, dto.AssignGroupRoleRequest{RoleID: 5})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.AssignRole(context.Background(), 1, dto.AssignGroupRoleRequest{RoleID: 99})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestRemoveRoleMissing(t *testing.T) {
	svc := newGroupServiceForTest()

	err := svc.RemoveRole(context.Background(), 1, 5)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
