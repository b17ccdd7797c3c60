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

func newMemberServiceForTest() (GroupMemberService, *fakeGroupMemberRepo) {
	repo := newFakeGroupMemberRepo()
	groups := &fakeGroupRepo{groups: map[uint]*model.Group{
		1: {ID: 1, Name: "Choir"},
	}}
	people := &fakePersonRepo{people: map[uint]*model.Person{
		10: {ID: 10, Firstname: "Maria"},
	}}
	roles := &fakePeopleRoleRepo{roles: map[uint]*model.PeopleRole{
		5: {ID: 5, Name: "Director"},
	}}
	return NewGroupMemberService(repo, groups, people, roles), repo
}

func TestAddMemberCreatesActiveMembership(t *testing.T) {
	svc, _ := newMemberServiceForTest()

	member, err := svc.AddMember(context.Background(), 1, dto.AddGroupMemberRequest{PersonID: 10})
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusActive, member.Status)
	assert.Equal(t, uint(10), member.PersonID)
}

func TestAddMemberReactivatesRemovedMembership(t *testing.T) {
	svc, repo := newMemberServiceForTest()

	_, err := svc.AddMember(context.Background(), 1, dto.AddGroupMemberRequest{PersonID: 10})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveMember(context.Background(), 1, 10))
	removed, err := repo.FindByGroupAndPerson(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusInactive, removed.Status)

	// Re-adding must reuse the existing row, not insert a second one.
	member, err := svc.AddMember(context.Background(), 1, dto.AddGroupMemberRequest{PersonID: 10})
	require.NoError(t, err)
	assert.Equal(t, model.MemberStatusActive, member.Status)
	assert.Len(t, repo.members, 1)
	assert.Equal(t, removed.ID, member.ID)
}

func TestAddMemberValidatesReferences(t *testing.T) {
	svc, _ := newMemberServiceForTest()

	_, err := svc.AddMember(context.Background(), 99, dto.AddGroupMemberRequest{PersonID: 10})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = svc.AddMember(context.Background(), 1, dto.AddGroupMemberRequest{PersonID: 99})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	badRole := uint(99)
	_, err = svc.AddMember(context.Background(), 1, dto.AddGroupMemberRequest{PersonID: 10, PersonRoleID: &badRole})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestRemoveMemberMissing(t *testing.T) {
	svc, _ := newMemberServiceForTest()

	err := svc.RemoveMember(context.Background(), 1, 10)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
