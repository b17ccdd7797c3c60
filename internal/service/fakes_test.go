package service

import (
	"context"
	"io"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"gorm.io/gorm"
)

// In-memory fakes backing the service tests.

type fakeEventRepo struct {
	events map[uint]*model.Event
	nextID uint
}

func newFakeEventRepo(events ...*model.Event) *fakeEventRepo {
	r := &fakeEventRepo{events: map[uint]*model.Event{}, nextID: 1}
	for _, e := range events {
		if e.ID >= r.nextID {
			r.nextID = e.ID + 1
		}
		r.events[e.ID] = e
	}
	return r
}

func (r *fakeEventRepo) Create(_ context.Context, event *model.Event) error {
	event.ID = r.nextID
	r.nextID++
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) FindAll(_ context.Context) ([]*model.Event, error) {
	out := make([]*model.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id uint) (*model.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *model.Event) error {
	r.events[event.ID] = event
	return nil
}

func (r *fakeEventRepo) UpdateState(_ context.Context, id uint, state string, reviewComment *string) error {
	e, ok := r.events[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.State = state
	e.ReviewComment = reviewComment
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uint) error {
	delete(r.events, id)
	return nil
}

func (r *fakeEventRepo) CountByMonth(_ context.Context) ([]dto.CountByLabel, error) {
	return nil, nil
}

type fakeEventTypeRepo struct {
	types map[uint]*model.EventType
}

func (r *fakeEventTypeRepo) Create(_ context.Context, t *model.EventType) error {
	r.types[t.ID] = t
	return nil
}

func (r *fakeEventTypeRepo) FindAll(_ context.Context) ([]*model.EventType, error) {
	return nil, nil
}

func (r *fakeEventTypeRepo) FindByID(_ context.Context, id uint) (*model.EventType, error) {
	t, ok := r.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *fakeEventTypeRepo) Update(_ context.Context, t *model.EventType) error { return nil }
func (r *fakeEventTypeRepo) Delete(_ context.Context, id uint) error            { return nil }

type fakePlaceRepo struct {
	places map[uint]*model.Place
}

func (r *fakePlaceRepo) Create(_ context.Context, p *model.Place) error { return nil }
func (r *fakePlaceRepo) FindAll(_ context.Context) ([]*model.Place, error) {
	return nil, nil
}

func (r *fakePlaceRepo) FindByID(_ context.Context, id uint) (*model.Place, error) {
	p, ok := r.places[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePlaceRepo) Update(_ context.Context, p *model.Place) error { return nil }
func (r *fakePlaceRepo) Delete(_ context.Context, id uint) error        { return nil }

type fakeNotificationService struct {
	sent []*model.Notification
}

func (s *fakeNotificationService) Notify(_ context.Context, n *model.Notification) error {
	s.sent = append(s.sent, n)
	return nil
}

func (s *fakeNotificationService) GetNotifications(_ context.Context, limit, offset int) ([]*model.Notification, error) {
	return s.sent, nil
}

func (s *fakeNotificationService) MarkAsRead(_ context.Context, id uint) error { return nil }

type fakePostEventRepo struct {
	created []*model.PostEvent
}

func (r *fakePostEventRepo) Create(_ context.Context, p *model.PostEvent) error {
	p.ID = uint(len(r.created) + 1)
	r.created = append(r.created, p)
	return nil
}

func (r *fakePostEventRepo) FindAll(_ context.Context) ([]*model.PostEvent, error) {
	return r.created, nil
}

func (r *fakePostEventRepo) FindByEvent(_ context.Context, eventID uint) ([]*model.PostEvent, error) {
	var out []*model.PostEvent
	for _, p := range r.created {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakePhotoStorage struct {
	uploads int
}

func (s *fakePhotoStorage) UploadPhoto(_ context.Context, _ io.Reader, folder, fileName string) (string, error) {
	s.uploads++
	return "https://photos.test/" + folder + "/" + fileName, nil
}

func (s *fakePhotoStorage) DeletePhoto(_ context.Context, _ string) error { return nil }

type fakeGroupRepo struct {
	groups map[uint]*model.Group
}

func (r *fakeGroupRepo) Create(_ context.Context, g *model.Group) error {
	r.groups[g.ID] = g
	return nil
}

func (r *fakeGroupRepo) FindAll(_ context.Context) ([]*model.Group, error) { return nil, nil }

func (r *fakeGroupRepo) FindByID(_ context.Context, id uint) (*model.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return g, nil
}

func (r *fakeGroupRepo) FindByName(_ context.Context, name string) (*model.Group, error) {
	for _, g := range r.groups {
		if g.Name == name {
			return g, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroupRepo) Update(_ context.Context, g *model.Group) error { return nil }
func (r *fakeGroupRepo) Delete(_ context.Context, id uint) error        { return nil }

type fakePersonRepo struct {
	people map[uint]*model.Person
}

func (r *fakePersonRepo) Create(_ context.Context, p *model.Person) error { return nil }

func (r *fakePersonRepo) FindAll(_ context.Context, filter string) ([]*model.Person, error) {
	return nil, nil
}

func (r *fakePersonRepo) FindByID(_ context.Context, id uint) (*model.Person, error) {
	p, ok := r.people[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakePersonRepo) FindByIDs(_ context.Context, ids []uint) ([]*model.Person, error) {
	return nil, nil
}

func (r *fakePersonRepo) Update(_ context.Context, p *model.Person) error { return nil }
func (r *fakePersonRepo) Delete(_ context.Context, id uint) error         { return nil }

type fakePeopleRoleRepo struct {
	roles map[uint]*model.PeopleRole
}

func (r *fakePeopleRoleRepo) Create(_ context.Context, role *model.PeopleRole) error { return nil }

func (r *fakePeopleRoleRepo) FindAll(_ context.Context) ([]*model.PeopleRole, error) {
	return nil, nil
}

func (r *fakePeopleRoleRepo) FindByID(_ context.Context, id uint) (*model.PeopleRole, error) {
	role, ok := r.roles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return role, nil
}

func (r *fakePeopleRoleRepo) Update(_ context.Context, role *model.PeopleRole) error { return nil }
func (r *fakePeopleRoleRepo) Delete(_ context.Context, id uint) error                { return nil }

type assignmentKey struct {
	groupID uint
	roleID  uint
}

type fakeGroupRoleRepo struct {
	assignments map[assignmentKey]*model.GroupRoleAssignment
}

func newFakeGroupRoleRepo() *fakeGroupRoleRepo {
	return &fakeGroupRoleRepo{assignments: map[assignmentKey]*model.GroupRoleAssignment{}}
}

func (r *fakeGroupRoleRepo) Create(_ context.Context, a *model.GroupRoleAssignment) error {
	a.ID = uint(len(r.assignments) + 1)
	r.assignments[assignmentKey{groupID: a.GroupID, roleID: a.RoleID}] = a
	return nil
}

func (r *fakeGroupRoleRepo) FindByGroup(_ context.Context, groupID uint) ([]*model.GroupRoleAssignment, error) {
	var out []*model.GroupRoleAssignment
	for _, a := range r.assignments {
		if a.GroupID == groupID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeGroupRoleRepo) FindByGroupAndRole(_ context.Context, groupID, roleID uint) (*model.GroupRoleAssignment, error) {
	a, ok := r.assignments[assignmentKey{groupID: groupID, roleID: roleID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (r *fakeGroupRoleRepo) Delete(_ context.Context, groupID, roleID uint) error {
	delete(r.assignments, assignmentKey{groupID: groupID, roleID: roleID})
	return nil
}

type memberKey struct {
	groupID  uint
	personID uint
}

type fakeGroupMemberRepo struct {
	members map[memberKey]*model.GroupMember
	upserts int
}

func newFakeGroupMemberRepo() *fakeGroupMemberRepo {
	return &fakeGroupMemberRepo{members: map[memberKey]*model.GroupMember{}}
}

func (r *fakeGroupMemberRepo) Upsert(_ context.Context, m *model.GroupMember) error {
	r.upserts++
	key := memberKey{groupID: m.GroupID, personID: m.PersonID}
	if existing, ok := r.members[key]; ok {
		existing.Status = m.Status
		existing.PersonRoleID = m.PersonRoleID
		return nil
	}
	m.ID = uint(len(r.members) + 1)
	r.members[key] = m
	return nil
}

func (r *fakeGroupMemberRepo) FindByGroup(_ context.Context, groupID uint) ([]*model.GroupMember, error) {
	var out []*model.GroupMember
	for _, m := range r.members {
		if m.GroupID == groupID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeGroupMemberRepo) FindByGroupAndPerson(_ context.Context, groupID, personID uint) (*model.GroupMember, error) {
	m, ok := r.members[memberKey{groupID: groupID, personID: personID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (r *fakeGroupMemberRepo) Update(_ context.Context, m *model.GroupMember) error {
	r.members[memberKey{groupID: m.GroupID, personID: m.PersonID}] = m
	return nil
}

func (r *fakeGroupMemberRepo) Delete(_ context.Context, groupID, personID uint) error {
	delete(r.members, memberKey{groupID: groupID, personID: personID})
	return nil
}

func (r *fakeGroupMemberRepo) CountActivePerGroup(_ context.Context) ([]dto.CountByLabel, error) {
	return nil, nil
}
