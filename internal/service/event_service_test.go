package service

import (
	"context"
	"testing"
	"time"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventServiceForTest(events ...*model.Event) (EventService, *fakeEventRepo, *fakeNotificationService) {
	repo := newFakeEventRepo(events...)
	typeRepo := &fakeEventTypeRepo{types: map[uint]*model.EventType{
		1: {ID: 1, Name: "Worship"},
	}}
	placeRepo := &fakePlaceRepo{places: map[uint]*model.Place{
		1: {ID: 1, Name: "Main Hall"},
	}}
	notifications := &fakeNotificationService{}
	return NewEventService(repo, typeRepo, placeRepo, notifications), repo, notifications
}

func pendingEvent(id uint) *model.Event {
	start := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	return &model.Event{
		ID:            id,
		Title:         "Youth night",
		StartDateTime: start,
		EndDateTime:   start.Add(2 * time.Hour),
		State:         model.EventStatePending,
		EventTypeID:   1,
		PlaceID:       1,
	}
}

func TestCreateEventStartsPending(t *testing.T) {
	svc, _, _ := newEventServiceForTest()
	start := time.Date(2026, 4, 5, 10, 0, 0, 0, time.UTC)

	event, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title:         "Easter service",
		StartDateTime: start,
		EndDateTime:   start.Add(time.Hour),
		EventTypeID:   1,
		PlaceID:       1,
	})
	require.NoError(t, err)
	assert.Equal(t, model.EventStatePending, event.State)
	assert.NotZero(t, event.ID)
}

func TestCreateEventRejectsUnknownReferences(t *testing.T) {
	svc, _, _ := newEventServiceForTest()
	start := time.Date(2026, 4, 5, 10, 0, 0, 0, time.UTC)

	_, err := svc.CreateEvent(context.Background(), dto.CreateEventRequest{
		Title:         "Easter service",
		StartDateTime: start,
		EndDateTime:   start.Add(time.Hour),
		EventTypeID:   99,
		PlaceID:       1,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdateStatus(t *testing.T) {
	comment := "room conflict"

	tests := []struct {
		name      string
		initial   string
		req       dto.UpdateEventStatusRequest
		wantErr   error
		wantState string
	}{
		{
			name:      "pending to approved",
			initial:   model.EventStatePending,
			req:       dto.UpdateEventStatusRequest{State: model.EventStateApproved},
			wantState: model.EventStateApproved,
		},
		{
			name:      "pending to rejected with comment",
			initial:   model.EventStatePending,
			req:       dto.UpdateEventStatusRequest{State: model.EventStateRejected, ReviewComment: &comment},
			wantState: model.EventStateRejected,
		},
		{
			name:    "approved is final",
			initial: model.EventStateApproved,
			req:     dto.UpdateEventStatusRequest{State: model.EventStateRejected},
			wantErr: apperror.ErrInvalidTransition,
		},
		{
			name:    "rejected is final",
			initial: model.EventStateRejected,
			req:     dto.UpdateEventStatusRequest{State: model.EventStateApproved},
			wantErr: apperror.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := pendingEvent(1)
			event.State = tt.initial
			svc, repo, notifications := newEventServiceForTest(event)

			updated, err := svc.UpdateStatus(context.Background(), 1, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.initial, repo.events[1].State)
				assert.Empty(t, notifications.sent)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantState, updated.State)
			require.Len(t, notifications.sent, 1)
			assert.Equal(t, event.ID, *notifications.sent[0].EventID)
			if tt.req.ReviewComment != nil {
				require.NotNil(t, updated.ReviewComment)
				assert.Equal(t, comment, *updated.ReviewComment)
			}
		})
	}
}

func TestUpdateStatusMissingEvent(t *testing.T) {
	svc, _, _ := newEventServiceForTest()

	_, err := svc.UpdateStatus(context.Background(), 42, dto.UpdateEventStatusRequest{
		State: model.EventStateApproved,
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUpdateEventNeverTouchesState(t *testing.T) {
	event := pendingEvent(1)
	event.State = model.EventStateApproved
	svc, repo, _ := newEventServiceForTest(event)

	title := "Youth night (moved)"
	updated, err := svc.UpdateEvent(context.Background(), 1, dto.UpdateEventRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, model.EventStateApproved, repo.events[1].State)
}

func TestUpdateEventRejectsInvertedDates(t *testing.T) {
	event := pendingEvent(1)
	svc, _, _ := newEventServiceForTest(event)

	badEnd := event.StartDateTime.Add(-time.Hour)
	_, err := svc.UpdateEvent(context.Background(), 1, dto.UpdateEventRequest{EndDateTime: &badEnd})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
