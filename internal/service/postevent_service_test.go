package service

import (
	"context"
	"strings"
	"testing"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPhoto() *PhotoFile {
	return &PhotoFile{Reader: strings.NewReader("jpeg bytes"), FileName: "report.jpg"}
}

func TestCreatePostEventRequiresApprovedEvent(t *testing.T) {
	tests := []struct {
		name    string
		state   string
		wantErr error
	}{
		{name: "approved event accepts report", state: model.EventStateApproved},
		{name: "pending event refuses report", state: model.EventStatePending, wantErr: apperror.ErrEventNotApproved},
		{name: "rejected event refuses report", state: model.EventStateRejected, wantErr: apperror.ErrEventNotApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := pendingEvent(7)
			event.State = tt.state
			repo := &fakePostEventRepo{}
			photos := &fakePhotoStorage{}
			svc := NewPostEventService(repo, newFakeEventRepo(event), photos)

			created, err := svc.CreatePostEvent(context.Background(), dto.CreatePostEventRequest{
				Comment: "great turnout",
				EventID: 7,
			}, testPhoto())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, repo.created)
				assert.Zero(t, photos.uploads)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, uint(7), created.EventID)
			assert.Equal(t, 1, photos.uploads)
			assert.Contains(t, created.PhotoURL, "post-events/")
		})
	}
}

func TestCreatePostEventMissingEvent(t *testing.T) {
	svc := NewPostEventService(&fakePostEventRepo{}, newFakeEventRepo(), &fakePhotoStorage{})

	_, err := svc.CreatePostEvent(context.Background(), dto.CreatePostEventRequest{EventID: 99}, testPhoto())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestCreatePostEventRequiresPhoto(t *testing.T) {
	event := pendingEvent(7)
	event.State = model.EventStateApproved
	svc := NewPostEventService(&fakePostEventRepo{}, newFakeEventRepo(event), &fakePhotoStorage{})

	_, err := svc.CreatePostEvent(context.Background(), dto.CreatePostEventRequest{EventID: 7}, nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
