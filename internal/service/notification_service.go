package service

import (
	"context"
	"encoding/json"

	"github.com/franciscozv/iglesia-admin/internal/model"
	"github.com/franciscozv/iglesia-admin/internal/repository"
	"github.com/redis/go-redis/v9"
)

// NotificationChannel is the Redis pub/sub channel consoles subscribe to.
const NotificationChannel = "console_notifications"

type NotificationService interface {
	// Notify persists the notification and, when Redis is configured,
	// publishes it for live delivery to connected consoles.
	Notify(ctx context.Context, notification *model.Notification) error
	GetNotifications(ctx context.Context, limit, offset int) ([]*model.Notification, error)
	MarkAsRead(ctx context.Context, id uint) error
}

type notificationService struct {
	repo        repository.NotificationRepository
	redisClient *redis.Client
}

func NewNotificationService(repo repository.NotificationRepository, redisClient *redis.Client) NotificationService {
	return &notificationService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *notificationService) Notify(ctx context.Context, notification *model.Notification) error {
	if err := s.repo.Create(ctx, notification); err != nil {
		return err
	}

	if s.redisClient != nil {
		payload, err := json.Marshal(notification)
		if err == nil {
			s.redisClient.Publish(ctx, NotificationChannel, payload)
		}
	}

	return nil
}

func (s *notificationService) GetNotifications(ctx context.Context, limit, offset int) ([]*model.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.repo.FindRecent(ctx, limit, offset)
}

func (s *notificationService) MarkAsRead(ctx context.Context, id uint) error {
	return s.repo.MarkAsRead(ctx, id)
}
