package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/franciscozv/iglesia-admin/internal/dto"
	"github.com/franciscozv/iglesia-admin/internal/repository"
	"github.com/redis/go-redis/v9"
)

const statCacheTTL = 5 * time.Minute

type StatService interface {
	EventsPerMonth(ctx context.Context) ([]dto.CountByLabel, error)
	MembersPerGroup(ctx context.Context) ([]dto.CountByLabel, error)
}

type statService struct {
	eventRepo   repository.EventRepository
	memberRepo  repository.GroupMemberRepository
	redisClient *redis.Client
}

// NewStatService creates the aggregation service. redisClient may be nil;
// results are then computed on every call.
func NewStatService(
	eventRepo repository.EventRepository,
	memberRepo repository.GroupMemberRepository,
	redisClient *redis.Client,
) StatService {
	return &statService{
		eventRepo:   eventRepo,
		memberRepo:  memberRepo,
		redisClient: redisClient,
	}
}

func (s *statService) EventsPerMonth(ctx context.Context) ([]dto.CountByLabel, error) {
	return s.cached(ctx, "stats:events_per_month", s.eventRepo.CountByMonth)
}

func (s *statService) MembersPerGroup(ctx context.Context) ([]dto.CountByLabel, error) {
	return s.cached(ctx, "stats:members_per_group", s.memberRepo.CountActivePerGroup)
}

func (s *statService) cached(ctx context.Context, key string, compute func(context.Context) ([]dto.CountByLabel, error)) ([]dto.CountByLabel, error) {
	if s.redisClient != nil {
		raw, err := s.redisClient.Get(ctx, key).Result()
		if err == nil {
			var rows []dto.CountByLabel
			if err := json.Unmarshal([]byte(raw), &rows); err == nil {
				return rows, nil
			}
		}
	}

	rows, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		payload, err := json.Marshal(rows)
		if err == nil {
			if err := s.redisClient.Set(ctx, key, payload, statCacheTTL).Err(); err != nil {
				log.Printf("failed to cache %s: %v", key, err)
			}
		}
	}

	return rows, nil
}
