package locker

import (
	"context"
	"fmt"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type lockService struct {
	redisRepo contracts.RedisRepository
	Log       *zap.Logger
}

func NewLockService(repo contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	return &lockService{
		redisRepo: repo,
		Log:       logger,
	}
}

// TryLock stores a fresh token under key unless the key already exists.
// Losing the race is not an error.
func (s *lockService) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	log := s.Log.With(
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)
	log.Debug("lockService.TryLock called", zap.Duration(constvars.LoggingLockExpirationTimeKey, ttl))

	token := uuid.NewString()
	acquired, err := s.redisRepo.TrySetNX(ctx, key, token, ttl)
	if err != nil {
		log.Error("lockService.TryLock error calling redisRepo.TrySetNX", zap.Error(err))
		return false, "", err
	}
	if !acquired {
		log.Debug("lockService.TryLock held by another replica")
		return false, "", nil
	}

	log.Debug("lockService.TryLock acquired", zap.String(constvars.LoggingLockValueKey, token))
	return true, token, nil
}

// Unlock deletes key only while it still holds token. An expired lock is
// already released; a lock taken over by another replica is left alone and
// reported.
func (s *lockService) Unlock(ctx context.Context, key, token string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	log := s.Log.With(
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, key),
	)

	stored, err := s.redisRepo.Get(ctx, key)
	if err != nil {
		log.Error("lockService.Unlock error reading lock", zap.Error(err))
		return err
	}
	if stored == "" {
		log.Debug("lockService.Unlock lock already expired")
		return nil
	}

	expected, err := json.Marshal(token)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	if stored != string(expected) {
		err := exceptions.ErrRedisUnlock(fmt.Errorf("lock %s is held by another token", key))
		log.Warn("lockService.Unlock ownership mismatch",
			zap.String(constvars.LoggingLockStoredValueKey, stored),
			zap.String(constvars.LoggingLockExpectedValueKey, string(expected)),
			zap.Error(err),
		)
		return err
	}

	if err := s.redisRepo.Delete(ctx, key); err != nil {
		log.Error("lockService.Unlock error deleting lock", zap.Error(err))
		return err
	}

	log.Debug("lockService.Unlock released")
	return nil
}
