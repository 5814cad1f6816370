package doccache

import (
	"context"
	"errors"
	"time"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type cachedDocument struct {
	Body     []byte    `json:"body"`
	Version  string    `json:"version"`
	Origin   string    `json:"origin"`
	CachedAt time.Time `json:"cachedAt"`
}

type redisDocumentCache struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
}

func NewRedisDocumentCache(repo contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.DocumentCache {
	return &redisDocumentCache{
		redisRepo: repo,
		ttl:       ttl,
		Log:       logger,
	}
}

func (c *redisDocumentCache) SaveLastGood(ctx context.Context, raw *contracts.RawDocument) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Debug("redisDocumentCache.SaveLastGood called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, constvars.RedisKeyTimetableLastGood),
	)

	entry := cachedDocument{
		Body:     raw.Body,
		Version:  raw.Version,
		Origin:   raw.Origin,
		CachedAt: time.Now(),
	}
	if err := c.redisRepo.Set(ctx, constvars.RedisKeyTimetableLastGood, entry, c.ttl); err != nil {
		c.Log.Error("redisDocumentCache.SaveLastGood error calling redisRepo.Set",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (c *redisDocumentCache) LoadLastGood(ctx context.Context) (*contracts.RawDocument, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Debug("redisDocumentCache.LoadLastGood called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRedisKey, constvars.RedisKeyTimetableLastGood),
	)

	value, err := c.redisRepo.Get(ctx, constvars.RedisKeyTimetableLastGood)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, exceptions.ErrTimetableCacheMissing(errors.New("no cached timetable"))
	}

	var entry cachedDocument
	if err := json.Unmarshal([]byte(value), &entry); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	return &contracts.RawDocument{
		Body:    entry.Body,
		Version: entry.Version,
		Origin:  entry.Origin,
	}, nil
}
