package locker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

const lockKey = "timetable:slot-publisher"

func TestLockService_TryLock(t *testing.T) {
	ctx := context.Background()

	t.Run("Acquired", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, lockKey, mock.AnythingOfType("string"), 50*time.Second).Return(true, nil)

		acquired, token, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, lockKey, 50*time.Second)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, token, "an acquired lock carries its token")
	})

	t.Run("Held Elsewhere", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, lockKey, mock.Anything, mock.Anything).Return(false, nil)

		acquired, token, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, lockKey, time.Minute)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, token)
	})

	t.Run("Redis Error", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, lockKey, mock.Anything, mock.Anything).Return(false, errors.New("redis down"))

		acquired, _, err := NewLockService(repo, zap.NewNop()).TryLock(ctx, lockKey, time.Minute)

		assert.Error(t, err)
		assert.False(t, acquired)
	})

	t.Run("Tokens Are Unique", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("TrySetNX", ctx, lockKey, mock.Anything, mock.Anything).Return(true, nil)
		svc := NewLockService(repo, zap.NewNop())

		_, first, _ := svc.TryLock(ctx, lockKey, time.Minute)
		_, second, _ := svc.TryLock(ctx, lockKey, time.Minute)
		assert.NotEqual(t, first, second)
	})
}

func TestLockService_Unlock(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner Releases", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, lockKey).Return(`"token-1"`, nil)
		repo.On("Delete", ctx, lockKey).Return(nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, lockKey, "token-1")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("Expired Lock Is A No-Op", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, lockKey).Return("", nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, lockKey, "token-1")

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Other Owner Is Not Released", func(t *testing.T) {
		repo := new(MockRedisRepository)
		repo.On("Get", ctx, lockKey).Return(`"token-2"`, nil)

		err := NewLockService(repo, zap.NewNop()).Unlock(ctx, lockKey, "token-1")

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
