package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/school-registry-api/internal/models"
)

type brokenCacheRepo struct{}

func (brokenCacheRepo) Get(context.Context, string, interface{}) error {
	return errors.New("connection refused")
}

func (brokenCacheRepo) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("connection refused")
}

func (brokenCacheRepo) DeleteByPattern(context.Context, string) error {
	return errors.New("connection refused")
}

func TestCacheServiceDisabled(t *testing.T) {
	var nilCache *CacheService
	assert.False(t, nilCache.Enabled())

	disabled := NewCacheService(newMemoryCacheRepo(), nil, 0, nil, false)
	assert.False(t, disabled.Enabled())
	assert.Equal(t, 5*time.Minute, disabled.defaultTTL)

	calls := 0
	load := func() ([]models.Student, error) {
		calls++
		return []models.Student{{Name: "Ana"}}, nil
	}
	for i := 0; i < 2; i++ {
		students, err := remember(context.Background(), disabled, "students:list:", load)
		require.NoError(t, err)
		assert.Len(t, students, 1)
	}
	assert.Equal(t, 2, calls)
	assert.NoError(t, nilCache.Invalidate(context.Background(), studentCachePattern))
}

func TestCacheServiceFailuresDoNotFailLoads(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	cache := NewCacheService(brokenCacheRepo{}, nil, time.Minute, zap.New(core), true)

	students, err := remember(context.Background(), cache, "students:list:", func() ([]models.Student, error) {
		return []models.Student{{Name: "Ana"}}, nil
	})
	require.NoError(t, err)
	assert.Len(t, students, 1)
	assert.Equal(t, 1, logs.FilterMessage("cache get failed").Len())
	assert.Equal(t, 1, logs.FilterMessage("cache set failed").Len())

	assert.Error(t, cache.Invalidate(context.Background(), studentCachePattern))
	assert.Equal(t, 1, logs.FilterMessage("cache invalidate failed").Len())
}

func TestCacheServiceSkipsStoreOnLoadError(t *testing.T) {
	repo := newMemoryCacheRepo()
	cache := NewCacheService(repo, nil, time.Minute, nil, true)

	_, err := remember(context.Background(), cache, "students:list:", func() ([]models.Student, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)
	assert.Empty(t, repo.values)
}

func TestCacheServiceRecordsMetrics(t *testing.T) {
	metrics := NewMetricsService()
	cache := NewCacheService(newMemoryCacheRepo(), metrics, time.Minute, nil, true)

	load := func() ([]models.Student, error) { return []models.Student{{Name: "Ana"}}, nil }
	_, err := remember(context.Background(), cache, "students:list:", load)
	require.NoError(t, err)
	_, err = remember(context.Background(), cache, "students:list:", load)
	require.NoError(t, err)

	snapshot := metrics.Snapshot()
	assert.Equal(t, uint64(1), snapshot.CacheHits)
	assert.Equal(t, uint64(1), snapshot.CacheMisses)
}
