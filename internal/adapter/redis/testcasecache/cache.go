// package testcasecache decorates a test-case repository with a
// read-through Redis cache. Every submission for a problem reads the
// same rows, so the hot path rarely touches PostgreSQL.
package testcasecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/cjudge-2025.net/internal/core/ports/primary"
	"gitlab.com/cjudge-2025.net/internal/core/ports/secondary"
	"gitlab.com/cjudge-2025.net/internal/domain"
)

const (
	testCaseKeyPrefix  = "judge:testcases:"
	testCaseExpiration = 5 * time.Minute
)

var _ secondary.TestCaseRepository = (*CachedTestCaseRepository)(nil)

// CachedTestCaseRepository wraps an inner repository with Redis caching.
// Cache failures are logged and absorbed; they never fail a read.
type CachedTestCaseRepository struct {
	redisClient *redis.Client
	inner       secondary.TestCaseRepository
	logger      primary.Logger
}

// NewCachedTestCaseRepository creates a new caching decorator
func NewCachedTestCaseRepository(redisClient *redis.Client, inner secondary.TestCaseRepository, logger primary.Logger) *CachedTestCaseRepository {
	return &CachedTestCaseRepository{
		redisClient: redisClient,
		inner:       inner,
		logger:      logger,
	}
}

// GetByProblem returns cached test cases when present, loading and
// caching from the inner repository on a miss. Empty result sets are not
// cached so a just-fixed problem is judgeable immediately.
func (r *CachedTestCaseRepository) GetByProblem(ctx context.Context, problemID uuid.UUID) ([]*domain.TestCase, error) {
	key := fmt.Sprintf("%s%s", testCaseKeyPrefix, problemID)

	cached, err := r.redisClient.Get(ctx, key).Bytes()
	if err == nil {
		var testCases []*domain.TestCase
		if err := json.Unmarshal(cached, &testCases); err == nil {
			return testCases, nil
		}
		r.logger.Warn("Discarding corrupt test-case cache entry", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("Test-case cache read failed", "key", key, "error", err)
	}

	testCases, err := r.inner.GetByProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	if len(testCases) > 0 {
		encoded, err := json.Marshal(testCases)
		if err == nil {
			if err := r.redisClient.Set(ctx, key, encoded, testCaseExpiration).Err(); err != nil {
				r.logger.Warn("Test-case cache write failed", "key", key, "error", err)
			}
		}
	}

	return testCases, nil
}

// Invalidate drops a problem's cached test cases
func (r *CachedTestCaseRepository) Invalidate(ctx context.Context, problemID uuid.UUID) error {
	key := fmt.Sprintf("%s%s", testCaseKeyPrefix, problemID)
	if err := r.redisClient.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to invalidate test-case cache: %w", err)
	}
	return nil
}
