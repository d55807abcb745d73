package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"talentflow/internal/assessment"
	mem "talentflow/pkg/memcache"
)

// AssessmentCache stores assessment definitions by job id.
type AssessmentCache interface {
	Get(ctx context.Context, jobID string) (*assessment.Assessment, error)
	Set(ctx context.Context, a assessment.Assessment) error
	Invalidate(ctx context.Context, jobID string) error
}

type assessmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAssessmentCache(client *redis.Client, ttl time.Duration) AssessmentCache {
	return &assessmentCache{client: client, ttl: ttl}
}

func assessmentKey(jobID string) string {
	return fmt.Sprintf("assessment:job:%s", jobID)
}

// Get returns nil, nil on a miss.
func (c *assessmentCache) Get(ctx context.Context, jobID string) (*assessment.Assessment, error) {
	data, err := c.client.Get(ctx, assessmentKey(jobID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a assessment.Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *assessmentCache) Set(ctx context.Context, a assessment.Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, assessmentKey(a.JobID), data, c.ttl).Err()
}

func (c *assessmentCache) Invalidate(ctx context.Context, jobID string) error {
	return c.client.Del(ctx, assessmentKey(jobID)).Err()
}

type memoryAssessmentCache struct {
	store *mem.TTLStore[assessment.Assessment]
	ttl   time.Duration
}

// NewMemoryAssessmentCache keeps assessments in process. It is used when no
// Redis address is configured.
func NewMemoryAssessmentCache(ttl time.Duration) AssessmentCache {
	return &memoryAssessmentCache{store: mem.NewTTLStore[assessment.Assessment](), ttl: ttl}
}

func (c *memoryAssessmentCache) Get(_ context.Context, jobID string) (*assessment.Assessment, error) {
	a, ok := c.store.Get(assessmentKey(jobID))
	if !ok {
		return nil, nil
	}
	out := a.Clone()
	return &out, nil
}

func (c *memoryAssessmentCache) Set(_ context.Context, a assessment.Assessment) error {
	c.store.Set(assessmentKey(a.JobID), a.Clone(), c.ttl)
	return nil
}

func (c *memoryAssessmentCache) Invalidate(_ context.Context, jobID string) error {
	c.store.Delete(assessmentKey(jobID))
	return nil
}
