// Package cache holds short-lived progress snapshots in Redis so that
// dashboard polling does not recompute the full stage derivation on every
// request. Every path tolerates a missing or failing Redis: callers fall
// back to recomputation.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"deedflow/internal/platform/redis"
	"deedflow/internal/tracking/models"
	"deedflow/pkg/domain"
)

type ProgressCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a progress cache. A nil client produces a cache whose reads
// always miss and whose writes are no-ops.
func New(client *redis.Client, ttl time.Duration) *ProgressCache {
	return &ProgressCache{client: client, ttl: ttl}
}

func key(txID domain.TransactionID, pipeline domain.Pipeline) string {
	return fmt.Sprintf("tracking:progress:%s:%s", txID, pipeline)
}

// Get returns the cached progress snapshot, or (nil, nil) on a miss.
// Redis errors are reported but callers should treat them as misses.
func (c *ProgressCache) Get(ctx context.Context, txID domain.TransactionID, pipeline domain.Pipeline) (*models.Progress, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	raw, err := c.client.Get(ctx, key(txID, pipeline)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("progress cache get: %w", err)
	}
	var p models.Progress
	if err := json.Unmarshal(raw, &p); err != nil {
		// Poisoned entry; drop it and miss.
		_ = c.client.Del(ctx, key(txID, pipeline)).Err()
		return nil, nil
	}
	return &p, nil
}

// Set stores a progress snapshot with the configured TTL.
func (c *ProgressCache) Set(ctx context.Context, txID domain.TransactionID, pipeline domain.Pipeline, p models.Progress) error {
	if c == nil || c.client == nil {
		return nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("progress cache marshal: %w", err)
	}
	if err := c.client.Set(ctx, key(txID, pipeline), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("progress cache set: %w", err)
	}
	return nil
}

// Invalidate removes the snapshot after any write that changes completion.
func (c *ProgressCache) Invalidate(ctx context.Context, txID domain.TransactionID, pipeline domain.Pipeline) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Del(ctx, key(txID, pipeline)).Err(); err != nil {
		return fmt.Errorf("progress cache invalidate: %w", err)
	}
	return nil
}
