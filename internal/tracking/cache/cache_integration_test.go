//go:build integration

package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	platformredis "deedflow/internal/platform/redis"
	"deedflow/internal/tracking/cache"
	"deedflow/internal/tracking/models"
	id "deedflow/pkg/domain"
	"deedflow/pkg/testutil/containers"
)

type ProgressCacheSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	cache *cache.ProgressCache
	txID  id.TransactionID
}

func TestProgressCacheSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(ProgressCacheSuite))
}

func (s *ProgressCacheSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	client := &platformredis.Client{Client: s.redis.Client}
	s.cache = cache.New(client, time.Minute)
}

func (s *ProgressCacheSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
	s.txID = id.TransactionID(uuid.New())
}

func (s *ProgressCacheSuite) TestHealthAgainstLiveServer() {
	client := &platformredis.Client{Client: s.redis.Client}
	s.Require().NoError(client.Health(context.Background()))
}

func (s *ProgressCacheSuite) TestMissReturnsNil() {
	got, err := s.cache.Get(context.Background(), s.txID, id.PipelineDirectAddition)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *ProgressCacheSuite) TestSetThenGet() {
	ctx := context.Background()
	want := models.Progress{CompletedCount: 2, TotalCount: 3, Percentage: 67, CurrentActiveStageNumber: 3}

	s.Require().NoError(s.cache.Set(ctx, s.txID, id.PipelineDirectAddition, want))

	got, err := s.cache.Get(ctx, s.txID, id.PipelineDirectAddition)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(want, *got)
}

func (s *ProgressCacheSuite) TestPipelinesAreIsolated() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, s.txID, id.PipelineDirectAddition, models.Progress{Percentage: 50}))

	got, err := s.cache.Get(ctx, s.txID, id.PipelineSubdivision)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *ProgressCacheSuite) TestInvalidateRemovesSnapshot() {
	ctx := context.Background()
	s.Require().NoError(s.cache.Set(ctx, s.txID, id.PipelineDirectAddition, models.Progress{Percentage: 50}))
	s.Require().NoError(s.cache.Invalidate(ctx, s.txID, id.PipelineDirectAddition))

	got, err := s.cache.Get(ctx, s.txID, id.PipelineDirectAddition)
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *ProgressCacheSuite) TestPoisonedEntryIsDroppedAsMiss() {
	ctx := context.Background()
	key := "tracking:progress:" + s.txID.String() + ":" + string(id.PipelineDirectAddition)
	s.Require().NoError(s.redis.Client.Set(ctx, key, "{not json", time.Minute).Err())

	got, err := s.cache.Get(ctx, s.txID, id.PipelineDirectAddition)
	s.Require().NoError(err)
	s.Nil(got)

	exists, err := s.redis.Client.Exists(ctx, key).Result()
	s.Require().NoError(err)
	s.Zero(exists)
}
