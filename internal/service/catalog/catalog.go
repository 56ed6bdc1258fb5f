// internal/service/catalog/catalog.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"hopegivers-web/internal/apiclient"
	"hopegivers-web/internal/domain/charity"
)

// Service serves charity browsing with a short-lived Redis cache in front of
// the backend. Cache failures degrade to a direct backend call.
type Service struct {
	api    *apiclient.Client
	cache  *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewService(api *apiclient.Client, cache *redis.Client, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{api: api, cache: cache, ttl: ttl, logger: logger}
}

func (s *Service) Charities(ctx context.Context, filter charity.ListFilter) ([]charity.Charity, error) {
	key := listKey(filter)

	var charities []charity.Charity
	if s.readCache(ctx, key, &charities) {
		return charities, nil
	}

	charities, err := s.api.ListCharities(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, key, charities)
	return charities, nil
}

func (s *Service) Charity(ctx context.Context, id int64) (*charity.Charity, error) {
	key := "charity:" + strconv.FormatInt(id, 10)

	var ch charity.Charity
	if s.readCache(ctx, key, &ch) {
		return &ch, nil
	}

	got, err := s.api.GetCharity(ctx, id)
	if err != nil {
		return nil, err
	}
	s.writeCache(ctx, key, got)
	return got, nil
}

func (s *Service) readCache(ctx context.Context, key string, out interface{}) bool {
	data, err := s.cache.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		s.logger.Warn("charity cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("charity cache entry corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (s *Service) writeCache(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, data, s.ttl).Err(); err != nil {
		s.logger.Warn("charity cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func listKey(filter charity.ListFilter) string {
	return fmt.Sprintf("charities:q=%s:p=%d:ps=%d", filter.Query, filter.Page, filter.PageSize)
}
