// internal/services/cache_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MahmoudALamMoahmed/nova-commerce-build/internal/config"
)

// CacheService is a thin wrapper over redis used for read-through
// caching of catalog reads. A nil *CacheService is valid and behaves as
// a permanent miss, so services can run without redis (tests, local dev).
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(cfg config.RedisConfig) *CacheService {
	if cfg.Host == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &CacheService{
		client: client,
		ttl:    time.Duration(cfg.TTL) * time.Second,
	}
}

func (s *CacheService) Get(ctx context.Context, key string) (string, bool) {
	if s == nil {
		return "", false
	}

	value, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		return "", false
	}

	return value, true
}

func (s *CacheService) Set(ctx context.Context, key string, value string) {
	if s == nil {
		return
	}
	s.client.Set(ctx, key, value, s.ttl)
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) {
	if s == nil || len(keys) == 0 {
		return
	}
	s.client.Del(ctx, keys...)
}

func (s *CacheService) Key(parts ...interface{}) string {
	key := "nova-commerce"
	for _, part := range parts {
		key = fmt.Sprintf("%s:%v", key, part)
	}
	return key
}
