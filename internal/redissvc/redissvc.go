package redissvc

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const reportKeyPrefix = "reports:"

// RedisService caches report query results for a short TTL. Every registry
// or ledger write invalidates the whole report namespace, so cached figures
// never survive a stock change.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

func NewRedisService(rdb *redis.Client, ctx context.Context, ttl time.Duration) *RedisService {
	return &RedisService{rdb: rdb, ctx: ctx, ttl: ttl}
}

// GetReport loads a cached report into dest, reporting whether it was found.
func (s *RedisService) GetReport(key string, dest any) bool {
	data, err := s.rdb.Get(s.ctx, reportKeyPrefix+key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetReport stores a report result under the namespace TTL. Cache failures
// are logged and ignored; the source of truth is the database.
func (s *RedisService) SetReport(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.rdb.Set(s.ctx, reportKeyPrefix+key, data, s.ttl).Err(); err != nil {
		log.Printf("report cache set failed for %s: %v", key, err)
	}
}

// InvalidateReports drops every cached report.
func (s *RedisService) InvalidateReports() {
	iter := s.rdb.Scan(s.ctx, 0, reportKeyPrefix+"*", 100).Iterator()
	for iter.Next(s.ctx) {
		if err := s.rdb.Del(s.ctx, iter.Val()).Err(); err != nil {
			log.Printf("report cache invalidation failed for %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Printf("report cache scan failed: %v", err)
	}
}
