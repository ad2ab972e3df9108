package cache

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"happydeals/internal/usecase/interfaces"
)

const (
	defaultEventKeyPrefix = "happydeals:webhook_event"
	defaultEventTTL       = 24 * time.Hour
)

// RedisEventDeduplicator remembers gateway event ids with SETNX so a
// redelivered webhook is acknowledged without a second dispatch.
type RedisEventDeduplicator struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

var _ interfaces.IEventDeduplicator = (*RedisEventDeduplicator)(nil)

func NewRedisEventDeduplicator(client redis.UniversalClient, prefix string, ttl time.Duration) *RedisEventDeduplicator {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		prefix = defaultEventKeyPrefix
	}
	if ttl <= 0 {
		ttl = defaultEventTTL
	}
	return &RedisEventDeduplicator{client: client, prefix: prefix, ttl: ttl}
}

// Connect parses url and pings the server. An empty url disables dedup and
// returns a nil client.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	if strings.TrimSpace(url) == "" {
		log.Printf("[cache][redis] REDIS_URL empty; webhook event dedup disabled")
		return nil, nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	log.Printf("[cache][redis] connected addr=%s", opts.Addr)
	return client, nil
}

func (d *RedisEventDeduplicator) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	if d == nil || d.client == nil {
		return true, nil
	}
	return d.client.SetNX(ctx, d.key(eventID), time.Now().UTC().Format(time.RFC3339), d.ttl).Result()
}

func (d *RedisEventDeduplicator) key(eventID string) string {
	return d.prefix + ":" + eventID
}
