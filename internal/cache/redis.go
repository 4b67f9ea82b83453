package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/saulo-duarte/chronos-workspace/internal/config"
	"github.com/saulo-duarte/chronos-workspace/internal/metrics"
)

const publishTimeout = 2 * time.Second

type Message struct {
	Paths []string  `json:"paths"`
	At    time.Time `json:"at"`
}

// RedisInvalidator publishes invalidation messages on a pub/sub channel that
// the rendering tier subscribes to.
type RedisInvalidator struct {
	client  *redis.Client
	channel string
}

func NewRedisInvalidator(client *redis.Client, channel string) *RedisInvalidator {
	return &RedisInvalidator{client: client, channel: channel}
}

func (r *RedisInvalidator) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}
	log := config.WithContext(ctx)

	payload, err := json.Marshal(Message{Paths: paths, At: time.Now().UTC()})
	if err != nil {
		log.WithError(err).Warn("Failed to encode invalidation message")
		return
	}

	// The request may already be finishing; the signal must not inherit its cancellation.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err = r.client.Publish(pubCtx, r.channel, payload).Err()
	for _, p := range paths {
		metrics.RecordInvalidation(p, err == nil)
	}
	if err != nil {
		log.WithError(err).WithField("paths", paths).Warn("Failed to publish cache invalidation")
		return
	}
	log.WithField("paths", paths).Debug("Cache invalidation published")
}

func (r *RedisInvalidator) Close() error {
	return r.client.Close()
}
