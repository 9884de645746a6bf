package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisCounter shares windows across instances with INCR + EXPIRE on a key
// per window.
type RedisCounter struct {
	client rueidis.Client
	prefix string
	now    func() time.Time
}

func NewRedisCounter(client rueidis.Client, prefix string) *RedisCounter {
	return &RedisCounter{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (r *RedisCounter) windowKey(key string, window time.Duration) string {
	slot := r.now().UnixNano() / int64(window)
	return fmt.Sprintf("%s:%s:%d", r.prefix, key, slot)
}

func (r *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, error) {
	k := r.windowKey(key, window)
	seconds := int64(window / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	results := r.client.DoMulti(
		ctx,
		r.client.B().Incr().Key(k).Build(),
		r.client.B().Expire().Key(k).Seconds(seconds).Build(),
	)

	count, err := results[0].AsInt64()
	if err != nil {
		return 0, err
	}
	if err := results[1].Error(); err != nil {
		return 0, err
	}

	return count, nil
}
