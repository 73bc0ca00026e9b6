package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed window: first hit sets the expiry, hits past the limit are denied
// until the window lapses.
const fixedWindowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

const rateLimitKeyPrefix = "talenttrack:ratelimit:"

// RedisLimiter shares rate-limit windows across instances. It fails open:
// Redis trouble must not lock users out of login.
type RedisLimiter struct {
	client  *redis.Client
	script  *redis.Script
	prefix  string
	timeout time.Duration
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client:  client,
		script:  redis.NewScript(fixedWindowScript),
		prefix:  rateLimitKeyPrefix,
		timeout: 250 * time.Millisecond,
	}
}

// key namespaces limiter entries so they cannot collide with other
// applications sharing the Redis instance.
func (l *RedisLimiter) key(k string) string {
	return l.prefix + k
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{l.key(key)}, ttl, limit).Int64()
	if err != nil {
		return true
	}
	return allowed == 1
}
