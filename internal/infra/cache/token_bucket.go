package cache

import (
	"context"
	"strconv"
	"time"

	"marquee/config"
	"marquee/internal/errors"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills by whole intervals and takes one token per call.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local intervals = math.floor(math.max(0, now_ms - last_refill) / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + intervals * refill_tokens)
		last_refill = last_refill + intervals * interval_ms
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// Decision is the outcome of taking one token.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// TokenBucket is a distributed rate limiter keyed by caller-chosen strings.
type TokenBucket struct {
	rdb            redis.Scripter
	prefix         string
	capacity       int
	refillTokens   int
	refillInterval time.Duration
	ttl            time.Duration
}

// NewTokenBucket returns nil when limiting is disabled or redis is not configured.
func NewTokenBucket(cfg *config.Config, rdb *redis.Client) *TokenBucket {
	rl := cfg.RateLimit
	if rl == nil || !rl.Enabled || rdb == nil {
		return nil
	}

	bucket := &TokenBucket{
		rdb:            rdb,
		prefix:         rl.Prefix,
		capacity:       rl.Capacity,
		refillTokens:   rl.RefillTokens,
		refillInterval: rl.RefillInterval,
		ttl:            rl.TTL,
	}
	if bucket.prefix == "" {
		bucket.prefix = "marquee:rl"
	}
	if bucket.capacity <= 0 {
		bucket.capacity = 20
	}
	if bucket.refillTokens <= 0 {
		bucket.refillTokens = 1
	}
	if bucket.refillInterval <= 0 {
		bucket.refillInterval = 3 * time.Second
	}
	if bucket.ttl < time.Second {
		bucket.ttl = 10 * time.Minute
	}

	return bucket
}

// Take consumes one token for key.
func (b *TokenBucket) Take(ctx context.Context, key string) (Decision, error) {
	vals, err := tokenBucketScript.Run(ctx, b.rdb, []string{b.prefix + ":" + key},
		time.Now().UnixMilli(),
		b.capacity,
		b.refillTokens,
		b.refillInterval.Milliseconds(),
		int64(b.ttl/time.Second),
	).Result()
	if err != nil {
		return Decision{}, errors.Wrap(err, "run token bucket script")
	}

	return parseDecision(vals, b.capacity)
}

func parseDecision(vals any, limit int) (Decision, error) {
	arr, ok := vals.([]any)
	if !ok || len(arr) != 3 {
		return Decision{}, errors.Errorf("unexpected token bucket result: %#v", vals)
	}

	return Decision{
		Allowed:    asInt64(arr[0]) == 1,
		Limit:      limit,
		Remaining:  asInt64(arr[1]),
		RetryAfter: time.Duration(asInt64(arr[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	return 0
}
