package data

import (
	"shipcatalog/internal/conf"
	"shipcatalog/internal/ratelimit"

	"github.com/go-kratos/kratos/v2/log"
)

// NewWriteLimiter builds the limiter guarding write operations. Without a
// configured limit or a reachable redis every request is allowed.
func NewWriteLimiter(data *Data, c *conf.Limiter, logger log.Logger) ratelimit.Limiter {
	l := log.NewHelper(logger)
	if c == nil || c.Limit <= 0 {
		return ratelimit.Unlimited{}
	}
	if data.rdb == nil {
		l.Warn("write rate limit configured but redis is unavailable, limiting disabled")
		return ratelimit.Unlimited{}
	}
	limiter, err := ratelimit.NewFixedWindowLimiter(data.rdb, c.Prefix, c.Limit, c.Window.AsDuration())
	if err != nil {
		l.Warnf("write rate limiting disabled: %v", err)
		return ratelimit.Unlimited{}
	}
	l.Infof("write rate limit: %d per %s", c.Limit, c.Window.AsDuration())
	return limiter
}
