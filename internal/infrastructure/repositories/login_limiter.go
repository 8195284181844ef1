package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/drax210310/jugueteria-backend/domain"
)

// LoginLimiterImpl implements domain.LoginLimiter with a fixed-window
// attempt counter in Redis. The key expires with the window, so old
// attempts age out without any cleanup job.
type LoginLimiterImpl struct {
	client      *redis.Client
	prefix      string
	maxAttempts int
	window      time.Duration
}

// NewLoginLimiter creates a new login limiter.
func NewLoginLimiter(client *redis.Client, maxAttempts int, window time.Duration) domain.LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &LoginLimiterImpl{
		client:      client,
		prefix:      "login_attempts:",
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Allow implements domain.LoginLimiter. It counts the attempt and reports
// whether the caller is still inside the budget for the current window.
func (l *LoginLimiterImpl) Allow(ctx context.Context, username string) (bool, error) {
	key := l.prefix + username

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.maxAttempts), nil
}

// Reset implements domain.LoginLimiter. Called after a successful login so
// a legitimate user is not locked out by their own earlier typos.
func (l *LoginLimiterImpl) Reset(ctx context.Context, username string) error {
	return l.client.Del(ctx, l.prefix+username).Err()
}
