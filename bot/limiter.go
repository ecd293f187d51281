package bot

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// UserLimiter throttles commands per chat user: burst commands per
// window, refilling continuously. Defaults land at 6 commands per 15s.
type UserLimiter struct {
	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func NewUserLimiter(burst int, window time.Duration) *UserLimiter {
	return &UserLimiter{
		limiters: make(map[int64]*rate.Limiter),
		limit:    rate.Every(window / time.Duration(burst)),
		burst:    burst,
	}
}

// Allow reports whether the user may run a command right now.
func (l *UserLimiter) Allow(userID int64) bool {
	l.mu.Lock()
	limiter, ok := l.limiters[userID]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[userID] = limiter
	}
	l.mu.Unlock()
	return limiter.Allow()
}
