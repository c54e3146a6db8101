package serverutils

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrickmn/go-cache"
)

type rateWindow struct {
	count    int
	resetsAt time.Time
}

// RateLimiter is a fixed-window counter keyed by client address. State is
// process-local and lost on restart; it guards against brute-force, nothing
// more.
type RateLimiter struct {
	mu      sync.Mutex
	windows *cache.Cache
	max     int
	window  time.Duration
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: cache.New(window, 2*window),
		max:     max,
		window:  window,
	}
}

// take records one attempt for the key. The mutex covers the whole
// read-modify-write: concurrent requests from one address share the cached
// window and must not lose increments between the read and the write.
func (r *RateLimiter) take(key string) (allowed bool, retryAfter int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()

	var w *rateWindow
	if x, found := r.windows.Get(key); found {
		w = x.(*rateWindow)
	}
	if w == nil || now.After(w.resetsAt) {
		w = &rateWindow{resetsAt: now.Add(r.window)}
	}

	w.count++
	r.windows.Set(key, w, time.Until(w.resetsAt))

	if w.count > r.max {
		retryAfter = int(time.Until(w.resetsAt).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		return false, retryAfter
	}
	return true, 0
}

// Middleware rejects a client address once it exceeds the attempt budget
// within the current window.
func (r *RateLimiter) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		allowed, retryAfter := r.take(ctx.IP())
		if !allowed {
			return NewRateLimitError("Too many attempts, try again later", retryAfter)
		}
		return ctx.Next()
	}
}
