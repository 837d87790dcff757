package pipeline

import (
	"errors"
	"sync"

	"golang.org/x/time/rate"
)

var (
	// ErrRateLimited is returned when a client submits batches faster than
	// its token bucket refills.
	ErrRateLimited = errors.New("upload rate limit exceeded")
	// ErrTooManyClients is returned when the limiter is at capacity and a
	// batch arrives for a client it has never seen.
	ErrTooManyClients = errors.New("upload limiter at client capacity")
)

// UploadLimiter applies a per-client token bucket to batch submissions. The
// client map is bounded: once MaxClients distinct clients are tracked, new
// clients are refused instead of growing the map without limit.
type UploadLimiter struct {
	mu      sync.Mutex
	clients map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
	maxSize int
}

// NewUploadLimiter builds a limiter allowing `perSecond` batches per second
// with the given burst, tracking at most maxClients distinct client keys.
func NewUploadLimiter(perSecond float64, burst, maxClients int) *UploadLimiter {
	return &UploadLimiter{
		clients: make(map[string]*rate.Limiter),
		limit:   rate.Limit(perSecond),
		burst:   burst,
		maxSize: maxClients,
	}
}

// Allow records one submission attempt for the client and reports whether it
// may proceed.
func (l *UploadLimiter) Allow(client string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.clients[client]
	if !ok {
		if len(l.clients) >= l.maxSize {
			return ErrTooManyClients
		}
		lim = rate.NewLimiter(l.limit, l.burst)
		l.clients[client] = lim
	}
	if !lim.Allow() {
		return ErrRateLimited
	}
	return nil
}

// Reset drops all tracked clients, restoring full capacity.
func (l *UploadLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clients = make(map[string]*rate.Limiter)
}
