package corpus

import (
	"context"
	"fmt"
	"net/url"

	"golang.org/x/time/rate"
)

// hostLimiter rate-limits corpus downloads per mirror host, so falling
// through the mirror list never hammers a single origin.
type hostLimiter struct {
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newHostLimiter(requestsPerSecond float64, burst int) *hostLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &hostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// wait blocks until the host of rawURL has rate capacity or ctx is done
func (l *hostLimiter) wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse URL: %w", err)
	}

	limiter, ok := l.limiters[parsed.Host]
	if !ok {
		limiter = rate.NewLimiter(l.rate, l.burst)
		l.limiters[parsed.Host] = limiter
	}
	return limiter.Wait(ctx)
}
