package ratelimit

import (
	"errors"

	"golang.org/x/time/rate"
)

// ErrLimited is returned when a call is refused to protect the upstream quota.
var ErrLimited = errors.New("ratelimit: upstream quota exhausted")

// Limiter is a non-blocking token bucket in front of a rate-limited upstream. A refused
// call fails fast instead of queueing so the caller can degrade immediately.
type Limiter struct {
	limiter *rate.Limiter
}

type Config struct {
	RequestsPerSecond float64
	Burst             int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 1,
		Burst:             5,
	}
}

func New(config Config) *Limiter {
	if config.Burst <= 0 {
		config.Burst = 1
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
	}
}

// Unlimited never refuses a call.
func Unlimited() *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Inf, 1)}
}

func (l *Limiter) Allow() error {
	if !l.limiter.Allow() {
		return ErrLimited
	}
	return nil
}
