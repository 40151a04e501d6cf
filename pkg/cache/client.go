package cache

import (
	"context"
	"errors"
	"time"
)

// ErrMiss is returned by Get when the key is not present.
var ErrMiss = errors.New("cache: miss")

type Cache interface {
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, key string) error
}

type noopCache struct{}

// NewNoopCache returns a Cache that stores nothing; every Get is a miss.
func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	return nil
}

func (noopCache) Get(ctx context.Context, key string) (string, error) {
	return "", ErrMiss
}

func (noopCache) Del(ctx context.Context, key string) error {
	return nil
}
