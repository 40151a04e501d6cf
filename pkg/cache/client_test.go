package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "airports:tel", "[]", time.Minute))

	val, err := c.Get(ctx, "airports:tel")
	assert.ErrorIs(t, err, ErrMiss)
	assert.Empty(t, val)

	assert.NoError(t, c.Del(ctx, "airports:tel"))
}
