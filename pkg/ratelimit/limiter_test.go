package ratelimit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_BurstThenRefuse(t *testing.T) {
	l := New(Config{RequestsPerSecond: 0.001, Burst: 2})

	assert.NoError(t, l.Allow())
	assert.NoError(t, l.Allow())
	assert.ErrorIs(t, l.Allow(), ErrLimited)
}

func TestLimiter_ZeroBurstIsClamped(t *testing.T) {
	l := New(Config{RequestsPerSecond: 0.001, Burst: 0})

	assert.NoError(t, l.Allow())
	assert.ErrorIs(t, l.Allow(), ErrLimited)
}

func TestUnlimited(t *testing.T) {
	l := Unlimited()
	for i := 0; i < 100; i++ {
		assert.NoError(t, l.Allow())
	}
}
