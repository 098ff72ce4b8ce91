package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	rl := NewRateLimiter(time.Hour, 3)

	assert.True(t, rl.Allow("login:a@example.com"))
	assert.True(t, rl.Allow("login:a@example.com"))
	assert.True(t, rl.Allow("login:a@example.com"))
	assert.False(t, rl.Allow("login:a@example.com"))
}

func TestRateLimiterIsPerKey(t *testing.T) {
	rl := NewRateLimiter(time.Hour, 1)

	assert.True(t, rl.Allow("login:a@example.com"))
	assert.False(t, rl.Allow("login:a@example.com"))
	assert.True(t, rl.Allow("login:b@example.com"))
}
