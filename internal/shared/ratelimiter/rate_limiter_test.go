package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock は sleep で時刻が進む偽の時計です。
type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func newTestLimiter(limit int, interval time.Duration) (*RateLimiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(limit, interval)
	rl.now = clock.now
	rl.sleep = clock.sleep
	rl.lastReset = clock.t
	return rl, clock
}

func TestRateLimiter_WithinLimit(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		rl.WaitIfNeeded()
	}

	assert.Empty(t, clock.slept)
	assert.Equal(t, 3, rl.count)
}

func TestRateLimiter_WaitsForRestOfWindow(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(2, time.Minute)
	rl.WaitIfNeeded()
	clock.t = clock.t.Add(20 * time.Second)
	rl.WaitIfNeeded()
	rl.WaitIfNeeded()

	assert.Equal(t, []time.Duration{40 * time.Second}, clock.slept)
	assert.Equal(t, 1, rl.count)
	assert.Equal(t, clock.t, rl.lastReset)
}

func TestRateLimiter_ResetsAfterInterval(t *testing.T) {
	t.Parallel()

	rl, clock := newTestLimiter(1, time.Minute)
	rl.WaitIfNeeded()
	clock.t = clock.t.Add(time.Minute)
	rl.WaitIfNeeded()

	assert.Empty(t, clock.slept)
	assert.Equal(t, 1, rl.count)
}

func TestNewRateLimiter_NonPositiveLimit(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0, time.Second)
	assert.Equal(t, 1, rl.limit)
}
