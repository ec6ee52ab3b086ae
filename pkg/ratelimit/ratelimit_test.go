package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLimiter(limit int, window time.Duration) (*Limiter, *time.Time) {
	l := New(limit, window)
	current := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestAllow_WithinLimit(t *testing.T) {
	l, _ := newTestLimiter(3, time.Second)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestAllow_WindowReset(t *testing.T) {
	l, current := newTestLimiter(2, time.Second)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// Следующее окно - счетчик сбрасывается
	*current = current.Add(time.Second)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestAllow_KeysAreIsolated(t *testing.T) {
	l, _ := newTestLimiter(1, time.Second)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	// Лимит одного клиента не влияет на других
	assert.True(t, l.Allow("10.0.0.2"))
	assert.True(t, l.Allow("10.0.0.3"))
}

func TestPrune(t *testing.T) {
	l, current := newTestLimiter(5, time.Second)

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")
	assert.Len(t, l.buckets, 2)

	// Окна еще не истекли - ничего не удаляется
	l.Prune()
	assert.Len(t, l.buckets, 2)

	*current = current.Add(2 * time.Second)
	l.Prune()
	assert.Empty(t, l.buckets)
}
