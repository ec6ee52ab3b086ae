// Package ratelimit реализует лимитер запросов с фиксированным окном,
// сгруппированный по произвольному ключу (обычно IP клиента).
package ratelimit

import (
	"sync"
	"time"
)

// Limiter лимитер с фиксированным окном. Потокобезопасен
type Limiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time
}

type bucket struct {
	windowStart time.Time
	count       int
}

// New создает лимитер: не более limit запросов на ключ за window
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Allow сообщает, разрешен ли очередной запрос для ключа.
// Счетчик сбрасывается в начале каждого окна
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	b, ok := l.buckets[key]
	if !ok || now.Sub(b.windowStart) >= l.window {
		l.buckets[key] = &bucket{windowStart: now, count: 1}
		return true
	}

	if b.count >= l.limit {
		return false
	}

	b.count++
	return true
}

// Prune удаляет ключи, окно которых истекло. Вызывается периодически,
// чтобы карта не росла бесконечно
func (l *Limiter) Prune() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, b := range l.buckets {
		if now.Sub(b.windowStart) >= l.window {
			delete(l.buckets, key)
		}
	}
}

// StartPruning запускает периодическую очистку до закрытия stopCh
func (l *Limiter) StartPruning(interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				l.Prune()
			case <-stopCh:
				return
			}
		}
	}()
}
