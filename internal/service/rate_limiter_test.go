package service

import (
	"testing"
	"time"
)

func TestMemoryRateLimiter(t *testing.T) {
	t.Run("denies beyond max", func(t *testing.T) {
		l := NewMemoryRateLimiter(time.Minute, 2)
		if !l.Allow("a@example.com") || !l.Allow("a@example.com") {
			t.Fatalf("expected first two attempts allowed")
		}
		if l.Allow("a@example.com") {
			t.Fatalf("expected third attempt denied")
		}
	})

	t.Run("keys are independent", func(t *testing.T) {
		l := NewMemoryRateLimiter(time.Minute, 1)
		if !l.Allow("a@example.com") {
			t.Fatalf("expected first key allowed")
		}
		if !l.Allow("b@example.com") {
			t.Fatalf("expected second key unaffected")
		}
	})

	t.Run("sweep evicts one-off keys", func(t *testing.T) {
		l := NewMemoryRateLimiter(50*time.Millisecond, 1).(*memoryRateLimiter)
		if !l.Allow("stale-1@example.com") || !l.Allow("stale-2@example.com") {
			t.Fatalf("expected first attempts allowed")
		}
		time.Sleep(60 * time.Millisecond)
		// Un Allow sobre otra clave debe barrer las claves sin actividad.
		if !l.Allow("active@example.com") {
			t.Fatalf("expected new key allowed")
		}
		l.mu.Lock()
		defer l.mu.Unlock()
		if len(l.hits) != 1 {
			t.Fatalf("expected stale keys evicted, got %d keys", len(l.hits))
		}
		if _, ok := l.hits["active@example.com"]; !ok {
			t.Fatalf("expected active key kept")
		}
	})

	t.Run("window expiry frees slots", func(t *testing.T) {
		l := NewMemoryRateLimiter(50*time.Millisecond, 1)
		if !l.Allow("a@example.com") {
			t.Fatalf("expected first attempt allowed")
		}
		if l.Allow("a@example.com") {
			t.Fatalf("expected second attempt denied inside window")
		}
		time.Sleep(60 * time.Millisecond)
		if !l.Allow("a@example.com") {
			t.Fatalf("expected attempt allowed after window passed")
		}
	})
}
