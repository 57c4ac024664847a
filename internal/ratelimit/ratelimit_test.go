package ratelimit

import (
	"testing"
	"time"
)

func TestFixedWindow_AllowWithinLimit(t *testing.T) {
	l := NewFixedWindow(3, time.Minute)
	for i := 0; i < 3; i++ {
		if ok, _ := l.Allow("actor-1"); !ok {
			t.Fatalf("request %d unexpectedly limited", i+1)
		}
	}
}

func TestFixedWindow_RejectsOverLimitWithRetryAfter(t *testing.T) {
	l := NewFixedWindow(10, time.Minute)
	for i := 0; i < 10; i++ {
		l.Allow("actor-1")
	}
	ok, retryAfter := l.Allow("actor-1")
	if ok {
		t.Fatalf("11th request should be limited")
	}
	if retryAfter <= 0 || retryAfter > time.Minute {
		t.Fatalf("expected retry-after in (0, window], got %v", retryAfter)
	}
}

func TestFixedWindow_KeysAreIndependent(t *testing.T) {
	l := NewFixedWindow(1, time.Minute)
	l.Allow("actor-1")
	if ok, _ := l.Allow("actor-2"); !ok {
		t.Fatalf("actor-2 should not be limited by actor-1's window")
	}
}

func TestFixedWindow_WindowResets(t *testing.T) {
	l := NewFixedWindow(1, time.Minute)
	now := time.Now().UTC()
	l.now = func() time.Time { return now }

	l.Allow("actor-1")
	if ok, _ := l.Allow("actor-1"); ok {
		t.Fatalf("second request in window should be limited")
	}

	now = now.Add(time.Minute + time.Second)
	if ok, _ := l.Allow("actor-1"); !ok {
		t.Fatalf("request after window expiry should be allowed")
	}
}

func TestFixedWindow_EmptyKeyRejected(t *testing.T) {
	l := NewFixedWindow(10, time.Minute)
	if ok, _ := l.Allow(""); ok {
		t.Fatalf("empty key must be rejected")
	}
}
