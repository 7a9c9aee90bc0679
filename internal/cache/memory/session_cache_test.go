package memory

import (
	"context"
	"testing"
	"time"

	"github.com/Gunvolt24/storefront/internal/session"
)

type nopLogger struct{}

func (nopLogger) Debugf(context.Context, string, ...any) {}
func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// fakeClock — ручное управление временем кэша.
type fakeClock struct{ t time.Time }

func (f *fakeClock) Now() time.Time          { return f.t }
func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(capacity int, ttl time.Duration) (*SessionCache, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewSessionCache(capacity, ttl, func(id string) *session.Session {
		return session.New(id, nil, clock.Now())
	})
	c.now = clock.Now
	return c, clock
}

func TestGetOrCreate_ReturnsSameSession(t *testing.T) {
	c, _ := newTestCache(2, time.Minute)
	ctx := context.Background()

	if _, ok := c.Get(ctx, "s1"); ok {
		t.Fatalf("expected miss before GetOrCreate")
	}

	s1 := c.GetOrCreate(ctx, "s1")
	s2 := c.GetOrCreate(ctx, "s1")
	if s1 != s2 {
		t.Fatalf("GetOrCreate must return the live session, not a new one")
	}
	if got, ok := c.Get(ctx, "s1"); !ok || got != s1 {
		t.Fatalf("expected hit for s1")
	}
}

func TestTTL_IdleExpiryAndTouch(t *testing.T) {
	c, clock := newTestCache(4, 10*time.Minute)
	ctx := context.Background()

	first := c.GetOrCreate(ctx, "s1")

	// касание продлевает жизнь
	clock.Advance(9 * time.Minute)
	if _, ok := c.Get(ctx, "s1"); !ok {
		t.Fatalf("expected hit before TTL")
	}
	clock.Advance(9 * time.Minute)
	if _, ok := c.Get(ctx, "s1"); !ok {
		t.Fatalf("expected hit: TTL must be extended by previous Get")
	}

	clock.Advance(11 * time.Minute)
	if _, ok := c.Get(ctx, "s1"); ok {
		t.Fatalf("expected miss after idle TTL")
	}
	if again := c.GetOrCreate(ctx, "s1"); again == first {
		t.Fatalf("expired session must be replaced with a fresh one")
	}
}

func TestLRUEviction(t *testing.T) {
	c, _ := newTestCache(2, 0) // 0 = без TTL
	ctx := context.Background()

	c.GetOrCreate(ctx, "A")
	c.GetOrCreate(ctx, "B")
	// A сделать «свежим»
	if _, ok := c.Get(ctx, "A"); !ok {
		t.Fatalf("expected hit for A")
	}
	// Добавляем C — вытеснит B (самый старый)
	c.GetOrCreate(ctx, "C")

	if _, ok := c.Get(ctx, "B"); ok {
		t.Fatalf("expected B to be evicted")
	}
	if _, ok := c.Get(ctx, "A"); !ok || c.Len() != 2 {
		t.Fatalf("expected A & C to stay in cache")
	}
}

func TestSweepAndDelete(t *testing.T) {
	c, clock := newTestCache(10, time.Minute)
	ctx := context.Background()

	c.GetOrCreate(ctx, "old-1")
	c.GetOrCreate(ctx, "old-2")
	clock.Advance(30 * time.Second)
	c.GetOrCreate(ctx, "fresh")

	clock.Advance(45 * time.Second)
	if n := c.Sweep(clock.Now()); n != 2 {
		t.Fatalf("Sweep removed %d, want 2", n)
	}
	if c.Len() != 1 {
		t.Fatalf("Len after sweep = %d, want 1", c.Len())
	}

	c.Delete(ctx, "fresh")
	c.Delete(ctx, "fresh")
	if c.Len() != 0 {
		t.Fatalf("Len after delete = %d, want 0", c.Len())
	}
}

func TestJanitor_StopsOnClose(t *testing.T) {
	c, _ := newTestCache(10, time.Nanosecond)
	c.now = time.Now
	c.GetOrCreate(context.Background(), "s1")

	j := NewJanitor(c, 5*time.Millisecond, nopLogger{})
	errCh := make(chan error, 1)
	go func() { errCh <- j.Run(context.Background()) }()

	deadline := time.Now().Add(time.Second)
	for c.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("janitor did not sweep expired session")
		}
		time.Sleep(5 * time.Millisecond)
	}

	_ = j.Close()
	_ = j.Close()

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Run after Close: want nil, got %v", err)
		}
	case <-time.After(200 * time.Millisecond):
		t.Fatal("timeout waiting for janitor to stop")
	}
}
