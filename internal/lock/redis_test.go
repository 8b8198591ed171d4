package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return mr, client
}

func TestKey(t *testing.T) {
	if got := Key("products"); got != "posterseed:lock:products" {
		t.Errorf("Key = %q", got)
	}
}

func TestAcquireHeldLock(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	first := New(client, "products", time.Minute)
	if err := first.Acquire(ctx); err != nil {
		t.Fatalf("first Acquire: %v", err)
	}
	if !mr.Exists(Key("products")) {
		t.Fatal("lock key not set")
	}
	if ttl := mr.TTL(Key("products")); ttl != time.Minute {
		t.Errorf("TTL = %v, want 1m", ttl)
	}

	second := New(client, "products", time.Minute)
	if err := second.Acquire(ctx); !errors.Is(err, ErrLocked) {
		t.Fatalf("second Acquire = %v, want ErrLocked", err)
	}

	other := New(client, "products_archive", time.Minute)
	if err := other.Acquire(ctx); err != nil {
		t.Errorf("Acquire on another table = %v, want nil", err)
	}
}

func TestAcquireAfterRelease(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	first := New(client, "products", time.Minute)
	if err := first.Acquire(ctx); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if err := first.Release(ctx); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if mr.Exists(Key("products")) {
		t.Fatal("lock key still present after Release")
	}

	second := New(client, "products", time.Minute)
	if err := second.Acquire(ctx); err != nil {
		t.Errorf("Acquire after Release = %v, want nil", err)
	}
}

func TestAcquireAfterExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	if err := New(client, "products", time.Minute).Acquire(ctx); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if err := New(client, "products", time.Minute).Acquire(ctx); err != nil {
		t.Errorf("Acquire after expiry = %v, want nil", err)
	}
}

func TestReleaseKeepsForeignToken(t *testing.T) {
	mr, client := newTestClient(t)
	ctx := context.Background()

	l := New(client, "products", time.Minute)
	if err := l.Acquire(ctx); err != nil {
		t.Fatalf("Acquire: %v", err)
	}

	// Our lock expired and another run took it.
	if err := mr.Set(Key("products"), "other-run"); err != nil {
		t.Fatalf("set foreign token: %v", err)
	}

	if err := l.Release(ctx); err != nil {
		t.Fatalf("Release: %v", err)
	}
	got, err := mr.Get(Key("products"))
	if err != nil {
		t.Fatalf("get lock key: %v", err)
	}
	if got != "other-run" {
		t.Errorf("lock value = %q, want other-run", got)
	}
}

func TestReleaseWithoutAcquireIsNoop(t *testing.T) {
	// Nothing listens here; Release must not touch the network.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer client.Close()

	l := New(client, "products", time.Minute)
	if err := l.Release(context.Background()); err != nil {
		t.Errorf("Release = %v, want nil", err)
	}
}

func TestAcquireUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 100 * time.Millisecond})
	defer client.Close()

	l := New(client, "products", time.Minute)
	err := l.Acquire(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrLocked) {
		t.Error("connection failure reported as ErrLocked")
	}
}

func TestTTLFor(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		perCall time.Duration
		want    time.Duration
	}{
		{name: "full catalog", n: 24, perCall: 30 * time.Second, want: 13 * time.Minute},
		{name: "single record", n: 1, perCall: 5 * time.Second, want: time.Minute + 5*time.Second},
		{name: "no per-call timeout", n: 24, perCall: 0, want: fallbackTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TTLFor(tt.n, tt.perCall)
			if got != tt.want {
				t.Errorf("TTLFor(%d, %v) = %v, want %v", tt.n, tt.perCall, got, tt.want)
			}
			if tt.perCall > 0 && got <= time.Duration(tt.n)*tt.perCall {
				t.Errorf("TTL %v does not outlive worst-case run", got)
			}
		})
	}
}
