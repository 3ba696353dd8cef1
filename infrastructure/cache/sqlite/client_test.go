package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("NewSQLiteCache returned error: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestSQLiteCache_SetAndGet(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, err := client.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "value" {
		t.Errorf("Get returned %q, want %q", got, "value")
	}
}

func TestSQLiteCache_GetMissingKey(t *testing.T) {
	client := newTestClient(t)

	if _, err := client.Get(context.Background(), "absent"); err != ErrCacheMiss {
		t.Errorf("Get returned %v, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_ExpiredKeyMisses(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Expiry has one-second resolution, so write an entry already expired.
	if err := client.Set(ctx, "key", []byte("value"), -2*time.Second); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if _, err := client.Get(ctx, "key"); err != ErrCacheMiss {
		t.Errorf("Get returned %v for an expired key, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_Delete(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_ = client.Set(ctx, "key", []byte("value"), time.Minute)
	if err := client.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if _, err := client.Get(ctx, "key"); err != ErrCacheMiss {
		t.Errorf("Get returned %v after Delete, want ErrCacheMiss", err)
	}
}

func TestSQLiteCache_ReplaceEntry(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_ = client.Set(ctx, "key", []byte("first"), time.Minute)
	_ = client.Set(ctx, "key", []byte("second"), time.Minute)

	got, err := client.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Get returned %q, want the replaced value", got)
	}
}

func TestSQLiteCache_EmptyKeyRejected(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if err := client.Set(ctx, "", []byte("v"), time.Minute); err == nil {
		t.Error("Set should reject an empty key")
	}
	if _, err := client.Get(ctx, ""); err == nil {
		t.Error("Get should reject an empty key")
	}
}
