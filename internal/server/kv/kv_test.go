package kv

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mlebedev/authgate/internal/common"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqlite,
	}
}

func TestBucket_GetPutDelete(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			b := store.Bucket("tokens")

			if _, err := b.Get(ctx, []byte("missing")); !errors.Is(err, common.ErrorNotFound) {
				t.Fatalf("expected ErrorNotFound, got %v", err)
			}

			if err := b.Put(ctx, []byte("k1"), []byte("v1")); err != nil {
				t.Fatalf("Put error: %v", err)
			}
			got, err := b.Get(ctx, []byte("k1"))
			if err != nil {
				t.Fatalf("Get error: %v", err)
			}
			if !bytes.Equal(got, []byte("v1")) {
				t.Fatalf("got %q, want %q", got, "v1")
			}

			// overwrite
			if err := b.Put(ctx, []byte("k1"), []byte("v2")); err != nil {
				t.Fatalf("Put error: %v", err)
			}
			got, _ = b.Get(ctx, []byte("k1"))
			if !bytes.Equal(got, []byte("v2")) {
				t.Fatalf("got %q, want %q", got, "v2")
			}

			if err := b.Delete(ctx, []byte("k1")); err != nil {
				t.Fatalf("Delete error: %v", err)
			}
			if _, err := b.Get(ctx, []byte("k1")); !errors.Is(err, common.ErrorNotFound) {
				t.Fatalf("expected ErrorNotFound after delete, got %v", err)
			}

			// deleting a missing key is a no-op
			if err := b.Delete(ctx, []byte("k1")); err != nil {
				t.Fatalf("Delete of absent key must not fail: %v", err)
			}
		})
	}
}

func TestBucket_PutIfAbsent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			b := store.Bucket("users")

			if err := b.PutIfAbsent(ctx, []byte("alice"), []byte("d1")); err != nil {
				t.Fatalf("PutIfAbsent error: %v", err)
			}
			err := b.PutIfAbsent(ctx, []byte("alice"), []byte("d2"))
			if !errors.Is(err, common.ErrorConflict) {
				t.Fatalf("expected ErrorConflict, got %v", err)
			}
			got, _ := b.Get(ctx, []byte("alice"))
			if !bytes.Equal(got, []byte("d1")) {
				t.Fatalf("conflicting PutIfAbsent must not overwrite, got %q", got)
			}
		})
	}
}

func TestBucket_Update(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			b := store.Bucket("invites")

			// absent key reported to fn
			err := b.Update(ctx, []byte("k"), func(current []byte, found bool) ([]byte, error) {
				if found {
					t.Fatal("found must be false for absent key")
				}
				return []byte("v1"), nil
			})
			if err != nil {
				t.Fatalf("Update error: %v", err)
			}

			// fn error aborts without touching the value
			wantErr := errors.New("domain rule")
			err = b.Update(ctx, []byte("k"), func(current []byte, found bool) ([]byte, error) {
				if !found || !bytes.Equal(current, []byte("v1")) {
					t.Fatalf("unexpected current: %q found=%v", current, found)
				}
				return nil, wantErr
			})
			if !errors.Is(err, wantErr) {
				t.Fatalf("expected fn error, got %v", err)
			}
			got, _ := b.Get(ctx, []byte("k"))
			if !bytes.Equal(got, []byte("v1")) {
				t.Fatalf("aborted update must not change value, got %q", got)
			}

			// nil result deletes
			err = b.Update(ctx, []byte("k"), func(current []byte, found bool) ([]byte, error) {
				return nil, nil
			})
			if err != nil {
				t.Fatalf("Update error: %v", err)
			}
			if _, err := b.Get(ctx, []byte("k")); !errors.Is(err, common.ErrorNotFound) {
				t.Fatalf("expected key deleted, got %v", err)
			}
		})
	}
}

func TestBucket_UpdateConcurrent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			b := store.Bucket("counters")

			if err := b.Put(ctx, []byte("n"), []byte{0}); err != nil {
				t.Fatalf("Put error: %v", err)
			}

			const goroutines = 20
			var wg sync.WaitGroup
			for i := 0; i < goroutines; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					err := b.Update(ctx, []byte("n"), func(current []byte, found bool) ([]byte, error) {
						return []byte{current[0] + 1}, nil
					})
					if err != nil {
						t.Errorf("Update error: %v", err)
					}
				}()
			}
			wg.Wait()

			got, err := b.Get(ctx, []byte("n"))
			if err != nil {
				t.Fatalf("Get error: %v", err)
			}
			if got[0] != goroutines {
				t.Fatalf("lost updates: got %d, want %d", got[0], goroutines)
			}
		})
	}
}

func TestBucket_UpdateWithIndependentWriters(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			b := store.Bucket("counters")

			if err := b.Put(ctx, []byte("n"), []byte{0}); err != nil {
				t.Fatalf("Put error: %v", err)
			}

			// Puts to unrelated keys must not break an in-flight Update.
			const rounds = 200
			var wg sync.WaitGroup
			wg.Add(2)
			go func() {
				defer wg.Done()
				for i := 0; i < rounds; i++ {
					err := b.Update(ctx, []byte("n"), func(current []byte, found bool) ([]byte, error) {
						return []byte{current[0] + 1}, nil
					})
					if err != nil {
						t.Errorf("Update error: %v", err)
						return
					}
				}
			}()
			go func() {
				defer wg.Done()
				for i := 0; i < rounds; i++ {
					if err := b.Put(ctx, []byte{'p', byte(i)}, []byte("x")); err != nil {
						t.Errorf("Put error: %v", err)
						return
					}
				}
			}()
			wg.Wait()

			got, err := b.Get(ctx, []byte("n"))
			if err != nil {
				t.Fatalf("Get error: %v", err)
			}
			if got[0] != rounds {
				t.Fatalf("lost updates: got %d, want %d", got[0], rounds)
			}
		})
	}
}

func TestBucket_ScanPrefix(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			b := store.Bucket("tokens")

			entries := map[string]string{
				"bob:t1":   "1",
				"bob:t2":   "2",
				"bobby:t3": "3",
				"carol:t4": "4",
			}
			for k, v := range entries {
				if err := b.Put(ctx, []byte(k), []byte(v)); err != nil {
					t.Fatalf("Put error: %v", err)
				}
			}

			var keys []string
			err := b.ScanPrefix(ctx, []byte("bob:"), func(key, value []byte) error {
				keys = append(keys, string(key))
				return nil
			})
			if err != nil {
				t.Fatalf("ScanPrefix error: %v", err)
			}
			if len(keys) != 2 || keys[0] != "bob:t1" || keys[1] != "bob:t2" {
				t.Fatalf("unexpected keys: %v", keys)
			}

			// fn error stops the scan
			count := 0
			stop := errors.New("stop")
			err = b.ScanPrefix(ctx, []byte("bob:"), func(key, value []byte) error {
				count++
				return stop
			})
			if !errors.Is(err, stop) || count != 1 {
				t.Fatalf("scan not stopped: err=%v count=%d", err, count)
			}
		})
	}
}

func TestBucket_Isolation(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			a := store.Bucket("a")
			b := store.Bucket("b")

			if err := a.Put(ctx, []byte("k"), []byte("va")); err != nil {
				t.Fatalf("Put error: %v", err)
			}
			if _, err := b.Get(ctx, []byte("k")); !errors.Is(err, common.ErrorNotFound) {
				t.Fatalf("buckets must be isolated, got %v", err)
			}
		})
	}
}

func TestPrefixEnd(t *testing.T) {
	cases := []struct {
		prefix, want []byte
	}{
		{[]byte("bob:"), []byte("bob;")},
		{[]byte{0x01, 0xff}, []byte{0x02}},
		{[]byte{0xff, 0xff}, nil},
	}
	for _, tc := range cases {
		if got := prefixEnd(tc.prefix); !bytes.Equal(got, tc.want) {
			t.Fatalf("prefixEnd(%v) = %v, want %v", tc.prefix, got, tc.want)
		}
	}
}
