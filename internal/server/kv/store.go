// Package kv defines the ordered byte-keyed store the credential, refresh
// token and invite registries persist into, partitioned into named buckets.
//
// Implementations must provide per-key atomicity for Update: the
// read-modify-write cycle happens as one store-level operation, which is
// what lets token touches and invite redemptions run race-free without
// in-process locks in the callers.
package kv

import "context"

// UpdateFunc transforms the current value of a key. found is false when the
// key is absent (current is nil). Returning a nil value deletes the key;
// returning an error aborts the update and leaves the key untouched.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// Bucket is a namespaced ordered key-value map.
//
// Errors: Get returns common.ErrorNotFound for absent keys, PutIfAbsent
// returns common.ErrorConflict when the key already exists. Delete of an
// absent key is not an error.
type Bucket interface {
	Get(ctx context.Context, key []byte) ([]byte, error)
	Put(ctx context.Context, key, value []byte) error
	PutIfAbsent(ctx context.Context, key, value []byte) error
	Delete(ctx context.Context, key []byte) error

	// Update atomically applies fn to the value stored at key.
	Update(ctx context.Context, key []byte, fn UpdateFunc) error

	// ScanPrefix visits every key starting with prefix in ascending key
	// order. Returning an error from fn stops the scan.
	ScanPrefix(ctx context.Context, prefix []byte, fn func(key, value []byte) error) error
}

// Store hands out buckets and owns the underlying resources.
type Store interface {
	Bucket(name string) Bucket
	Close() error
}

// prefixEnd returns the smallest key greater than every key with the given
// prefix, or nil when no such bound exists (prefix is all 0xff).
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
