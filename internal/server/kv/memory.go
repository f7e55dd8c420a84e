package kv

import (
	"bytes"
	"context"
	"sort"
	"sync"

	"github.com/mlebedev/authgate/internal/common"
)

// MemoryStore implements Store on plain maps. It backs unit tests the way
// a throwaway database file would, minus the file.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{buckets: make(map[string]map[string][]byte)}
}

func (s *MemoryStore) Bucket(name string) Bucket {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.buckets[name]; !ok {
		s.buckets[name] = make(map[string][]byte)
	}
	return &memoryBucket{store: s, name: name}
}

func (s *MemoryStore) Close() error { return nil }

type memoryBucket struct {
	store *MemoryStore
	name  string
}

func (b *memoryBucket) data() map[string][]byte {
	return b.store.buckets[b.name]
}

func (b *memoryBucket) Get(_ context.Context, key []byte) ([]byte, error) {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	value, ok := b.data()[string(key)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return append([]byte(nil), value...), nil
}

func (b *memoryBucket) Put(_ context.Context, key, value []byte) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	b.data()[string(key)] = append([]byte(nil), value...)
	return nil
}

func (b *memoryBucket) PutIfAbsent(_ context.Context, key, value []byte) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	if _, ok := b.data()[string(key)]; ok {
		return common.ErrorConflict
	}
	b.data()[string(key)] = append([]byte(nil), value...)
	return nil
}

func (b *memoryBucket) Delete(_ context.Context, key []byte) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()
	delete(b.data(), string(key))
	return nil
}

func (b *memoryBucket) Update(_ context.Context, key []byte, fn UpdateFunc) error {
	b.store.mu.Lock()
	defer b.store.mu.Unlock()

	current, found := b.data()[string(key)]
	next, err := fn(append([]byte(nil), current...), found)
	if err != nil {
		return err
	}
	if next == nil {
		delete(b.data(), string(key))
		return nil
	}
	b.data()[string(key)] = append([]byte(nil), next...)
	return nil
}

func (b *memoryBucket) ScanPrefix(_ context.Context, prefix []byte, fn func(key, value []byte) error) error {
	b.store.mu.Lock()
	keys := make([]string, 0, len(b.data()))
	for k := range b.data() {
		if bytes.HasPrefix([]byte(k), prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	pairs := make([][2][]byte, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, [2][]byte{[]byte(k), append([]byte(nil), b.data()[k]...)})
	}
	b.store.mu.Unlock()

	// fn runs outside the lock so callers may issue store operations.
	for _, p := range pairs {
		if err := fn(p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}
