// Package storage holds the product image asset store. Uploads happen
// before the product record is committed; a failed upload must leave the
// record untouched.
package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

type ImageStore interface {
	// Put stores the object and returns its public URL.
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)

	// Delete removes the object. Best-effort on replacement: a stale old
	// image is acceptable, a missing new one is not.
	Delete(ctx context.Context, key string) error
}

// ProductImageKeyPrefix is the key namespace for catalog images.
const ProductImageKeyPrefix = "products/"

// KeyFromURL recovers the object key from a URL previously returned by Put.
// Empty when the URL does not point into the product image namespace.
func KeyFromURL(url string) string {
	if i := strings.Index(url, ProductImageKeyPrefix); i >= 0 {
		return url[i:]
	}
	return ""
}

// MemoryStore keeps objects in a map. Used in tests and when no S3
// configuration is present.
type MemoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string][]byte)}
}

func (m *MemoryStore) Put(_ context.Context, key, _ string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.objects[key] = data
	return fmt.Sprintf("memory://%s", key), nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, key)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.objects)
}
