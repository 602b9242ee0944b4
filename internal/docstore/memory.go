package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store used by tests and the seed/import
// tools. Documents round-trip through JSON so behavior matches FileStore.
type MemoryStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

// Read decodes the stored document into v; absent collections leave v at
// its default, same as FileStore.
func (s *MemoryStore) Read(_ context.Context, collection string, v interface{}) error {
	s.mu.Lock()
	data, ok := s.docs[collection]
	s.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil
	}
	return nil
}

// Write replaces the stored document with the encoding of v.
func (s *MemoryStore) Write(_ context.Context, collection string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("docstore: encode %s: %w", collection, err)
	}
	s.mu.Lock()
	s.docs[collection] = data
	s.mu.Unlock()
	return nil
}
