package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every collection in <dir>/<collection>.json.
type FileStore struct {
	dir    string
	logger *log.Logger
	mu     sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// on the first write.
func NewFileStore(dir string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &FileStore{dir: dir, logger: logger}
}

// Read decodes <collection>.json into v. Missing or unparseable files leave
// v at its default; the caller sees an empty collection, never an error.
func (s *FileStore) Read(_ context.Context, collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Printf("docstore: read %s: %v", collection, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		s.logger.Printf("docstore: decode %s: %v", collection, err)
		return nil
	}
	return nil
}

// Write replaces <collection>.json wholesale. Failures propagate so mutating
// operations can report them.
func (s *FileStore) Write(_ context.Context, collection string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("docstore: encode %s: %w", collection, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("docstore: ensure dir: %w", err)
	}
	if err := os.WriteFile(s.path(collection), data, 0o644); err != nil {
		return fmt.Errorf("docstore: write %s: %w", collection, err)
	}
	return nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}
