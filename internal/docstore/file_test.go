package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)
	ctx := context.Background()

	in := []doc{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	if err := store.Write(ctx, "things", in); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out []doc
	if err := store.Read(ctx, "things", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 2 || out[0].Name != "a" || out[1].Count != 2 {
		t.Fatalf("unexpected document: %+v", out)
	}
}

func TestFileStoreMissingFileYieldsDefault(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)

	out := []doc{{Name: "untouched"}}
	if err := store.Read(context.Background(), "absent", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 || out[0].Name != "untouched" {
		t.Fatalf("read of missing collection must leave target untouched, got %+v", out)
	}
}

func TestFileStoreMalformedFileYieldsDefault(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store := NewFileStore(dir, nil)

	var out []doc
	if err := store.Read(context.Background(), "things", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out != nil {
		t.Fatalf("malformed collection must degrade to default, got %+v", out)
	}
}

func TestFileStoreLastWriterWins(t *testing.T) {
	store := NewFileStore(t.TempDir(), nil)
	ctx := context.Background()

	if err := store.Write(ctx, "things", []doc{{Name: "first"}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Write(ctx, "things", []doc{{Name: "second"}}); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out []doc
	if err := store.Read(ctx, "things", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 || out[0].Name != "second" {
		t.Fatalf("expected the later write to replace the document, got %+v", out)
	}
}

func TestMemoryStoreMatchesFileStoreDefaults(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var out []doc
	if err := store.Read(ctx, "absent", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if out != nil {
		t.Fatalf("expected default on missing collection, got %+v", out)
	}

	if err := store.Write(ctx, "things", []doc{{Name: "a"}}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Read(ctx, "things", &out); err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(out) != 1 || out[0].Name != "a" {
		t.Fatalf("unexpected document: %+v", out)
	}
}
