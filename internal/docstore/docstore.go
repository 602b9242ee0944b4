// Package docstore persists each collection as one whole JSON document.
// There is no partial update: callers read the entire collection, mutate it
// in memory and write the entire collection back. Read-modify-write cycles
// are not serialized against each other, so of two concurrent writers the
// later write wins.
package docstore

import "context"

// Collection names used by the repositories.
const (
	CollectionProducts = "products"
	CollectionUsers    = "users"
	CollectionCart     = "cart"
)

// Store reads and writes whole collection documents.
type Store interface {
	// Read decodes the named collection into v. A missing or malformed
	// document leaves v untouched and returns nil; only I/O-level failures
	// surface as errors.
	Read(ctx context.Context, collection string, v interface{}) error
	// Write replaces the named collection with the encoding of v.
	Write(ctx context.Context, collection string, v interface{}) error
}
