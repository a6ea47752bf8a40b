package store

import (
	"context"
	"errors"
)

// ErrNoDocument is returned by a Backend when nothing has been written yet.
var ErrNoDocument = errors.New("no document stored")

// Backend persists the serialized document as an opaque blob.
// Implementations overwrite the previous blob in full on every Write.
type Backend interface {
	// Read returns the last written blob, or ErrNoDocument.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored blob.
	Write(ctx context.Context, data []byte) error
	// Close releases any handles held by the backend.
	Close() error
	// Name identifies the backend in logs and health output.
	Name() string
}
