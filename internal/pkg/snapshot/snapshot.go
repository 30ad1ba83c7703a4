// Package snapshot persists whole collections, one blob per collection
// name. The memory store hands it the serialized state of each collection
// after every mutation; on startup the store reads the blobs back to seed
// itself.
package snapshot

import "context"

type Store interface {
	// Load returns the blob stored under key, with ok=false when the key
	// has never been written.
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}
