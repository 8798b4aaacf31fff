package storage

import "context"

// ArtworkStore is the blob store holding customer artwork images. The core
// only ever holds reference strings; uploads happen at the boundary. Delete
// is called best-effort when an order's artwork is replaced or removed.
type ArtworkStore interface {
	Delete(ctx context.Context, ref string) error
}
