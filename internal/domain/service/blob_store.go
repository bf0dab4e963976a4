package service

import "context"

// BlobStore abstracts the image storage collaborator. References have the shape
// "<folder>/<name>.<ext>" and are stored verbatim on the owning record, so a
// record delete can always release its blob by reference alone.
type BlobStore interface {
	// Store writes the file bytes under the given folder and returns the reference.
	Store(ctx context.Context, data []byte, folder, filename string) (string, error)

	// Destroy releases the blob behind a previously returned reference.
	// Destroying a reference that no longer exists is not an error.
	Destroy(ctx context.Context, ref string) error
}
