// Package service declares infrastructure-facing service interfaces consumed
// by the use case layer.
package service

import "context"

// StoredObject describes one object held in the photo bucket.
type StoredObject struct {
	Key  string `json:"key"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// PhotoStorage is the blob storage surface for product photos. Implementations
// must reject non-image payloads and payloads over the size limit before any
// network call, and surface a missing bucket as a configuration failure rather
// than degrading to placeholder URLs.
type PhotoStorage interface {
	// Upload stores the payload under a derived key and returns its public URL.
	Upload(ctx context.Context, filename string, payload []byte) (string, error)

	// Delete removes a previously uploaded object by its URL.
	Delete(ctx context.Context, url string) error

	// List enumerates the objects currently held in the bucket.
	List(ctx context.Context) ([]StoredObject, error)
}
