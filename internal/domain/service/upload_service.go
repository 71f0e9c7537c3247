package service

import (
	"context"
	"io"
)

// UploadService defines the interface for the opaque asset upload
// collaborator: store raw bytes, get back a URL. Used for design
// snapshots and proof-of-payment images.
type UploadService interface {
	// Upload stores the content under a generated key and returns the
	// publicly addressable URL.
	Upload(ctx context.Context, contentType string, content io.Reader) (string, error)
}
