package usecase

import (
	"context"
	"io"
)

// UploadUsecase stores opaque images (design snapshots, proof of
// payment) and returns their public URLs.
type UploadUsecase interface {
	// UploadImage stores the content and returns its URL.
	UploadImage(ctx context.Context, contentType string, content io.Reader) (string, error)
}
