// Package upload stores opaque binary assets (design snapshots, proof
// of payment images) in a blob bucket and hands back public URLs.
package upload

import (
	"context"
	"fmt"
	"io"
	"mime"
	"strings"

	"cakery/internal/domain/lifecycle"
	"cakery/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers resolved by URL scheme (file://, gs://, mem://).
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobService struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for the blob upload service, injected by Fx
type Params struct {
	fx.In

	Lc  fx.Lifecycle
	Ctx context.Context
}

// NewBlobService opens the bucket named by bucketURL and returns an
// UploadService backed by it.
func NewBlobService(params Params, bucketURL, publicBaseURL string) (service.UploadService, error) {
	ctx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobService{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}, nil
}

// Upload stores the content under a generated key and returns the
// publicly addressable URL.
func (s *blobService) Upload(ctx context.Context, contentType string, content io.Reader) (string, error) {
	key := fmt.Sprintf("%s%s", uuid.NewString(), extensionFor(contentType))

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, content); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write content")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close bucket writer")
	}

	return fmt.Sprintf("%s/%s", s.publicBaseURL, key), nil
}

// extensionFor picks a file extension for the content type so stored
// objects stay recognizable in the bucket console.
func extensionFor(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ".bin"
	}

	return exts[0]
}
