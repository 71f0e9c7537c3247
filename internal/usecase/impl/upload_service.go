package impl

import (
	"context"
	"io"

	domainerrors "cakery/internal/domain/errors"
	"cakery/internal/domain/service"
	"cakery/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// allowedUploadTypes restricts uploads to the image formats the
// marketplace clients produce.
var allowedUploadTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
}

type uploadService struct {
	uploads service.UploadService
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Uploads service.UploadService
}

// NewUploadService creates a new image upload service instance
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		uploads: params.Uploads,
	}
}

// UploadImage stores the content and returns its URL
func (s *uploadService) UploadImage(ctx context.Context, contentType string, content io.Reader) (string, error) {
	if _, ok := allowedUploadTypes[contentType]; !ok {
		return "", domainerrors.ErrValidationFailed.WithDetails("unsupported content type: " + contentType)
	}

	url, err := s.uploads.Upload(ctx, contentType, content)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	return url, nil
}
