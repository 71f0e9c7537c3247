package impl

import (
	"context"
	"strings"
	"testing"

	domainerrors "cakery/internal/domain/errors"
	mockService "cakery/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUploadService_UploadImage(t *testing.T) {
	uploads := mockService.NewMockUploadService(t)
	service := NewUploadService(UploadServiceParams{Uploads: uploads})

	ctx := context.Background()
	content := strings.NewReader("png-bytes")
	uploads.EXPECT().
		Upload(ctx, "image/png", content).
		Return("https://cdn.example.com/uploads/abc.png", nil)

	url, err := service.UploadImage(ctx, "image/png", content)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/abc.png", url)
}

func TestUploadService_UploadImage_UnsupportedType(t *testing.T) {
	uploads := mockService.NewMockUploadService(t)
	service := NewUploadService(UploadServiceParams{Uploads: uploads})

	_, err := service.UploadImage(context.Background(), "application/pdf", strings.NewReader("%PDF"))
	assertAppError(t, domainerrors.ErrValidationFailed, err)
}

func TestUploadService_UploadImage_StorageError(t *testing.T) {
	uploads := mockService.NewMockUploadService(t)
	service := NewUploadService(UploadServiceParams{Uploads: uploads})

	ctx := context.Background()
	uploads.EXPECT().Upload(ctx, "image/webp", mock.Anything).Return("", assert.AnError)

	_, err := service.UploadImage(ctx, "image/webp", strings.NewReader("webp-bytes"))
	require.Error(t, err)
}
