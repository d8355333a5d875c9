package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/service"
	mockService "vouch/internal/mocks/service"
	"vouch/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uploadServiceFixtures struct {
	service usecase.UploadUsecase
	signer  *mockService.MockUploadSigner
}

func createTestUploadService(t *testing.T) uploadServiceFixtures {
	signer := mockService.NewMockUploadSigner(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewUploadService(UploadServiceParams{
		Signer: signer,
		Logger: logger,
	})

	return uploadServiceFixtures{
		service: svc,
		signer:  signer,
	}
}

func TestUploadService_AuthorizeUpload_Success(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	fx.signer.EXPECT().
		SignUpload(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/") && strings.HasSuffix(key, ".mp4")
		}), "video/mp4").
		Return(&service.UploadAuthorization{
			UploadURL:   "https://bucket.example.com/signed",
			PublicURL:   "https://cdn.example.com/uploads/key.mp4",
			ContentType: "video/mp4",
			ExpiresAt:   time.Now().Add(15 * time.Minute),
		}, nil)

	auth, err := fx.service.AuthorizeUpload(ctx, &usecase.AuthorizeUploadInput{
		FileName:    "testimonial.MP4",
		ContentType: "video/mp4",
		Size:        10 * 1024 * 1024,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.UploadURL)
}

func TestUploadService_AuthorizeUpload_RejectsNonVideoTypes(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	// No signer expectation: rejected requests must never reach storage.
	auth, err := fx.service.AuthorizeUpload(ctx, &usecase.AuthorizeUploadInput{
		FileName:    "malware.exe",
		ContentType: "application/octet-stream",
		Size:        1024,
	})
	require.Error(t, err)
	assert.Nil(t, auth)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}

func TestUploadService_AuthorizeUpload_RejectsOversizedFiles(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	auth, err := fx.service.AuthorizeUpload(ctx, &usecase.AuthorizeUploadInput{
		FileName:    "huge.mp4",
		ContentType: "video/mp4",
		Size:        101 * 1024 * 1024,
	})
	require.Error(t, err)
	assert.Nil(t, auth)
	assert.True(t, errors.Is(err, domainerrors.ErrFileTooLarge))
}

func TestUploadService_AuthorizeUpload_AcceptsBoundarySize(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	fx.signer.EXPECT().
		SignUpload(ctx, mock.AnythingOfType("string"), "video/webm").
		Return(&service.UploadAuthorization{UploadURL: "https://bucket.example.com/signed"}, nil)

	auth, err := fx.service.AuthorizeUpload(ctx, &usecase.AuthorizeUploadInput{
		FileName:    "exactly.webm",
		ContentType: "video/webm",
		Size:        100 * 1024 * 1024,
	})
	require.NoError(t, err)
	assert.NotNil(t, auth)
}

func TestUploadService_AuthorizeUpload_SigningFailure(t *testing.T) {
	fx := createTestUploadService(t)

	ctx := context.Background()

	fx.signer.EXPECT().
		SignUpload(ctx, mock.AnythingOfType("string"), "video/mp4").
		Return(nil, errors.New("bucket unreachable"))

	auth, err := fx.service.AuthorizeUpload(ctx, &usecase.AuthorizeUploadInput{
		FileName:    "clip.mp4",
		ContentType: "video/mp4",
		Size:        1024,
	})
	require.Error(t, err)
	assert.Nil(t, auth)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadUnavailable))
}
