package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	domainerrors "vouch/internal/domain/errors"
	"vouch/internal/domain/service"
	"vouch/internal/usecase"
	"vouch/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxUploadSize caps declared upload sizes at 100MB.
const maxUploadSize = 100 * 1024 * 1024

// allowedVideoTypes is the closed set of accepted upload MIME types.
var allowedVideoTypes = map[string]struct{}{
	"video/mp4":        {},
	"video/quicktime":  {},
	"video/x-msvideo":  {},
	"video/webm":       {},
	"video/x-matroska": {},
}

type uploadService struct {
	signer service.UploadSigner
	logger *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Signer service.UploadSigner
	Logger *slog.Logger
}

// NewUploadService creates the upload authorization service.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		signer: params.Signer,
		logger: params.Logger,
	}
}

// AuthorizeUpload validates the declared metadata and signs a PUT URL. Both
// checks run before any storage call, so a rejected request never touches
// the bucket.
func (s *uploadService) AuthorizeUpload(ctx context.Context, input *usecase.AuthorizeUploadInput) (*service.UploadAuthorization, error) {
	contentType := strings.ToLower(strings.TrimSpace(input.ContentType))
	if _, ok := allowedVideoTypes[contentType]; !ok {
		return nil, errors.Wrapf(domainerrors.ErrUnsupportedMediaType, "content type %q is not an accepted video format", input.ContentType)
	}

	if input.Size > maxUploadSize {
		return nil, errors.Wrapf(domainerrors.ErrFileTooLarge, "declared size %s exceeds the %s limit",
			util.FormatBytes(input.Size), util.FormatBytes(maxUploadSize))
	}

	key := objectKey(input.FileName)

	auth, err := s.signer.SignUpload(ctx, key, contentType)
	if err != nil {
		s.logger.Error("Upload signing failed", "key", key, "error", err)

		return nil, errors.Wrap(domainerrors.ErrUploadUnavailable, "failed to sign upload URL")
	}

	return auth, nil
}

// objectKey builds a collision-free bucket key, keeping only the original
// file extension.
func objectKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))

	return fmt.Sprintf("uploads/%s%s", uuid.New(), ext)
}
