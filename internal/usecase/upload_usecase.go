package usecase

import (
	"context"

	"vouch/internal/domain/service"
)

// UploadUsecase authorizes direct-to-storage video uploads.
type UploadUsecase interface {
	// AuthorizeUpload validates the declared file metadata and returns a
	// short-lived signed PUT URL. Violations are rejected before any storage
	// call is made.
	AuthorizeUpload(ctx context.Context, input *AuthorizeUploadInput) (*service.UploadAuthorization, error)
}

// AuthorizeUploadInput declares the file a client intends to upload.
type AuthorizeUploadInput struct {
	FileName    string `json:"file_name" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	Size        int64  `json:"size" validate:"required,min=1"`
}
