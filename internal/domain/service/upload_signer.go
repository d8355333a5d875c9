package service

import (
	"context"
	"time"
)

// UploadAuthorization is a short-lived grant allowing a client to PUT file
// bytes directly to object storage. The application itself never handles the
// bytes; it only records the resulting public URL.
type UploadAuthorization struct {
	UploadURL   string    `json:"upload_url"` // Signed PUT URL.
	PublicURL   string    `json:"public_url"` // Where the object is served from after upload.
	Key         string    `json:"key"`        // Object key within the bucket.
	ContentType string    `json:"content_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// UploadSigner issues signed upload authorizations against object storage.
// Validation of MIME type and size happens before this service is called.
type UploadSigner interface {
	// SignUpload returns a signed PUT authorization for the given object key
	// and content type.
	SignUpload(ctx context.Context, key, contentType string) (*UploadAuthorization, error)
}
