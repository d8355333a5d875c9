// Package storage issues signed direct-to-bucket upload URLs through
// gocloud.dev, keeping video bytes out of the application entirely.
package storage

import (
	"context"
	"strings"
	"time"

	"vouch/config"
	"vouch/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket drivers selected by the upload.bucketUrl scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultURLExpiry = 15 * time.Minute

type blobSigner struct {
	bucket        *blob.Bucket
	publicBaseURL string
	urlExpiry     time.Duration
}

// NewBlobSigner opens the configured bucket and returns an UploadSigner plus
// a closer for shutdown wiring.
func NewBlobSigner(ctx context.Context, cfg *config.UploadConfig) (service.UploadSigner, func() error, error) {
	if cfg == nil || cfg.BucketURL == "" {
		return nil, nil, errors.New("upload bucket URL is required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open bucket %s failed", cfg.BucketURL)
	}

	expiry := cfg.URLExpiry
	if expiry <= 0 {
		expiry = defaultURLExpiry
	}

	signer := &blobSigner{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		urlExpiry:     expiry,
	}

	return signer, bucket.Close, nil
}

func (s *blobSigner) SignUpload(ctx context.Context, key, contentType string) (*service.UploadAuthorization, error) {
	uploadURL, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{
		Method:      "PUT",
		Expiry:      s.urlExpiry,
		ContentType: contentType,
	})
	if err != nil {
		return nil, errors.Wrap(err, "sign upload URL failed")
	}

	return &service.UploadAuthorization{
		UploadURL:   uploadURL,
		PublicURL:   s.publicBaseURL + "/" + key,
		Key:         key,
		ContentType: contentType,
		ExpiresAt:   time.Now().Add(s.urlExpiry),
	}, nil
}
