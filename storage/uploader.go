package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored object after a successful upload.
type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

// FileUploader abstracts the object storage used for logos, QR codes,
// payment receipts and championship rules documents.
type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}
