package storage

import "context"

// Uploader stores an image and returns its public URL. The engine only
// depends on this interface; the S3 implementation lives alongside it.
type Uploader interface {
	UploadImage(ctx context.Context, data []byte) (string, error)
}
