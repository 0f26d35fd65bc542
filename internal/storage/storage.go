package storage

import "context"

// ObjectInfo represents metadata for a remote file/object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// ObjectStorage captures the S3-compatible operations the catalog loader and CLI need.
type ObjectStorage interface {
	Bucket() string
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)
	ReadObject(ctx context.Context, key string) ([]byte, error)
	DownloadObject(ctx context.Context, key string, destPath string) error
}
