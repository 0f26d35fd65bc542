package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chartmuseum/storage"
)

// SevallaConfig encapsulates the connection info for Sevalla (S3-compatible) storage.
type SevallaConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// Enabled reports whether enough is configured to build a client.
func (c SevallaConfig) Enabled() bool {
	return c.Endpoint != "" && c.Bucket != ""
}

// SevallaClient implements ObjectStorage for Sevalla / S3-compatible services.
type SevallaClient struct {
	bucket  string
	backend storage.Backend
}

// NewSevallaClient builds a new SevallaClient backed by chartmuseum's Amazon storage backend.
func NewSevallaClient(cfg SevallaConfig) (*SevallaClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("sevalla endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("sevalla credentials must be provided")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("sevalla bucket must be provided")
	}

	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	// The AWS SDK inside chartmuseum reads credentials from the environment.
	os.Setenv("AWS_ACCESS_KEY_ID", cfg.AccessKey)
	os.Setenv("AWS_SECRET_ACCESS_KEY", cfg.SecretKey)
	os.Setenv("AWS_REGION", region)
	os.Setenv("AWS_DEFAULT_REGION", region)

	backend := storage.NewAmazonS3BackendWithOptions(
		cfg.Bucket,
		"", // no prefix
		region,
		endpointURL(cfg.Endpoint, cfg.UseSSL),
		"",
		&storage.AmazonS3Options{
			S3ForcePathStyle: awsBool(true),
		},
	)

	return &SevallaClient{
		bucket:  cfg.Bucket,
		backend: backend,
	}, nil
}

func endpointURL(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	scheme := "https"
	if !useSSL {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s", scheme, strings.TrimPrefix(endpoint, "//"))
}

func (c *SevallaClient) Bucket() string { return c.bucket }

// ListObjects lists all objects for a given prefix.
func (c *SevallaClient) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	files, err := c.backend.ListObjects(prefix)
	if err != nil {
		return nil, fmt.Errorf("sevalla list failed: %w", err)
	}
	results := make([]ObjectInfo, 0, len(files))
	for _, object := range files {
		results = append(results, ObjectInfo{
			Key:  object.Path,
			Size: int64(len(object.Content)),
		})
	}
	return results, nil
}

// ReadObject returns the content of an object.
func (c *SevallaClient) ReadObject(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	object, err := c.backend.GetObject(key)
	if err != nil {
		return nil, fmt.Errorf("sevalla get %s failed: %w", key, err)
	}
	return object.Content, nil
}

// DownloadObject downloads an object to the provided destination path.
func (c *SevallaClient) DownloadObject(ctx context.Context, key, destPath string) error {
	content, err := c.ReadObject(ctx, key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return fmt.Errorf("failed creating directory for %s: %w", destPath, err)
	}
	if err := os.WriteFile(destPath, content, 0o644); err != nil {
		return fmt.Errorf("failed writing %s: %w", destPath, err)
	}
	return nil
}

var _ ObjectStorage = (*SevallaClient)(nil)

func awsBool(v bool) *bool {
	return &v
}
