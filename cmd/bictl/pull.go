package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/storage"
)

var catalogExtensions = []string{".json", ".xlsx"}

func isCatalogFile(key string) bool {
	lower := strings.ToLower(key)
	for _, ext := range catalogExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// pullCatalog downloads either a single key or every catalog file under prefix into destDir.
func pullCatalog(ctx context.Context, client storage.ObjectStorage, prefix, override, destDir string) ([]string, error) {
	var keys []string

	if override != "" {
		keys = []string{resolveObjectKey(prefix, override)}
	} else {
		listPrefix := strings.TrimSpace(prefix)
		objects, err := client.ListObjects(ctx, listPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects for prefix %s: %w", listPrefix, err)
		}
		for _, obj := range objects {
			if isCatalogFile(obj.Key) {
				keys = append(keys, obj.Key)
			}
		}
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("no catalog files found for prefix %s", prefix)
	}

	localPaths := make([]string, 0, len(keys))
	for _, key := range keys {
		localPath := filepath.Join(destDir, objectRelativePath(prefix, key))
		if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to prepare directory for %s: %w", localPath, err)
		}
		if err := client.DownloadObject(ctx, key, localPath); err != nil {
			return nil, err
		}
		localPaths = append(localPaths, localPath)
	}

	sort.Strings(localPaths)
	return localPaths, nil
}

func resolveObjectKey(prefix, override string) string {
	if override == "" {
		return strings.TrimSpace(prefix)
	}
	if prefix == "" {
		return strings.TrimPrefix(override, "/")
	}

	prefixTrimmed := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	overrideTrimmed := strings.TrimPrefix(strings.TrimSpace(override), "/")

	if strings.HasPrefix(overrideTrimmed, prefixTrimmed) {
		return overrideTrimmed
	}
	return prefixTrimmed + "/" + overrideTrimmed
}

func objectRelativePath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	prefixTrimmed := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	rel := strings.TrimPrefix(key, prefixTrimmed+"/")
	if rel == "" || rel == key {
		return filepath.Base(key)
	}
	return rel
}
