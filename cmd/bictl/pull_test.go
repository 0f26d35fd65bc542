package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresuchdata/fulfillment-bi/backend-go/internal/storage"
)

type fakeStorage struct {
	objects map[string][]byte
}

func (f *fakeStorage) Bucket() string { return "bi" }

func (f *fakeStorage) ListObjects(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	var out []storage.ObjectInfo
	for k, v := range f.objects {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, storage.ObjectInfo{Key: k, Size: int64(len(v))})
		}
	}
	return out, nil
}

func (f *fakeStorage) ReadObject(_ context.Context, key string) ([]byte, error) {
	return f.objects[key], nil
}

func (f *fakeStorage) DownloadObject(_ context.Context, key, destPath string) error {
	return os.WriteFile(destPath, f.objects[key], 0o644)
}

func TestResolveObjectKey(t *testing.T) {
	assert.Equal(t, "catalog/kpis.json", resolveObjectKey("catalog/", "kpis.json"))
	assert.Equal(t, "catalog/kpis.json", resolveObjectKey("catalog", "/catalog/kpis.json"))
	assert.Equal(t, "kpis.json", resolveObjectKey("", "/kpis.json"))
}

func TestObjectRelativePath(t *testing.T) {
	assert.Equal(t, "2024/kpis.json", objectRelativePath("catalog/", "catalog/2024/kpis.json"))
	assert.Equal(t, "kpis.json", objectRelativePath("", "kpis.json"))
	assert.Equal(t, "kpis.json", objectRelativePath("other", "catalog/kpis.json"))
}

func TestPullCatalogFiltersByExtension(t *testing.T) {
	dest := t.TempDir()
	store := &fakeStorage{objects: map[string][]byte{
		"catalog/kpis.json":  []byte(`[]`),
		"catalog/kpis.XLSX":  []byte("xlsx"),
		"catalog/readme.txt": []byte("ignored"),
	}}

	paths, err := pullCatalog(context.Background(), store, "catalog/", "", dest)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dest, "kpis.XLSX"),
		filepath.Join(dest, "kpis.json"),
	}, paths)

	data, err := os.ReadFile(filepath.Join(dest, "kpis.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestPullCatalogNothingFound(t *testing.T) {
	store := &fakeStorage{objects: map[string][]byte{"catalog/readme.txt": nil}}

	_, err := pullCatalog(context.Background(), store, "catalog/", "", t.TempDir())
	assert.Error(t, err)
}
