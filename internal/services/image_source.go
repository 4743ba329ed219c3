package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"invoicepress/internal/render"
)

// defaultImageLoadTimeout bounds each image fetch so a slow or stuck
// load cannot stall unrelated document generations.
const defaultImageLoadTimeout = 10 * time.Second

type objectImageSource struct {
	storage StorageService
	bucket  string
	timeout time.Duration
}

// NewObjectImageSource serves logo and photo references out of an
// object-storage bucket.
func NewObjectImageSource(storage StorageService, bucket string) render.ImageSource {
	return &objectImageSource{
		storage: storage,
		bucket:  bucket,
		timeout: defaultImageLoadTimeout,
	}
}

func (s *objectImageSource) Load(ref string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	return s.storage.DownloadObject(ctx, s.bucket, ref)
}

type dirImageSource struct {
	root string
}

// NewDirImageSource serves image references from a local directory,
// useful for development and tests. References may not escape the root.
func NewDirImageSource(root string) render.ImageSource {
	return &dirImageSource{root: root}
}

func (s *dirImageSource) Load(ref string) ([]byte, error) {
	clean := filepath.Clean(ref)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("image reference %q escapes the image root", ref)
	}
	return os.ReadFile(filepath.Join(s.root, clean))
}
