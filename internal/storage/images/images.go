// Package images stores uploaded job and portfolio pictures on S3 or the local disk.
package images

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"io"

	"marketplace-bff/config"
	"marketplace-bff/internal/storage"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

// ErrNotAnImage is returned when an upload cannot be decoded.
var ErrNotAnImage = errors.New("upload is not a supported image")

// NewStore builds the configured backend.
func NewStore(cfg config.ImagesConfig) (storage.ImageStore, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStore(cfg.LocalPath, cfg.BaseURL)
	case "s3":
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown image storage backend: %s", cfg.Backend)
	}
}

// Normalize decodes an upload, downscales it to maxWidth (keeping the aspect ratio)
// and re-encodes it as JPEG.
func Normalize(r io.Reader, maxWidth uint) (*bytes.Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAnImage, err)
	}
	if maxWidth > 0 && uint(img.Bounds().Dx()) > maxWidth {
		img = resize.Resize(maxWidth, 0, img, resize.Lanczos3)
	}
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf, nil
}

// ObjectName generates a unique, sharded object name for an upload.
func ObjectName(prefix string) string {
	id := uuid.New().String()
	return fmt.Sprintf("%s/%s/%s.jpg", prefix, id[:2], id)
}
