// Package upload implements the image upload gate: MIME allowlisting, a
// hard size cap, and collision-resistant on-disk naming. Accepted files are
// stored in a fixed directory served under /uploads.
package upload

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gameverse/content-api/internal/api/metrics"
	"github.com/gameverse/content-api/internal/core/domain"
)

// FieldName is the multipart field articles send their cover image under.
const FieldName = "newsImage"

// DefaultMaxSize caps uploads at 5 MiB.
const DefaultMaxSize = 5 << 20

// PublicPrefix is the URL prefix the stored files are served from.
const PublicPrefix = "/uploads"

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// Saver validates and persists uploaded images.
type Saver struct {
	dir     string
	maxSize int64
}

func NewSaver(dir string, maxSize int64) *Saver {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Saver{dir: dir, maxSize: maxSize}
}

// Save validates fh and writes it to the upload directory, returning the
// servable relative path. Rejections are domain.ErrInvalidFileType or
// domain.ErrFileTooLarge; both occur before anything touches disk except a
// partially written file, which is removed.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxSize {
		metrics.UploadsRejectedTotal.WithLabelValues("too_large").Inc()
		return "", domain.ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	// The declared Content-Type is checked against the allowlist, then
	// cross-checked against the sniffed type so a mislabelled payload
	// cannot slip through.
	declared := fh.Header.Get("Content-Type")
	if _, ok := allowedTypes[declared]; !ok {
		metrics.UploadsRejectedTotal.WithLabelValues("invalid_type").Inc()
		return "", domain.ErrInvalidFileType
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]
	if _, ok := allowedTypes[http.DetectContentType(head)]; !ok {
		metrics.UploadsRejectedTotal.WithLabelValues("invalid_type").Inc()
		return "", domain.ErrInvalidFileType
	}

	name := uniqueName(fh.Filename)
	dstPath := filepath.Join(s.dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	// Copy with a cap one byte past the limit so an understated fh.Size
	// still gets caught.
	written, err := io.Copy(dst, io.MultiReader(
		bytes.NewReader(head),
		io.LimitReader(src, s.maxSize+1-int64(len(head))),
	))
	if err != nil {
		_ = os.Remove(dstPath)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if written > s.maxSize {
		_ = os.Remove(dstPath)
		metrics.UploadsRejectedTotal.WithLabelValues("too_large").Inc()
		return "", domain.ErrFileTooLarge
	}

	return PublicPrefix + "/" + name, nil
}

// uniqueName keeps the original extension and derives a collision-resistant
// name from the current time plus a random component.
func uniqueName(original string) string {
	suffix := make([]byte, 4)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s-%d-%s%s", FieldName, time.Now().UnixNano(), hex.EncodeToString(suffix), filepath.Ext(original))
}
