// Package media persists normalized images on local disk and derives the
// public URLs stored alongside vendor and listing documents.
package media

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventour-app/event-backend/internal/imgproc"
)

// Asset describes one stored image. The metadata is embedded verbatim into
// the documents that reference the image.
type Asset struct {
	ID          string
	StoredPath  string
	PublicURL   string
	ContentType string
	ByteSize    int
	Width       int
	Height      int
	UploadedAt  time.Time
}

// Store writes encoded images under a base directory, one subdirectory per
// image kind.
type Store struct {
	dir     string
	baseURL string
}

// NewStore returns a Store rooted at dir. baseURL is prepended to stored
// paths when deriving public URLs; trailing slashes are ignored.
func NewStore(dir, baseURL string) *Store {
	return &Store{dir: dir, baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

// Save persists the encoded image and returns its asset metadata. File names
// are random UUIDs so uploads can never collide or be guessed.
func (s *Store) Save(img imgproc.EncodedImage, kind imgproc.Kind) (Asset, error) {
	id := uuid.NewString()
	relPath := path.Join(kind.String(), id+"."+extensionFor(img.MIMEType))

	absPath := filepath.Join(s.dir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return Asset{}, fmt.Errorf("create media directory: %w", err)
	}
	if err := os.WriteFile(absPath, img.Bytes, 0o644); err != nil {
		return Asset{}, fmt.Errorf("write media file: %w", err)
	}

	return Asset{
		ID:          id,
		StoredPath:  relPath,
		PublicURL:   s.baseURL + "/" + relPath,
		ContentType: img.MIMEType,
		ByteSize:    img.ByteSize,
		Width:       img.Width,
		Height:      img.Height,
		UploadedAt:  time.Now().UTC(),
	}, nil
}

func extensionFor(mimeType string) string {
	if mimeType == "image/png" {
		return "png"
	}
	return "jpg"
}
