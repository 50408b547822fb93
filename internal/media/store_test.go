package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eventour-app/event-backend/internal/imgproc"
)

func TestStoreSaveWritesFileAndDerivesURL(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, "https://media.eventour.app/")

	img := imgproc.EncodedImage{
		Bytes:    []byte("fake-jpeg-bytes"),
		ByteSize: 15,
		MIMEType: "image/jpeg",
		Width:    100,
		Height:   80,
	}

	asset, err := store.Save(img, imgproc.KindServicePhoto)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if asset.ID == "" {
		t.Error("asset ID must be set")
	}
	if !strings.HasPrefix(asset.StoredPath, "servicePhoto/") {
		t.Errorf("stored path %q not under kind directory", asset.StoredPath)
	}
	if !strings.HasSuffix(asset.StoredPath, ".jpg") {
		t.Errorf("stored path %q missing jpg extension", asset.StoredPath)
	}
	if asset.PublicURL != "https://media.eventour.app/"+asset.StoredPath {
		t.Errorf("public URL = %q", asset.PublicURL)
	}
	if asset.Width != 100 || asset.Height != 80 || asset.ByteSize != 15 {
		t.Errorf("metadata not carried over: %+v", asset)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(asset.StoredPath)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "fake-jpeg-bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestStoreSavePNGExtension(t *testing.T) {
	store := NewStore(t.TempDir(), "http://localhost:8080/media")

	asset, err := store.Save(imgproc.EncodedImage{Bytes: []byte{1}, ByteSize: 1, MIMEType: "image/png"}, imgproc.KindLogo)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(asset.StoredPath, ".png") {
		t.Errorf("stored path %q missing png extension", asset.StoredPath)
	}
	if !strings.HasPrefix(asset.PublicURL, "http://localhost:8080/media/logo/") {
		t.Errorf("public URL = %q", asset.PublicURL)
	}
}
