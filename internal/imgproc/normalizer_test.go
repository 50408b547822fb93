package imgproc

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math/rand"
	"testing"
)

func encodeToJPEG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		t.Fatalf("encode fixture jpeg: %v", err)
	}
	return buf.Bytes()
}

func encodeToPNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode fixture png: %v", err)
	}
	return buf.Bytes()
}

// gradientImage produces a smooth opaque image that compresses well.
func gradientImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8((x + y) * 255 / (width + height)),
				A: 255,
			})
		}
	}
	return img
}

// noiseImage produces a deterministic incompressible image.
func noiseImage(width, height int, withAlpha bool) *image.NRGBA {
	rng := rand.New(rand.NewSource(1))
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if withAlpha {
				alpha = uint8(rng.Intn(256))
			}
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: alpha,
			})
		}
	}
	return img
}

// flatLogo produces a transparent canvas with an opaque square, the typical
// flat-graphic logo shape.
func flatLogo(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := size / 4; y < size*3/4; y++ {
		for x := size / 4; x < size*3/4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

// withExifOrientation splices a minimal APP1 Exif segment carrying the given
// orientation tag right after the JPEG SOI marker.
func withExifOrientation(t *testing.T, jpegData []byte, orientation uint16) []byte {
	t.Helper()
	if len(jpegData) < 2 || jpegData[0] != 0xFF || jpegData[1] != 0xD8 {
		t.Fatal("fixture is not a JPEG")
	}

	// TIFF body: little-endian header, one IFD0 entry (tag 0x0112, SHORT).
	tiff := []byte{
		'I', 'I', 0x2A, 0x00, // byte order + magic
		0x08, 0x00, 0x00, 0x00, // IFD0 offset
		0x01, 0x00, // entry count
		0x12, 0x01, // tag: Orientation
		0x03, 0x00, // type: SHORT
		0x01, 0x00, 0x00, 0x00, // count
		byte(orientation), byte(orientation >> 8), 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, // next IFD offset
	}

	payload := append([]byte("Exif\x00\x00"), tiff...)
	segLen := len(payload) + 2
	segment := append([]byte{0xFF, 0xE1, byte(segLen >> 8), byte(segLen)}, payload...)

	out := make([]byte, 0, len(jpegData)+len(segment))
	out = append(out, jpegData[:2]...)
	out = append(out, segment...)
	out = append(out, jpegData[2:]...)
	return out
}

func TestNormalizeAppliesExifOrientation(t *testing.T) {
	// Orientation 6 means the camera was rotated 90 degrees, so a stored
	// landscape frame must come out portrait.
	input := withExifOrientation(t, encodeToJPEG(t, gradientImage(2400, 1200)), 6)

	out, err := Normalize(input, KindServicePhoto, FormatAuto)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.Width != 960 || out.Height != 1920 {
		t.Errorf("dimensions = %dx%d, want 960x1920 (rotated then bounded)", out.Width, out.Height)
	}
}

func TestNormalizeServicePhotoBoundsAndQuality(t *testing.T) {
	input := encodeToJPEG(t, gradientImage(4000, 3000))

	out, err := Normalize(input, KindServicePhoto, FormatAuto)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	policy := PolicyFor(KindServicePhoto)
	if out.Width > policy.MaxWidth || out.Height > policy.MaxHeight {
		t.Errorf("dimensions %dx%d exceed policy bounds %dx%d", out.Width, out.Height, policy.MaxWidth, policy.MaxHeight)
	}
	if out.Width != 1920 || out.Height != 1440 {
		t.Errorf("dimensions = %dx%d, want 1920x1440 (aspect preserved)", out.Width, out.Height)
	}
	if out.MIMEType != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg", out.MIMEType)
	}
	if !out.CeilingSatisfied {
		t.Fatal("smooth gradient must fit the byte ceiling")
	}
	if out.ByteSize > policy.MaxBytes {
		t.Errorf("size %d exceeds ceiling %d", out.ByteSize, policy.MaxBytes)
	}
	// A gradient fits easily at quality 90, so the desired-bytes probes
	// should have raised quality instead of leaving budget unused.
	if out.Quality < 90 {
		t.Errorf("quality = %d, want >= 90 for an easily compressed photo", out.Quality)
	}
}

func TestNormalizeNeverUpscales(t *testing.T) {
	input := encodeToJPEG(t, gradientImage(320, 200))

	out, err := Normalize(input, KindServicePhoto, FormatAuto)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.Width != 320 || out.Height != 200 {
		t.Errorf("dimensions = %dx%d, want unchanged 320x200", out.Width, out.Height)
	}
}

func TestNormalizeLogoWithAlphaStaysPNG(t *testing.T) {
	input := encodeToPNG(t, flatLogo(600))

	out, err := Normalize(input, KindLogo, FormatAuto)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.MIMEType != "image/png" {
		t.Errorf("mime = %q, want image/png for transparent logo", out.MIMEType)
	}
	if out.Width > 512 || out.Height > 512 {
		t.Errorf("dimensions %dx%d exceed logo bounds", out.Width, out.Height)
	}
	if !out.CeilingSatisfied {
		t.Errorf("flat logo PNG (%d bytes) should fit the %d ceiling", out.ByteSize, PolicyFor(KindLogo).MaxBytes)
	}
	if out.Quality != 0 {
		t.Errorf("quality = %d, want 0 for lossless output", out.Quality)
	}
}

func TestNormalizeOpaqueLogoChoosesJPEG(t *testing.T) {
	input := encodeToPNG(t, gradientImage(400, 400))

	out, err := Normalize(input, KindLogo, FormatAuto)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.MIMEType != "image/jpeg" {
		t.Errorf("mime = %q, want image/jpeg for opaque logo", out.MIMEType)
	}
}

func TestNormalizeOversizedAlphaLogoKeepsPNG(t *testing.T) {
	// Incompressible noise with alpha cannot fit 50 KB as PNG, and JPEG
	// would drop the transparency, so the oversized PNG is kept.
	input := encodeToPNG(t, noiseImage(512, 512, true))

	out, err := Normalize(input, KindLogo, FormatAuto)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.MIMEType != "image/png" {
		t.Errorf("mime = %q, want image/png", out.MIMEType)
	}
	if out.CeilingSatisfied {
		t.Error("noise PNG cannot satisfy the logo ceiling")
	}
}

func TestNormalizePNGOverrideIsHonored(t *testing.T) {
	input := encodeToJPEG(t, gradientImage(300, 300))

	out, err := Normalize(input, KindServicePhoto, FormatPNG)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if out.MIMEType != "image/png" {
		t.Errorf("mime = %q, want image/png under override", out.MIMEType)
	}
}

func TestNormalizeFailsOpenOnIrreducibleInput(t *testing.T) {
	input := encodeToJPEG(t, noiseImage(1920, 1440, false))

	out, err := Normalize(input, KindServicePhoto, FormatAuto)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	policy := PolicyFor(KindServicePhoto)
	if out.CeilingSatisfied {
		if out.ByteSize > policy.MaxBytes {
			t.Errorf("CeilingSatisfied=true but size %d exceeds %d", out.ByteSize, policy.MaxBytes)
		}
	} else {
		if out.Quality != searchMinQuality {
			t.Errorf("fail-open quality = %d, want %d", out.Quality, searchMinQuality)
		}
		if out.ByteSize <= policy.MaxBytes {
			t.Errorf("CeilingSatisfied=false but size %d is under the ceiling", out.ByteSize)
		}
	}
}

func TestNormalizeRejectsUndecodableInput(t *testing.T) {
	_, err := Normalize([]byte("definitely not an image"), KindServicePhoto, FormatAuto)
	if !errors.Is(err, ErrInvalidImage) {
		t.Fatalf("err = %v, want ErrInvalidImage", err)
	}
}

func TestPackPaletteRoundTripsFlatGraphics(t *testing.T) {
	src := flatLogo(64)
	packed := packPalette(src)
	if packed == nil {
		t.Fatal("two-color image must be packable")
	}
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			want := color.NRGBAModel.Convert(src.At(x, y))
			got := color.NRGBAModel.Convert(packed.At(x, y))
			if want != got {
				t.Fatalf("pixel (%d,%d) changed: %v -> %v", x, y, want, got)
			}
		}
	}
}

func TestPackPaletteRejectsColorfulImages(t *testing.T) {
	if packPalette(noiseImage(64, 64, false)) != nil {
		t.Error("noise has far more than 256 colors and must not be packed")
	}
}
