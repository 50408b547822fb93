// Package imgproc normalizes uploaded images against per-kind size policies:
// it bounds pixel dimensions, picks an output encoding, and binary-searches
// the lossy quality setting so the result fits the policy's byte ceiling.
package imgproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP decode support
)

// ErrInvalidImage marks input that could not be decoded as a raster image.
// It is the only hard failure Normalize produces; size/quality tension is
// always resolved by best-effort degradation.
var ErrInvalidImage = errors.New("invalid image input")

// EncodedImage is the immutable result of a Normalize call. The caller owns
// the bytes and is responsible for persisting or discarding them.
type EncodedImage struct {
	Bytes    []byte
	ByteSize int
	MIMEType string
	Width    int
	Height   int
	// Quality is the winning lossy quality setting, zero for PNG output.
	Quality int
	// CeilingSatisfied reports whether ByteSize honors the policy ceiling.
	// False means the image was irreducibly large and the smallest
	// achievable encoding was returned instead.
	CeilingSatisfied bool
}

// Normalize decodes input, applies the policy for kind and returns the
// re-encoded image. EXIF orientation is folded into the pixel data before
// measuring, images are scaled down (never up) to fit the policy's pixel
// bounds, and lossy output is quality-searched against the byte ceiling.
// A zero override (FormatAuto) enables automatic format selection: logos
// with alpha become PNG, everything else JPEG.
func Normalize(input []byte, kind Kind, override Format) (EncodedImage, error) {
	src, err := imaging.Decode(bytes.NewReader(input), imaging.AutoOrientation(true))
	if err != nil {
		return EncodedImage{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	policy := PolicyFor(kind)
	resized := fitWithin(src, policy.MaxWidth, policy.MaxHeight)

	format := override
	if format == FormatAuto {
		format = chooseFormat(kind, src)
	}

	if format == FormatPNG {
		encoded, err := encodePNG(resized)
		if err != nil {
			return EncodedImage{}, err
		}
		fits := len(encoded) <= policy.MaxBytes
		// An opaque image that busts the ceiling as PNG was auto-selected
		// wrongly; re-route it through the JPEG path. A forced override or
		// an alpha channel keeps the PNG even when oversized.
		if fits || override == FormatPNG || hasAlpha(resized) {
			return measure(encoded, FormatPNG, 0, fits)
		}
	}

	result, err := findBestQuality(func(quality int) ([]byte, error) {
		return encodeJPEG(resized, quality)
	}, policy.MaxBytes, policy.DesiredBytes)
	if err != nil {
		return EncodedImage{}, err
	}
	return measure(result.data, FormatJPEG, result.quality, result.fits)
}

// measure re-reads dimensions from the encoded bytes rather than trusting
// the resize step, guarding against encoder-introduced changes.
func measure(data []byte, format Format, quality int, fits bool) (EncodedImage, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return EncodedImage{}, fmt.Errorf("measure encoded output: %w", err)
	}
	return EncodedImage{
		Bytes:            data,
		ByteSize:         len(data),
		MIMEType:         format.MIMEType(),
		Width:            cfg.Width,
		Height:           cfg.Height,
		Quality:          quality,
		CeilingSatisfied: fits,
	}, nil
}

func fitWithin(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return img
	}
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}

func chooseFormat(kind Kind, src image.Image) Format {
	if kind == KindLogo && hasAlpha(src) {
		return FormatPNG
	}
	return FormatJPEG
}

func hasAlpha(img image.Image) bool {
	type opaquer interface{ Opaque() bool }
	if o, ok := img.(opaquer); ok {
		return !o.Opaque()
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, alpha := img.At(x, y).RGBA(); alpha < 0xffff {
				return true
			}
		}
	}
	return false
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodePNG(img image.Image) ([]byte, error) {
	if packed := packPalette(img); packed != nil {
		img = packed
	}
	var buf bytes.Buffer
	encoder := png.Encoder{CompressionLevel: png.BestCompression}
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const maxPaletteColors = 256

// packPalette losslessly converts images with at most 256 distinct colors to
// paletted form, which shrinks flat graphics considerably. It returns nil
// when the image is too colorful to pack without loss.
func packPalette(img image.Image) *image.Paletted {
	bounds := img.Bounds()
	seen := make(map[color.NRGBA]uint8, maxPaletteColors)
	palette := make(color.Palette, 0, maxPaletteColors)
	packed := image.NewPaletted(bounds, nil)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			index, ok := seen[c]
			if !ok {
				if len(palette) == maxPaletteColors {
					return nil
				}
				palette = append(palette, c)
				index = uint8(len(palette) - 1)
				seen[c] = index
			}
			packed.SetColorIndex(x, y, index)
		}
	}

	packed.Palette = palette
	return packed
}
