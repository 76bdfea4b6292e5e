// Package images bounds uploaded photos to a per-field box and
// re-encodes them so stored files stay small. Normalization is pure:
// bytes in, bytes out, no I/O.
package images

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Spec is the normalization contract for one image field: the bounding
// box the result must fit in, the encode quality, and whether a source
// with transparency is kept as PNG instead of being flattened to JPEG.
type Spec struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
	KeepAlpha bool
}

// Per-field specs. Only the village photo branches on transparency.
var (
	VillagePhoto = Spec{MaxWidth: 1200, MaxHeight: 800, Quality: 85, KeepAlpha: true}
	MemberPhoto  = Spec{MaxWidth: 400, MaxHeight: 500, Quality: 80}
	GalleryPhoto = Spec{MaxWidth: 1200, MaxHeight: 800, Quality: 85}
)

// Result carries the re-encoded bytes and what they were encoded as.
type Result struct {
	Data   []byte
	Format string // "jpeg" or "png"
	Width  int
	Height int
}

// Normalize decodes src, scales it down to fit the spec's bounding box
// (aspect ratio preserved, never upscaled) and re-encodes it. A source
// that already fits is still re-encoded at the spec's quality. Decode
// failure is fatal for the caller's write: the error must propagate,
// never be skipped.
func Normalize(src []byte, spec Spec) (*Result, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	fitted := imaging.Fit(img, spec.MaxWidth, spec.MaxHeight, imaging.Lanczos)

	format := "jpeg"
	if spec.KeepAlpha && hasAlpha(img) {
		format = "png"
	}

	buf := new(bytes.Buffer)
	if format == "png" {
		err = imaging.Encode(buf, fitted, imaging.PNG)
	} else {
		err = imaging.Encode(buf, fitted, imaging.JPEG, imaging.JPEGQuality(spec.Quality))
	}
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	b := fitted.Bounds()
	return &Result{
		Data:   buf.Bytes(),
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
