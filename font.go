package show2d

import (
	"fmt"
	"image"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// DefaultFontSize is the pixel size glyphs are rasterized at.
// A scale of 1.0 in DrawText draws glyphs at this size.
const DefaultFontSize = 40

// GlyphBitmap is one rasterized glyph as produced by a Rasterizer.
type GlyphBitmap struct {
	Width, Height int
	// Pix holds Width*Height 8-bit coverage values, top row first.
	Pix []byte
	// BearingX, BearingY are the offsets from the pen origin to the
	// bitmap's left edge and top edge, in pixels (Y up).
	BearingX, BearingY int
	// Advance is the pen advance in 26.6 fixed point (1/64 pixel).
	Advance fixed.Point26_6
}

// Rasterizer turns character codes into glyph bitmaps.
// It is the font-rendering collaborator the atlas is built from.
type Rasterizer interface {
	Rasterize(r rune) (GlyphBitmap, error)
}

// FontLoader opens a font file at a pixel size and returns a rasterizer for it.
// The returned func releases any resources held by the rasterizer.
type FontLoader func(path string, pixelSize int) (Rasterizer, func() error, error)

// FaceRasterizer rasterizes glyphs from any font.Face.
type FaceRasterizer struct {
	face font.Face
}

// NewFaceRasterizer wraps face. The caller keeps ownership of face.
func NewFaceRasterizer(face font.Face) *FaceRasterizer {
	return &FaceRasterizer{face: face}
}

// Rasterize renders r with the pen at the origin.
// The returned bitmap does not alias the face's internal buffers.
func (f *FaceRasterizer) Rasterize(r rune) (GlyphBitmap, error) {
	dr, mask, maskp, advance, ok := f.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return GlyphBitmap{}, fmt.Errorf("rasterize %q: no glyph in face", r)
	}

	bm := GlyphBitmap{
		Width:    dr.Dx(),
		Height:   dr.Dy(),
		BearingX: dr.Min.X,
		BearingY: -dr.Min.Y,
		Advance:  fixed.Point26_6{X: advance},
	}
	if dr.Empty() || mask == nil {
		bm.Width, bm.Height = 0, 0
		return bm, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, bm.Width, bm.Height))
	xdraw.Draw(dst, dst.Bounds(), mask, maskp, xdraw.Src)
	bm.Pix = dst.Pix
	return bm, nil
}

// ParseFont parses OpenType or TrueType data and returns a face sized so
// that one em is pixelSize pixels.
func ParseFont(data []byte, pixelSize int) (font.Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// LoadFont reads the font file at path. It is the default FontLoader.
func LoadFont(path string, pixelSize int) (Rasterizer, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load font: %w", err)
	}
	face, err := ParseFont(data, pixelSize)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewFaceRasterizer(face), face.Close, nil
}
