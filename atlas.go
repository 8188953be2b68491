package show2d

import (
	"fmt"
	"image"
	"log/slog"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// Character codes covered by every atlas: printable ASCII.
const (
	FirstGlyph rune = 32
	LastGlyph  rune = 127
)

// glyphGutter is the empty column left between neighbouring glyphs in the atlas.
const glyphGutter = 1

// Glyph holds the layout metrics of one character and its place in the atlas.
// Glyphs are packed in a single horizontal strip, so the atlas Y offset is always 0.
type Glyph struct {
	Size    image.Point     // Bitmap width and height in pixels
	Bearing image.Point     // Offset from pen origin to bitmap left/top, Y up
	Advance fixed.Point26_6 // Pen advance in 1/64 pixel
	OffsetX int             // X offset of the bitmap in the atlas
}

// Atlas is a single-channel texture strip holding every glyph of one font.
// An Atlas is immutable once built.
type Atlas struct {
	img    *image.Alpha
	glyphs map[rune]Glyph
}

// BuildAtlas rasterizes FirstGlyph..LastGlyph and packs them left to right.
// A glyph that fails to rasterize is logged and left out of the atlas.
// It returns ErrEmptyAtlas if no glyph could be rasterized.
func BuildAtlas(r Rasterizer, logger *slog.Logger) (*Atlas, error) {
	if logger == nil {
		logger = showLogger
	}

	bitmaps := make(map[rune]GlyphBitmap, LastGlyph-FirstGlyph+1)
	width, height := 0, 0
	for c := FirstGlyph; c <= LastGlyph; c++ {
		bm, err := r.Rasterize(c)
		if err != nil {
			logger.Warn("skipping glyph", "char", c, "error", err)
			continue
		}
		if len(bm.Pix) < bm.Width*bm.Height {
			logger.Warn("skipping glyph", "char", c,
				"error", fmt.Sprintf("bitmap has %d bytes, want %d", len(bm.Pix), bm.Width*bm.Height))
			continue
		}
		bitmaps[c] = bm
		width += bm.Width + glyphGutter
		height = max(height, bm.Height)
	}
	if len(bitmaps) == 0 {
		return nil, ErrEmptyAtlas
	}

	a := &Atlas{
		img:    image.NewAlpha(image.Rect(0, 0, width, height)),
		glyphs: make(map[rune]Glyph, len(bitmaps)),
	}

	offset := 0
	for c := FirstGlyph; c <= LastGlyph; c++ {
		bm, ok := bitmaps[c]
		if !ok {
			continue
		}
		if bm.Width > 0 && bm.Height > 0 {
			src := &image.Alpha{
				Pix:    bm.Pix,
				Stride: bm.Width,
				Rect:   image.Rect(0, 0, bm.Width, bm.Height),
			}
			dst := image.Rect(offset, 0, offset+bm.Width, bm.Height)
			xdraw.Draw(a.img, dst, src, image.Point{}, xdraw.Src)
		}
		a.glyphs[c] = Glyph{
			Size:    image.Pt(bm.Width, bm.Height),
			Bearing: image.Pt(bm.BearingX, bm.BearingY),
			Advance: bm.Advance,
			OffsetX: offset,
		}
		offset += bm.Width + glyphGutter
	}

	logger.Debug("built glyph atlas", "glyphs", len(a.glyphs), "width", width, "height", height)
	return a, nil
}

// Width returns the atlas width in pixels, gutters included.
func (a *Atlas) Width() int { return a.img.Rect.Dx() }

// Height returns the height of the tallest glyph.
func (a *Atlas) Height() int { return a.img.Rect.Dy() }

// Image returns the atlas pixels, top row first. Row stride equals Width.
func (a *Atlas) Image() *image.Alpha { return a.img }

// Glyph returns the metrics recorded for r.
func (a *Atlas) Glyph(r rune) (Glyph, bool) {
	g, ok := a.glyphs[r]
	return g, ok
}

// Len returns the number of glyphs in the atlas.
func (a *Atlas) Len() int { return len(a.glyphs) }
