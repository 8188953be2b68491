package show2d

import "fmt"

// verticesPerGlyph is two triangles per character quad.
const verticesPerGlyph = 6

// LayoutText lays text out on a baseline starting at pen position (x, y),
// in window pixels with the origin at the bottom-left.
// It returns six vertices per character and the pen x after the last glyph.
// A character without a glyph in the atlas fails the whole string.
func LayoutText(a *Atlas, text string, x, y, scale float32) ([]TextVertex, float32, error) {
	if a == nil {
		return nil, x, ErrTextDisabled
	}

	aw := float32(max(a.Width(), 1))
	ah := float32(max(a.Height(), 1))

	vertices := make([]TextVertex, 0, len(text)*verticesPerGlyph)
	penX := x
	for i, r := range text {
		g, ok := a.Glyph(r)
		if !ok {
			return nil, x, fmt.Errorf("%w: %q at byte %d", ErrGlyphNotFound, r, i)
		}

		xpos := penX + float32(g.Bearing.X)*scale
		ypos := y - float32(g.Size.Y-g.Bearing.Y)*scale
		w := float32(g.Size.X) * scale
		h := float32(g.Size.Y) * scale

		u0 := float32(g.OffsetX) / aw
		u1 := float32(g.OffsetX+g.Size.X) / aw
		vb := float32(g.Size.Y) / ah

		vertices = append(vertices,
			TextVertex{Pos: [2]float32{xpos, ypos + h}, TexCoord: [2]float32{u0, 0}},
			TextVertex{Pos: [2]float32{xpos, ypos}, TexCoord: [2]float32{u0, vb}},
			TextVertex{Pos: [2]float32{xpos + w, ypos}, TexCoord: [2]float32{u1, vb}},
			TextVertex{Pos: [2]float32{xpos, ypos + h}, TexCoord: [2]float32{u0, 0}},
			TextVertex{Pos: [2]float32{xpos + w, ypos}, TexCoord: [2]float32{u1, vb}},
			TextVertex{Pos: [2]float32{xpos + w, ypos + h}, TexCoord: [2]float32{u1, 0}},
		)

		// Advance is 26.6 fixed point; whole pixels only.
		penX += float32(g.Advance.X>>6) * scale
	}

	return vertices, penX, nil
}

// MeasureText returns the pen advance of text and the atlas line height, both scaled.
func (a *Atlas) MeasureText(text string, scale float32) (width, height float32, err error) {
	_, penX, err := LayoutText(a, text, 0, 0, scale)
	if err != nil {
		return 0, 0, err
	}
	return penX, float32(a.Height()) * scale, nil
}
