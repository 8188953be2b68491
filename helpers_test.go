package show2d_test

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/show2d"
)

// fakeRasterizer produces synthetic glyphs whose metrics depend on the rune,
// so neighbouring glyphs have different widths.
type fakeRasterizer struct {
	fail map[rune]bool
	only func(r rune) bool
}

func (f fakeRasterizer) Rasterize(r rune) (show2d.GlyphBitmap, error) {
	if f.fail[r] || (f.only != nil && !f.only(r)) {
		return show2d.GlyphBitmap{}, fmt.Errorf("no glyph for %q", r)
	}
	return fakeGlyph(r), nil
}

func fakeGlyph(r rune) show2d.GlyphBitmap {
	w := int(r%7) + 1
	h := int(r%5) + 3
	pix := make([]byte, w*h)
	for i := range pix {
		pix[i] = byte(r)
	}
	return show2d.GlyphBitmap{
		Width:    w,
		Height:   h,
		Pix:      pix,
		BearingX: 1,
		BearingY: h - 1,
		Advance:  fixed.Point26_6{X: fixed.I(w + 2)},
	}
}

// fakeFonts serves rasterizers by path and counts releases.
type fakeFonts struct {
	fonts    map[string]show2d.Rasterizer
	released int
}

func (f *fakeFonts) load(path string, pixelSize int) (show2d.Rasterizer, func() error, error) {
	r, ok := f.fonts[path]
	if !ok {
		return nil, nil, fmt.Errorf("failed to load font: %s", path)
	}
	return r, func() error { f.released++; return nil }, nil
}

// mockBackend records every call made by a Display.
type mockBackend struct {
	width, height int
	closed        bool
	imageErr      error
	textErr       error

	calls       []string
	formats     []show2d.PixelFormat
	atlases     []*image.Alpha
	projections []mgl32.Mat4
	texts       []drawnText
}

type drawnText struct {
	vertices []show2d.TextVertex
	color    show2d.Color
}

func newMockBackend() *mockBackend {
	return &mockBackend{width: 800, height: 600}
}

func (m *mockBackend) Size() (int, int) { return m.width, m.height }
func (m *mockBackend) ShouldClose() bool { return m.closed }
func (m *mockBackend) Present() { m.calls = append(m.calls, "Present") }
func (m *mockBackend) Terminate() { m.calls = append(m.calls, "Terminate") }

func (m *mockBackend) CreateImagePipeline() error {
	m.calls = append(m.calls, "CreateImagePipeline")
	return m.imageErr
}

func (m *mockBackend) UploadImage(pix []byte, width, height int, format show2d.PixelFormat) error {
	m.calls = append(m.calls, "UploadImage")
	m.formats = append(m.formats, format)
	return nil
}

func (m *mockBackend) DrawImage() { m.calls = append(m.calls, "DrawImage") }
func (m *mockBackend) DeleteImagePipeline() { m.calls = append(m.calls, "DeleteImagePipeline") }

func (m *mockBackend) CreateTextPipeline() error {
	m.calls = append(m.calls, "CreateTextPipeline")
	return m.textErr
}

func (m *mockBackend) UploadAtlas(img *image.Alpha) error {
	m.calls = append(m.calls, "UploadAtlas")
	m.atlases = append(m.atlases, img)
	return nil
}

func (m *mockBackend) SetProjection(p mgl32.Mat4) {
	m.calls = append(m.calls, "SetProjection")
	m.projections = append(m.projections, p)
}

func (m *mockBackend) DrawText(vertices []show2d.TextVertex, color show2d.Color) {
	m.calls = append(m.calls, "DrawText")
	m.texts = append(m.texts, drawnText{vertices: vertices, color: color})
}

func (m *mockBackend) DeleteTextPipeline() { m.calls = append(m.calls, "DeleteTextPipeline") }

func (m *mockBackend) count(name string) int {
	n := 0
	for _, c := range m.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (m *mockBackend) index(name string) int {
	for i, c := range m.calls {
		if c == name {
			return i
		}
	}
	return -1
}

var errBoom = errors.New("boom")
