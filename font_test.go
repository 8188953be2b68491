package show2d_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/show2d"
)

func writeFont(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	return path
}

func TestFaceRasterizer(t *testing.T) {
	face, err := show2d.ParseFont(goregular.TTF, show2d.DefaultFontSize)
	if err != nil {
		t.Fatalf("ParseFont() returned error: %v", err)
	}
	defer face.Close()
	r := show2d.NewFaceRasterizer(face)

	a, err := r.Rasterize('A')
	if err != nil {
		t.Fatalf("Rasterize('A') returned error: %v", err)
	}
	if a.Width <= 0 || a.Height <= 0 || len(a.Pix) != a.Width*a.Height {
		t.Errorf("unexpected bitmap %dx%d with %d bytes", a.Width, a.Height, len(a.Pix))
	}
	if a.BearingY <= 0 || a.BearingY > show2d.DefaultFontSize {
		t.Errorf("expected 'A' to sit above the baseline, bearing top %d", a.BearingY)
	}
	if a.Advance.X <= 0 || a.Advance.Y != 0 {
		t.Errorf("unexpected advance %v", a.Advance)
	}
	if bytes.Count(a.Pix, []byte{0}) == len(a.Pix) {
		t.Error("expected some coverage in 'A'")
	}

	// The bitmap must not alias the face's scratch buffer.
	saved := append([]byte(nil), a.Pix...)
	if _, err := r.Rasterize('W'); err != nil {
		t.Fatalf("Rasterize('W') returned error: %v", err)
	}
	if !bytes.Equal(saved, a.Pix) {
		t.Error("rasterizing another glyph changed the first bitmap")
	}

	space, err := r.Rasterize(' ')
	if err != nil {
		t.Fatalf("Rasterize(' ') returned error: %v", err)
	}
	if len(space.Pix) != space.Width*space.Height {
		t.Errorf("space bitmap %dx%d has %d bytes", space.Width, space.Height, len(space.Pix))
	}
	if space.Advance.X <= 0 {
		t.Error("space should still advance the pen")
	}
}

func TestLoadFont(t *testing.T) {
	path := writeFont(t, "goregular.ttf", goregular.TTF)

	r, release, err := show2d.LoadFont(path, 20)
	if err != nil {
		t.Fatalf("LoadFont() returned error: %v", err)
	}
	defer release()

	if _, err := r.Rasterize('g'); err != nil {
		t.Errorf("Rasterize('g') returned error: %v", err)
	}
}

func TestLoadFontErrors(t *testing.T) {
	if _, _, err := show2d.LoadFont(filepath.Join(t.TempDir(), "missing.ttf"), 40); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeFont(t, "garbage.ttf", []byte("not a font"))
	if _, _, err := show2d.LoadFont(path, 40); err == nil {
		t.Error("expected error for invalid font data")
	}
}

func TestDisplayWithRealFonts(t *testing.T) {
	regular := writeFont(t, "goregular.ttf", goregular.TTF)
	mono := writeFont(t, "gomono.ttf", gomono.TTF)

	b := newMockBackend()
	d, err := show2d.New(b, show2d.WithFont(regular))
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	first := d.Atlas()
	checkOffsets(t, first)

	if err := d.EnableOrReInitTextRenderer(mono); err != nil {
		t.Fatalf("EnableOrReInitTextRenderer() returned error: %v", err)
	}
	second := d.Atlas()
	checkOffsets(t, second)

	if first == second {
		t.Fatal("expected a new atlas")
	}
	if first.Width() == second.Width() {
		t.Errorf("expected atlas width to change between fonts, both %d", first.Width())
	}

	// Monospace advances are all equal.
	gi, _ := second.Glyph('i')
	gm, _ := second.Glyph('m')
	if gi.Advance != gm.Advance {
		t.Errorf("expected equal mono advances, got %v and %v", gi.Advance, gm.Advance)
	}

	d.DrawText("FPS: 60", 10, 540, 1, show2d.ColorWhite)
	if err := d.Draw(make([]byte, 3), 1, 1, 3); err != nil {
		t.Fatalf("Draw() returned error: %v", err)
	}
	if len(b.texts) != 1 || len(b.texts[0].vertices) != 6*len("FPS: 60") {
		t.Errorf("expected one string of %d vertices", 6*len("FPS: 60"))
	}
}
