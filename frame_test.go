package show2d_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/show2d"
)

func TestFrameFromGray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 3))
	img.Pix = []byte{
		1, 2,
		3, 4,
		5, 6,
	}

	pix, w, h, channels := show2d.FrameFromImage(img)
	if w != 2 || h != 3 || channels != 1 {
		t.Fatalf("expected 2x3x1, got %dx%dx%d", w, h, channels)
	}
	want := []byte{5, 6, 3, 4, 1, 2}
	if diff := cmp.Diff(want, pix); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameFromOpaqueRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{10, 20, 30, 255})
	img.Set(1, 0, color.RGBA{40, 50, 60, 255})
	img.Set(0, 1, color.RGBA{70, 80, 90, 255})
	img.Set(1, 1, color.RGBA{100, 110, 120, 255})

	pix, w, h, channels := show2d.FrameFromImage(img)
	if w != 2 || h != 2 || channels != 3 {
		t.Fatalf("expected 2x2x3, got %dx%dx%d", w, h, channels)
	}
	want := []byte{
		70, 80, 90, 100, 110, 120,
		10, 20, 30, 40, 50, 60,
	}
	if diff := cmp.Diff(want, pix); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameFromTranslucent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 5, 6, 7))
	img.SetNRGBA(5, 5, color.NRGBA{1, 2, 3, 128})
	img.SetNRGBA(5, 6, color.NRGBA{4, 5, 6, 255})

	pix, w, h, channels := show2d.FrameFromImage(img)
	if w != 1 || h != 2 || channels != 4 {
		t.Fatalf("expected 1x2x4, got %dx%dx%d", w, h, channels)
	}
	want := []byte{4, 5, 6, 255, 1, 2, 3, 128}
	if diff := cmp.Diff(want, pix); diff != "" {
		t.Errorf("pixels mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameFromEmpty(t *testing.T) {
	pix, w, h, channels := show2d.FrameFromImage(image.NewRGBA(image.Rectangle{}))
	if pix != nil || w != 0 || h != 0 || channels != 0 {
		t.Errorf("expected empty frame, got %d bytes %dx%dx%d", len(pix), w, h, channels)
	}
}

func TestPixelFormatForChannels(t *testing.T) {
	tests := []struct {
		channels int
		want     show2d.PixelFormat
		wantErr  bool
	}{
		{1, show2d.FormatRed, false},
		{3, show2d.FormatRGB, false},
		{4, show2d.FormatRGBA, false},
		{0, show2d.FormatInvalid, true},
		{2, show2d.FormatInvalid, true},
		{5, show2d.FormatInvalid, true},
	}

	for _, tt := range tests {
		got, err := show2d.PixelFormatForChannels(tt.channels)
		if (err != nil) != tt.wantErr {
			t.Errorf("channels=%d: unexpected error %v", tt.channels, err)
		}
		if got != tt.want {
			t.Errorf("channels=%d: expected %v, got %v", tt.channels, tt.want, got)
		}
		if !tt.wantErr && got.Channels() != tt.channels {
			t.Errorf("channels=%d: round trip gave %d", tt.channels, got.Channels())
		}
	}
}
