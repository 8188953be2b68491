package show2d

import (
	"fmt"
)

// Color is a linear RGB text color with components in [0,1].
// Alpha is always 1.
type Color struct {
	R, G, B float32
}

// Common colors.
var (
	ColorWhite  = Color{1, 1, 1}
	ColorBlack  = Color{0, 0, 0}
	ColorRed    = Color{1, 0, 0}
	ColorGreen  = Color{0, 1, 0}
	ColorBlue   = Color{0, 0, 1}
	ColorYellow = Color{1, 1, 0}
)

// PixelFormat is the layout of one pixel in an image buffer handed to Draw.
type PixelFormat int

const (
	// FormatInvalid is the zero value and never reaches a backend.
	FormatInvalid PixelFormat = iota
	// FormatRed is one 8-bit channel per pixel.
	FormatRed
	// FormatRGB is three 8-bit channels per pixel.
	FormatRGB
	// FormatRGBA is four 8-bit channels per pixel.
	FormatRGBA
)

// PixelFormatForChannels maps a channel count to its pixel format.
func PixelFormatForChannels(channels int) (PixelFormat, error) {
	switch channels {
	case 1:
		return FormatRed, nil
	case 3:
		return FormatRGB, nil
	case 4:
		return FormatRGBA, nil
	default:
		return FormatInvalid, fmt.Errorf("%w: %d", ErrUnsupportedChannels, channels)
	}
}

// Channels returns the number of bytes per pixel.
func (f PixelFormat) Channels() int {
	switch f {
	case FormatRed:
		return 1
	case FormatRGB:
		return 3
	case FormatRGBA:
		return 4
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case FormatRed:
		return "red"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	default:
		return "invalid"
	}
}

// TextVertex is one vertex of a glyph quad.
// Memory layout matches the text pipeline's vertex attributes.
type TextVertex struct {
	Pos      [2]float32 // Position in window pixels, origin bottom-left
	TexCoord [2]float32 // Atlas texture coordinates
}

// ImageQuadVertices is the full-window image quad: position (clip space) then texture coordinates.
var ImageQuadVertices = [16]float32{
	1, 1, 1, 1, // top right
	1, -1, 1, 0, // bottom right
	-1, -1, 0, 0, // bottom left
	-1, 1, 0, 1, // top left
}

// ImageQuadIndices draws ImageQuadVertices as two triangles.
var ImageQuadIndices = [6]uint32{
	0, 1, 2,
	0, 2, 3,
}
