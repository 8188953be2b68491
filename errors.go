package show2d

import "errors"

var (
	// ErrWindowClosed is returned by Draw once the user has closed the window.
	// Callers should stop their frame loop when they see it.
	ErrWindowClosed = errors.New("show2d: window closed")

	// ErrUnsupportedChannels is returned for images that are not 1, 3 or 4 channels.
	ErrUnsupportedChannels = errors.New("show2d: unsupported channel count")

	// ErrShortBuffer is returned when a pixel buffer is smaller than width*height*channels.
	ErrShortBuffer = errors.New("show2d: pixel buffer too small")

	// ErrGlyphNotFound is returned when a string contains a character with no glyph in the atlas.
	ErrGlyphNotFound = errors.New("show2d: glyph not found")

	// ErrTextDisabled is returned by operations that need a built atlas.
	ErrTextDisabled = errors.New("show2d: text renderer not initialized")

	// ErrEmptyAtlas is returned when a font produced no usable glyphs.
	ErrEmptyAtlas = errors.New("show2d: no glyphs rasterized")
)
