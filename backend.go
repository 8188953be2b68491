package show2d

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Backend is the window and GPU surface a Display draws into.
// Implementations own a single window with a current rendering context;
// all methods are called from the thread that owns that context.
// The OpenGL implementation lives in backend/opengl.
type Backend interface {
	// Size returns the window size in screen coordinates.
	Size() (width, height int)
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	// Present swaps the frame buffers and polls window events.
	Present()
	// Terminate destroys the window and shuts down the windowing system.
	// It is called after every pipeline has been deleted.
	Terminate()

	// CreateImagePipeline creates the image quad buffers, texture and shader.
	CreateImagePipeline() error
	// UploadImage replaces the image texture with pix, rows bottom-up.
	UploadImage(pix []byte, width, height int, format PixelFormat) error
	// DrawImage clears the frame and draws the image quad.
	DrawImage()
	// DeleteImagePipeline releases the image pipeline. Zero handles are skipped.
	DeleteImagePipeline()

	// CreateTextPipeline creates the text vertex buffers and shader.
	CreateTextPipeline() error
	// UploadAtlas replaces the glyph atlas texture with img.
	UploadAtlas(img *image.Alpha) error
	// SetProjection sets the matrix mapping window pixels to clip space for text.
	SetProjection(m mgl32.Mat4)
	// DrawText draws one string's glyph quads tinted by color in a single draw call.
	DrawText(vertices []TextVertex, color Color)
	// DeleteTextPipeline releases the text pipeline and atlas. Zero handles are skipped.
	DeleteTextPipeline()
}
