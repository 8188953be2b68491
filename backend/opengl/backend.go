// Package opengl provides the GLFW and OpenGL 4.1 backend for show2d.
package opengl

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/show2d"
)

var _ show2d.Backend = (*Backend)(nil)

// Backend owns one GLFW window, its OpenGL context and the image and
// text pipelines drawn into it.
type Backend struct {
	window *glfw.Window
	cfg    windowConfig

	// Image pipeline
	imageShader program
	imageVAO    vertexArray
	imageVBO    buffer
	imageEBO    buffer
	imageTex    texture

	// Text pipeline
	textShader   program
	textVAO      vertexArray
	textVBO      buffer
	atlasTex     texture
	projLoc      int32
	textColorLoc int32

	terminated bool
}

// Open creates a window of the given size and title with a current
// OpenGL context. Call it from the main thread.
func Open(width, height int, title string, opts ...Option) (*Backend, error) {
	cfg := defaultWindowConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	window, err := openWindow(width, height, title, cfg)
	if err != nil {
		return nil, err
	}
	return &Backend{window: window, cfg: cfg}, nil
}

// Window returns the underlying GLFW window.
func (b *Backend) Window() *glfw.Window {
	return b.window
}

// Size returns the window size in screen coordinates.
func (b *Backend) Size() (width, height int) {
	return b.window.GetSize()
}

// ShouldClose reports whether the window's close flag is set.
func (b *Backend) ShouldClose() bool {
	return b.terminated || b.window.ShouldClose()
}

// Present swaps buffers and processes pending window events.
func (b *Backend) Present() {
	b.window.SwapBuffers()
	glfw.PollEvents()
}

// Terminate destroys the window and terminates GLFW. Pipelines must be
// deleted first, while the context is still alive.
func (b *Backend) Terminate() {
	if b.terminated {
		return
	}
	b.terminated = true
	b.window.Destroy()
	glfw.Terminate()
}

// CreateImagePipeline creates the full-window quad and the image texture.
func (b *Backend) CreateImagePipeline() error {
	var err error
	b.imageShader, err = createShaderProgram(imageVertexShaderSource, imageFragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to create image shader: %w", err)
	}
	gl.UseProgram(uint32(b.imageShader))
	gl.Uniform1i(b.imageShader.uniform("imageTexture"), 0)

	vertices := show2d.ImageQuadVertices
	indices := show2d.ImageQuadIndices

	b.imageVAO = newVertexArray()
	gl.BindVertexArray(uint32(b.imageVAO))

	b.imageVBO = newBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b.imageVBO))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(&vertices[0]), gl.STATIC_DRAW)

	b.imageEBO = newBuffer()
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, uint32(b.imageEBO))
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(&indices[0]), gl.STATIC_DRAW)

	// Vertex layout: Pos (2 floats) + TexCoord (2 floats)
	const stride = 4 * 4
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	b.imageTex = newTexture()
	return nil
}

// UploadImage replaces the image texture contents.
func (b *Backend) UploadImage(pix []byte, width, height int, format show2d.PixelFormat) error {
	glFormat, err := textureFormat(format)
	if err != nil {
		return err
	}
	if len(pix) < width*height*format.Channels() {
		return show2d.ErrShortBuffer
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(b.imageTex))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Single-channel images show as gray rather than red.
	swizzle := [4]int32{gl.RED, gl.GREEN, gl.BLUE, gl.ALPHA}
	if format == show2d.FormatRed {
		swizzle = [4]int32{gl.RED, gl.RED, gl.RED, gl.ONE}
	}
	gl.TexParameteriv(gl.TEXTURE_2D, gl.TEXTURE_SWIZZLE_RGBA, &swizzle[0])

	// Rows are tightly packed.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, int32(glFormat), int32(width), int32(height), 0,
		glFormat, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// DrawImage clears the frame and draws the image quad.
func (b *Backend) DrawImage() {
	c := b.cfg.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(uint32(b.imageShader))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(b.imageTex))

	gl.BindVertexArray(uint32(b.imageVAO))
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(show2d.ImageQuadIndices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// DeleteImagePipeline releases the image quad, texture and shader.
func (b *Backend) DeleteImagePipeline() {
	b.imageTex.release()
	b.imageEBO.release()
	b.imageVBO.release()
	b.imageVAO.release()
	b.imageShader.release()
}

// CreateTextPipeline creates the text shader and the dynamic vertex buffer.
func (b *Backend) CreateTextPipeline() error {
	var err error
	b.textShader, err = createShaderProgram(textVertexShaderSource, textFragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to create text shader: %w", err)
	}
	gl.UseProgram(uint32(b.textShader))
	gl.Uniform1i(b.textShader.uniform("atlasTexture"), 0)
	b.projLoc = b.textShader.uniform("projection")
	b.textColorLoc = b.textShader.uniform("textColor")

	b.textVAO = newVertexArray()
	gl.BindVertexArray(uint32(b.textVAO))

	b.textVBO = newBuffer()
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b.textVBO))

	stride := int32(unsafe.Sizeof(show2d.TextVertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(show2d.TextVertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// UploadAtlas discards the current atlas texture and uploads img as the new one.
func (b *Backend) UploadAtlas(img *image.Alpha) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if img.Stride != w {
		return fmt.Errorf("atlas stride %d does not match width %d", img.Stride, w)
	}

	b.atlasTex.release()
	b.atlasTex = newTexture()

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(b.atlasTex))

	// Glyph rows are byte aligned.
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	var data unsafe.Pointer
	if len(img.Pix) > 0 {
		data = gl.Ptr(img.Pix)
	}
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, data)

	// Clamp to edges so scaled glyphs do not bleed into their neighbours.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

// SetProjection uploads the text projection matrix.
func (b *Backend) SetProjection(m mgl32.Mat4) {
	gl.UseProgram(uint32(b.textShader))
	gl.UniformMatrix4fv(b.projLoc, 1, false, &m[0])
}

// DrawText uploads one string's vertices and draws them in a single call.
func (b *Backend) DrawText(vertices []show2d.TextVertex, color show2d.Color) {
	if len(vertices) == 0 {
		return
	}

	gl.UseProgram(uint32(b.textShader))
	gl.Uniform3f(b.textColorLoc, color.R, color.G, color.B)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(b.atlasTex))

	gl.BindVertexArray(uint32(b.textVAO))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(b.textVBO))
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(show2d.TextVertex{})),
		gl.Ptr(vertices), gl.DYNAMIC_DRAW)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// DeleteTextPipeline releases the atlas, text buffers and shader.
func (b *Backend) DeleteTextPipeline() {
	b.atlasTex.release()
	b.textVBO.release()
	b.textVAO.release()
	b.textShader.release()
}

// textureFormat maps a pixel format to the matching GL texture format.
func textureFormat(f show2d.PixelFormat) (uint32, error) {
	switch f {
	case show2d.FormatRed:
		return gl.RED, nil
	case show2d.FormatRGB:
		return gl.RGB, nil
	case show2d.FormatRGBA:
		return gl.RGBA, nil
	default:
		return 0, fmt.Errorf("%w: format %v", show2d.ErrUnsupportedChannels, f)
	}
}
