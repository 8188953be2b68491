package opengl

import "github.com/go-gl/gl/v4.1-core/gl"

// GL object handles. Each release deletes the object once and zeroes the
// handle; releasing a zero handle does nothing.

type texture uint32

func newTexture() texture {
	var id uint32
	gl.GenTextures(1, &id)
	return texture(id)
}

func (t *texture) release() {
	if *t == 0 {
		return
	}
	id := uint32(*t)
	gl.DeleteTextures(1, &id)
	*t = 0
}

type buffer uint32

func newBuffer() buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	return buffer(id)
}

func (b *buffer) release() {
	if *b == 0 {
		return
	}
	id := uint32(*b)
	gl.DeleteBuffers(1, &id)
	*b = 0
}

type vertexArray uint32

func newVertexArray() vertexArray {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return vertexArray(id)
}

func (v *vertexArray) release() {
	if *v == 0 {
		return
	}
	id := uint32(*v)
	gl.DeleteVertexArrays(1, &id)
	*v = 0
}

type program uint32

func (p *program) release() {
	if *p == 0 {
		return
	}
	gl.DeleteProgram(uint32(*p))
	*p = 0
}

// uniform returns the location of a uniform; name must not carry a NUL.
func (p program) uniform(name string) int32 {
	return gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
}
