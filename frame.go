package show2d

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FrameFromImage converts img into the tightly packed, bottom-up buffer Draw
// expects. Gray images become one channel, opaque images three channels and
// everything else four channels of non-premultiplied RGBA.
func FrameFromImage(img image.Image) (pix []byte, width, height, channels int) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return nil, 0, 0, 0
	}

	if g, ok := img.(*image.Gray); ok {
		pix = make([]byte, width*height)
		for y := 0; y < height; y++ {
			i := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(pix[(height-1-y)*width:], g.Pix[i:i+width])
		}
		return pix, width, height, 1
	}

	rgba, ok := img.(*image.NRGBA)
	if !ok {
		rgba = image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.Draw(rgba, rgba.Bounds(), img, b.Min, xdraw.Src)
	}
	rb := rgba.Bounds()

	channels = 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		channels = 3
	}

	pix = make([]byte, width*height*channels)
	for y := 0; y < height; y++ {
		i := rgba.PixOffset(rb.Min.X, rb.Min.Y+y)
		row := rgba.Pix[i : i+width*4]
		dst := pix[(height-1-y)*width*channels:]
		if channels == 4 {
			copy(dst, row)
			continue
		}
		for x := 0; x < width; x++ {
			copy(dst[x*3:x*3+3], row[x*4:x*4+3])
		}
	}
	return pix, width, height, channels
}
