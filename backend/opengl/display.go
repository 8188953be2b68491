package opengl

import (
	"github.com/go-theft-auto/show2d"
)

// NewDisplay opens a width x height window titled title and returns a
// Display drawing into it. Pass show2d.WithFont to enable text at once.
//
// As with show2d.New, a font that fails to load yields a usable Display
// with text disabled alongside the error.
func NewDisplay(width, height int, title string, opts ...show2d.Option) (*show2d.Display, error) {
	b, err := Open(width, height, title)
	if err != nil {
		return nil, err
	}

	d, err := show2d.New(b, opts...)
	if d == nil {
		b.Terminate()
		return nil, err
	}
	return d, err
}
