package show2d

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// config holds Display construction settings.
type config struct {
	fontPath string
	fontSize int
	logger   *slog.Logger
	loadFont FontLoader
}

// Option configures a Display.
type Option func(*config)

// WithFont enables text rendering at construction using the font file at path.
func WithFont(path string) Option {
	return func(c *config) { c.fontPath = path }
}

// WithFontSize sets the pixel size glyphs are rasterized at. Default is DefaultFontSize.
func WithFontSize(px int) Option {
	return func(c *config) {
		if px > 0 {
			c.fontSize = px
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFontLoader replaces the loader used to open font files. Default is LoadFont.
func WithFontLoader(fl FontLoader) Option {
	return func(c *config) {
		if fl != nil {
			c.loadFont = fl
		}
	}
}

// pendingText is one DrawText request waiting for the next Draw.
type pendingText struct {
	text  string
	x, y  float32
	scale float32
	color Color
}

// Display shows one image per frame with optional text on top.
// A Display is not safe for concurrent use; call it from the thread
// that owns the rendering context.
type Display struct {
	backend Backend
	logger  *slog.Logger
	cfg     config

	atlas        *Atlas
	textPipeline bool
	projW, projH int

	pending   []pendingText
	destroyed bool
}

// New creates a Display drawing into b and takes ownership of b.
//
// If the image pipeline cannot be created New returns a nil Display and
// the caller still owns b. If WithFont was given and the font cannot be
// loaded, New returns a usable Display with text disabled together with
// the error, so callers may keep showing images.
func New(b Backend, opts ...Option) (*Display, error) {
	cfg := config{
		fontSize: DefaultFontSize,
		logger:   showLogger,
		loadFont: LoadFont,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	d := &Display{
		backend: b,
		logger:  cfg.logger,
		cfg:     cfg,
	}

	if err := b.CreateImagePipeline(); err != nil {
		b.DeleteImagePipeline()
		return nil, fmt.Errorf("failed to create image pipeline: %w", err)
	}

	if cfg.fontPath != "" {
		if err := d.EnableOrReInitTextRenderer(cfg.fontPath); err != nil {
			return d, err
		}
	}

	return d, nil
}

// EnableOrReInitTextRenderer builds a new glyph atlas from the font at path
// and makes it the active one, creating the text pipeline on first use.
// On error the previous atlas, if any, stays active.
func (d *Display) EnableOrReInitTextRenderer(path string) error {
	if d.destroyed {
		return ErrWindowClosed
	}

	r, release, err := d.cfg.loadFont(path, d.cfg.fontSize)
	if err != nil {
		return fmt.Errorf("enable text renderer: %w", err)
	}
	if release != nil {
		defer func() {
			if err := release(); err != nil {
				d.logger.Debug("closing font", "path", path, "error", err)
			}
		}()
	}

	atlas, err := BuildAtlas(r, d.logger)
	if err != nil {
		return fmt.Errorf("enable text renderer: %s: %w", path, err)
	}

	if !d.textPipeline {
		if err := d.backend.CreateTextPipeline(); err != nil {
			d.backend.DeleteTextPipeline()
			return fmt.Errorf("failed to create text pipeline: %w", err)
		}
		d.textPipeline = true
		d.projW, d.projH = 0, 0
	}

	if err := d.backend.UploadAtlas(atlas.Image()); err != nil {
		return fmt.Errorf("enable text renderer: %w", err)
	}
	d.atlas = atlas
	d.updateProjection()

	d.logger.Debug("text renderer ready", "font", path,
		"glyphs", atlas.Len(), "atlasWidth", atlas.Width(), "atlasHeight", atlas.Height())
	return nil
}

// DrawText queues text to be drawn on top of the next frame.
// (x, y) is the baseline pen position in window pixels, origin bottom-left.
// scale 1.0 draws glyphs at the rasterized font size.
// Without an enabled text renderer the call is dropped with a warning.
func (d *Display) DrawText(text string, x, y, scale float32, color Color) {
	if d.atlas == nil {
		d.logger.Warn("text renderer not initialized, dropping text", "text", text)
		return
	}
	d.pending = append(d.pending, pendingText{
		text:  text,
		x:     x,
		y:     y,
		scale: scale,
		color: color,
	})
}

// Draw shows one frame: it uploads pix as the image texture, draws it over
// the whole window, draws every queued text in the order it was queued,
// then presents the frame and polls events.
//
// pix must hold width*height*channels bytes, row 0 being the bottom of the
// image, with channels one of 1, 3 or 4.
// Draw returns ErrWindowClosed without touching the GPU once the window
// has been closed. Text that cannot be laid out is skipped and reported
// in the returned error after the frame is presented.
func (d *Display) Draw(pix []byte, width, height, channels int) error {
	if d.destroyed || d.backend.ShouldClose() {
		return ErrWindowClosed
	}

	format, err := PixelFormatForChannels(channels)
	if err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("show2d: invalid image size %dx%d", width, height)
	}
	if need := width * height * channels; len(pix) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(pix), need)
	}

	if err := d.backend.UploadImage(pix, width, height, format); err != nil {
		return fmt.Errorf("upload image: %w", err)
	}
	d.backend.DrawImage()

	var errs []error
	if len(d.pending) > 0 {
		d.updateProjection()
		for _, p := range d.pending {
			vertices, _, err := LayoutText(d.atlas, p.text, p.x, p.y, p.scale)
			if err != nil {
				errs = append(errs, fmt.Errorf("draw text %q: %w", p.text, err))
				continue
			}
			d.backend.DrawText(vertices, p.color)
		}
		clear(d.pending)
		d.pending = d.pending[:0]
	}

	d.backend.Present()
	return errors.Join(errs...)
}

// Destroy releases every GPU resource and then the window.
// Calling it more than once is a no-op.
func (d *Display) Destroy() {
	if d.destroyed {
		return
	}
	d.destroyed = true

	if d.textPipeline {
		d.backend.DeleteTextPipeline()
		d.textPipeline = false
	}
	d.backend.DeleteImagePipeline()
	d.backend.Terminate()

	d.atlas = nil
	d.pending = nil
}

// TextEnabled reports whether a glyph atlas has been built.
func (d *Display) TextEnabled() bool {
	return d.atlas != nil
}

// PendingTextDraws returns the number of texts queued for the next frame.
func (d *Display) PendingTextDraws() int {
	return len(d.pending)
}

// Atlas returns the active glyph atlas, or nil if text is disabled.
func (d *Display) Atlas() *Atlas {
	return d.atlas
}

// MeasureText returns the width and line height text would occupy at scale.
func (d *Display) MeasureText(text string, scale float32) (width, height float32, err error) {
	if d.atlas == nil {
		return 0, 0, ErrTextDisabled
	}
	return d.atlas.MeasureText(text, scale)
}

// updateProjection maps window pixels to clip space for the text pipeline,
// only when the window size changed since the last upload.
func (d *Display) updateProjection() {
	if !d.textPipeline {
		return
	}
	w, h := d.backend.Size()
	if w <= 0 || h <= 0 || (w == d.projW && h == d.projH) {
		return
	}
	d.backend.SetProjection(mgl32.Ortho2D(0, float32(w), 0, float32(h)))
	d.projW, d.projH = w, h
}
