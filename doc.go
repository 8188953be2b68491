/*
Package show2d shows a decoded image as a full-window quad and draws text
on top of it from a font glyph atlas.

# Overview

A Display drives two pipelines that share one window: a static quad whose
texture is replaced by every Draw call, and a text pipeline that draws
strings queued with DrawText. Text is optional; without a font the
Display only shows images.

The window and GPU work sit behind the Backend interface. The GLFW and
OpenGL implementation lives in package backend/opengl, so this package
never imports GL types.

# Quick Start

	func init() {
	    // GLFW must run on the main thread.
	    runtime.LockOSThread()
	}

	d, err := opengl.NewDisplay(800, 600, "viewer", show2d.WithFont("bitter.otf"))
	if err != nil {
	    return err
	}
	defer d.Destroy()

	pix, w, h, channels := show2d.FrameFromImage(img)
	for {
	    d.DrawText("hello", 10, 540, 1, show2d.ColorWhite)
	    if err := d.Draw(pix, w, h, channels); errors.Is(err, show2d.ErrWindowClosed) {
	        break
	    }
	}

# Frames

Each Draw call uploads the image, draws it, draws the queued texts in the
order they were queued, empties the queue, then swaps buffers and polls
window events. Once the user closes the window Draw returns
ErrWindowClosed and does no GPU work.

Image buffers are tightly packed, row 0 at the bottom, with 1, 3 or 4
channels. Any other channel count fails with ErrUnsupportedChannels.

# Text

EnableOrReInitTextRenderer rasterizes printable ASCII (32 through 127)
at DefaultFontSize pixels and packs the glyphs into a one-row,
single-channel atlas with a one pixel gutter between glyphs. Calling it
again replaces the atlas and glyph table.

Text positions are window pixels with the origin at the bottom-left; y
is the baseline. A scale of 1 draws glyphs at the rasterized size.
Characters outside the atlas make that string fail; Draw skips it and
reports the failure.

# Logging

Diagnostics go through log/slog. SetVerbose(true) enables debug records
on the default logger; WithLogger replaces it.
*/
package show2d
