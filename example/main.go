// Example shows an image in a window with a frames-per-second counter on top.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/ -image photo.png -font bitter.otf
//
// Without -image a generated gradient is shown. Without -font no text is drawn.
// Press Escape or close the window to quit.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"runtime"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/go-theft-auto/show2d"
	"github.com/go-theft-auto/show2d/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "new window"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	imagePath := flag.String("image", "", "image file to show (png, jpeg, bmp, tiff, webp)")
	fontPath := flag.String("font", "", "OpenType or TrueType font for the FPS counter")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	show2d.SetVerbose(*verbose)

	if err := run(*imagePath, *fontPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(imagePath, fontPath string) error {
	img, err := loadImage(imagePath)
	if err != nil {
		return err
	}
	pix, width, height, channels := show2d.FrameFromImage(img)

	backend, err := opengl.Open(windowWidth, windowHeight, windowTitle, opengl.WithCloseOnEscape(true))
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}

	var opts []show2d.Option
	if fontPath != "" {
		opts = append(opts, show2d.WithFont(fontPath))
	}
	display, err := show2d.New(backend, opts...)
	if display == nil {
		backend.Terminate()
		return fmt.Errorf("create display: %w", err)
	}
	defer display.Destroy()
	if err != nil {
		// Keep going without text.
		fmt.Fprintln(os.Stderr, err)
	}

	var frameTime time.Duration
	for {
		start := time.Now()

		if display.TextEnabled() && frameTime > 0 {
			fps := fmt.Sprintf("FPS: %d", int(time.Second/frameTime))
			display.DrawText(fps, 10, 540, 1, show2d.ColorWhite)
		}

		err := display.Draw(pix, width, height, channels)
		if errors.Is(err, show2d.ErrWindowClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		frameTime = time.Since(start)
	}
}

func loadImage(path string) (image.Image, error) {
	if path == "" {
		return gradient(256, 256), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not load image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %s: %w", path, err)
	}
	return img, nil
}

func gradient(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 255 / w), G: uint8(y * 255 / h), B: 128, A: 255})
		}
	}
	return img
}
