package splat

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled capture of the next presented frame. The PNG
// is written to ScreenshotDir with a timestamped filename. Backends that do
// not implement FrameReader drop the request with a warning.
func (c *Context) Screenshot(label string) {
	c.screenshotQueue = append(c.screenshotQueue, label)
}

// flushScreenshots reads back the presented frame for every queued label and
// writes each as a PNG file. Called at the end of Render.
func (c *Context) flushScreenshots() {
	if len(c.screenshotQueue) == 0 {
		return
	}
	defer func() { c.screenshotQueue = c.screenshotQueue[:0] }()

	reader, ok := c.backend.(FrameReader)
	if !ok {
		logger.Warn("screenshot: backend cannot read frames", "dropped", len(c.screenshotQueue))
		return
	}

	if err := os.MkdirAll(c.ScreenshotDir, 0o755); err != nil {
		logger.Warn("screenshot: mkdir", "dir", c.ScreenshotDir, "err", err)
		return
	}

	pixels, w, h := reader.ReadFrame()
	img := unpremultiply(pixels, w, h)
	stamp := time.Now().Format("20060102_150405")

	for _, label := range c.screenshotQueue {
		path := filepath.Join(c.ScreenshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logger.Warn("screenshot", "err", err)
			continue
		}
		logger.Debug("screenshot written", "path", path)
	}
}

// unpremultiply converts premultiplied RGBA bytes to straight-alpha NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG writes img to path, removing the partial file on failure.
func writePNG(path string, img *image.NRGBA) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("screenshot: %w", cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("screenshot: encode %s: %w", path, err)
	}
	return nil
}

// sanitizeLabel maps a label to a file-name-safe string: letters, digits,
// '-' and '.' pass through, everything else becomes '_'.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
