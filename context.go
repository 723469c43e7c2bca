package splat

import (
	"fmt"
)

const defaultCommandCap = 1024

// Context is the process-wide rendering state created by Prepare. It binds
// one Backend to one Window and owns the canvases, images, and render
// buffers created through it. A Context is not safe for concurrent use: all
// calls, including Render, must come from the goroutine that created it.
type Context struct {
	backend   Backend
	window    Window
	viewportW int
	viewportH int
	prepared  bool
	debug     bool

	canvases   []*Canvas
	liveImages int

	// Sequence counters for deterministic creation order.
	nextID       uint32
	nextLayerSeq uint64
	nextInstSeq  uint64

	// Render state
	commands   []drawCommand
	sortBuf    []drawCommand
	batchVerts []Vertex
	batchInds  []uint32

	// Screenshots
	ScreenshotDir   string
	screenshotQueue []string
}

// Prepare binds backend to win and establishes the logical viewport size.
// Everything rendered through the returned Context is drawn in viewport
// coordinates and scaled to the physical window size on presentation.
func Prepare(backend Backend, win Window, viewportW, viewportH int) (*Context, error) {
	if backend == nil {
		return nil, fmt.Errorf("splat: prepare: nil backend: %w", ErrWindowBinding)
	}
	if win == nil {
		return nil, fmt.Errorf("splat: prepare: nil window: %w", ErrWindowBinding)
	}
	if viewportW <= 0 || viewportH <= 0 {
		return nil, fmt.Errorf("splat: prepare: viewport %dx%d: %w", viewportW, viewportH, ErrWindowBinding)
	}
	if err := backend.Bind(win, viewportW, viewportH); err != nil {
		return nil, fmt.Errorf("splat: prepare: %w", err)
	}
	ww, wh := win.Size()
	logger.Info("backend bound",
		"viewport_w", viewportW, "viewport_h", viewportH,
		"window_w", ww, "window_h", wh)
	return &Context{
		backend:       backend,
		window:        win,
		viewportW:     viewportW,
		viewportH:     viewportH,
		prepared:      true,
		commands:      make([]drawCommand, 0, defaultCommandCap),
		sortBuf:       make([]drawCommand, 0, defaultCommandCap),
		ScreenshotDir: "screenshots",
	}, nil
}

// Viewport returns the logical viewport size.
func (c *Context) Viewport() (w, h int) {
	return c.viewportW, c.viewportH
}

// Backend returns the bound backend.
func (c *Context) Backend() Backend {
	return c.backend
}

// Window returns the bound window.
func (c *Context) Window() Window {
	return c.window
}

// Canvases returns the live canvases. The returned slice MUST NOT be mutated.
func (c *Context) Canvases() []*Canvas {
	return c.canvases
}

// LiveImages returns the number of images created and not yet destroyed.
func (c *Context) LiveImages() int {
	return c.liveImages
}

// SetDebugMode enables or disables debug mode. When enabled, use of a
// destroyed handle panics and per-frame timing stats are logged at debug
// level.
func (c *Context) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// Close unbinds the backend. Canvases and images should be destroyed first;
// any still alive are reported as warnings and left to the garbage
// collector. Close is a no-op on a closed context.
func (c *Context) Close() {
	if !c.prepared {
		return
	}
	if n := len(c.canvases); n > 0 {
		logger.Warn("closing context with live canvases", "count", n)
	}
	if c.liveImages > 0 {
		logger.Warn("closing context with live images", "count", c.liveImages)
	}
	c.backend.Unbind()
	c.prepared = false
}

func (c *Context) newID() uint32 {
	c.nextID++
	return c.nextID
}

// checkPrepared returns ErrNotPrepared after Close.
func (c *Context) checkPrepared(op string) error {
	if !c.prepared {
		return fmt.Errorf("splat: %s: %w", op, ErrNotPrepared)
	}
	return nil
}
