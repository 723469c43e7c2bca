package splat

import (
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// FrameStats describes the most recent Render of a canvas.
type FrameStats struct {
	Layers    int // visible layers traversed
	Commands  int // instances that produced a quad
	Culled    int // instances skipped because they lie outside the viewport
	DrawCalls int // backend DrawTriangles calls
}

// Canvas is a render target bound to the context's window. It owns an
// ordered set of layers drawn back to front: lower Z first, and creation
// order among equal Z.
type Canvas struct {
	ID         uint32
	ClearColor Color

	ctx       *Context
	width     int
	height    int
	layers    *redblacktree.Tree // layerKey -> *Layer
	stats     FrameStats
	destroyed bool
}

// layerKey orders layers by z, then by creation sequence.
type layerKey struct {
	z   int
	seq uint64
}

func layerKeyComparator(a, b interface{}) int {
	ka := a.(layerKey)
	kb := b.(layerKey)
	switch {
	case ka.z < kb.z:
		return -1
	case ka.z > kb.z:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}

// CreateCanvas creates a canvas whose target size is the context viewport.
func (c *Context) CreateCanvas() (*Canvas, error) {
	if err := c.checkPrepared("create canvas"); err != nil {
		return nil, err
	}
	cv := &Canvas{
		ID:         c.newID(),
		ClearColor: ColorBlack,
		ctx:        c,
		width:      c.viewportW,
		height:     c.viewportH,
		layers:     redblacktree.NewWith(layerKeyComparator),
	}
	c.canvases = append(c.canvases, cv)
	logger.Debug("canvas created", "id", cv.ID, "width", cv.width, "height", cv.height)
	return cv, nil
}

// DestroyCanvas tears down cv. Layers should be destroyed first; any still
// attached are destroyed here and reported as a warning. Destroying a nil or
// already destroyed canvas is ignored (debug mode panics).
func (c *Context) DestroyCanvas(cv *Canvas) {
	if cv == nil || cv.destroyed {
		if c.debug {
			panic("splat debug: DestroyCanvas on nil or destroyed canvas")
		}
		return
	}
	if n := cv.layers.Size(); n > 0 {
		logger.Warn("destroying canvas with live layers", "id", cv.ID, "layers", n)
		for _, l := range cv.Layers() {
			c.DestroyLayer(l)
		}
	}
	for i, other := range c.canvases {
		if other == cv {
			copy(c.canvases[i:], c.canvases[i+1:])
			c.canvases[len(c.canvases)-1] = nil
			c.canvases = c.canvases[:len(c.canvases)-1]
			break
		}
	}
	cv.destroyed = true
	logger.Debug("canvas destroyed", "id", cv.ID)
}

// Size returns the canvas target (viewport) size.
func (cv *Canvas) Size() (w, h int) {
	return cv.width, cv.height
}

// Bounds returns the canvas area in canvas coordinates.
func (cv *Canvas) Bounds() Rect {
	return Rect{0, 0, float64(cv.width), float64(cv.height)}
}

// Layers returns the layers in draw order (back to front).
func (cv *Canvas) Layers() []*Layer {
	out := make([]*Layer, 0, cv.layers.Size())
	it := cv.layers.Iterator()
	for it.Next() {
		out = append(out, it.Value().(*Layer))
	}
	return out
}

// NumLayers returns the number of layers on the canvas.
func (cv *Canvas) NumLayers() int {
	return cv.layers.Size()
}

// Stats returns statistics for the most recent Render of this canvas.
func (cv *Canvas) Stats() FrameStats {
	return cv.stats
}

// IsDestroyed reports whether cv has been destroyed.
func (cv *Canvas) IsDestroyed() bool {
	return cv.destroyed
}

func (cv *Canvas) validFor(c *Context, op string) error {
	if cv == nil || cv.destroyed || cv.ctx != c {
		if c.debug {
			panic(fmt.Sprintf("splat debug: %s on nil, destroyed, or foreign canvas", op))
		}
		return fmt.Errorf("splat: %s: canvas: %w", op, ErrInvalidHandle)
	}
	return nil
}
