package splat

import (
	"fmt"
	"time"
)

// color32 is a compact premultiplied RGBA color for draw commands only.
type color32 struct {
	R, G, B, A float32
}

// drawCommand is one instance quad emitted during canvas traversal.
type drawCommand struct {
	tex       Texture
	transform [6]float64
	w, h      float64 // local quad size in pixels
	region    Region  // already mirrored
	color     color32
	blend     BlendMode

	layerOrder int
	zIndex     int
	treeOrder  int // assigned during traversal for stable sort
}

// Render draws cv and presents it. Layers are traversed back to front and
// instances by (ZIndex, creation order); consecutive quads sharing a texture
// and blend mode are submitted as one draw call. Every mutation made since
// the previous Render becomes visible here. Render is the only call that may
// block (on presentation).
func (c *Context) Render(cv *Canvas) error {
	if err := c.checkPrepared("render"); err != nil {
		return err
	}
	if err := cv.validFor(c, "render"); err != nil {
		return err
	}

	var stats debugStats
	var t0 time.Time
	if c.debug {
		t0 = time.Now()
	}

	c.commands = c.commands[:0]
	frame := c.traverse(cv)

	if c.debug {
		stats.traverseTime = time.Since(t0)
		t0 = time.Now()
	}

	c.mergeSort()

	if c.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	c.backend.BeginFrame(cv.ClearColor)
	frame.DrawCalls = c.submitBatches()
	err := c.backend.EndFrame()

	if c.debug {
		stats.submitTime = time.Since(t0)
		stats.frame = frame
		c.debugLog(stats)
	}

	cv.stats = frame
	if err != nil {
		return fmt.Errorf("splat: render: present: %w", err)
	}
	c.flushScreenshots()
	return nil
}

// traverse walks the canvas layers in draw order and emits a command for
// every visible instance that overlaps the viewport.
func (c *Context) traverse(cv *Canvas) FrameStats {
	var frame FrameStats
	view := cv.Bounds()
	treeOrder := 0
	layerOrder := 0

	it := cv.layers.Iterator()
	for it.Next() {
		l := it.Value().(*Layer)
		layerOrder++
		if !l.visible {
			continue
		}
		frame.Layers++
		for _, inst := range l.instances {
			if !inst.Visible || inst.image == nil {
				continue
			}
			w, h := inst.Size()
			m := inst.worldTransform()
			if !transformedAABB(m, w, h).Intersects(view) {
				frame.Culled++
				continue
			}
			a := float32(inst.Color.A * inst.Alpha)
			treeOrder++
			c.commands = append(c.commands, drawCommand{
				tex:       inst.image.tex,
				transform: m,
				w:         w,
				h:         h,
				region:    inst.region.mirrored(inst.flags),
				color: color32{
					R: float32(inst.Color.R) * a,
					G: float32(inst.Color.G) * a,
					B: float32(inst.Color.B) * a,
					A: a,
				},
				blend:      inst.BlendMode,
				layerOrder: layerOrder,
				zIndex:     inst.zIndex,
				treeOrder:  treeOrder,
			})
		}
	}
	frame.Commands = len(c.commands)
	return frame
}

// --- Merge sort ---

// commandLessOrEqual returns true if a should sort before or at the same position as b.
// Using <= for treeOrder ensures stability.
func commandLessOrEqual(a, b *drawCommand) bool {
	if a.layerOrder != b.layerOrder {
		return a.layerOrder < b.layerOrder
	}
	if a.zIndex != b.zIndex {
		return a.zIndex < b.zIndex
	}
	return a.treeOrder <= b.treeOrder
}

// mergeSort sorts c.commands in-place using c.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (c *Context) mergeSort() {
	n := len(c.commands)
	if n <= 1 {
		return
	}
	if cap(c.sortBuf) < n {
		c.sortBuf = make([]drawCommand, n)
	}
	c.sortBuf = c.sortBuf[:n]

	a := c.commands
	b := c.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(c.commands, c.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeRun(src, dst []drawCommand, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if commandLessOrEqual(&src[i], &src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	k += copy(dst[k:], src[i:mid])
	copy(dst[k:], src[j:hi])
}
