package splat

import "fmt"

// Layer is an ordered drawing surface within one canvas. Its instances draw
// by ZIndex, then in creation order.
type Layer struct {
	ID uint32

	canvas    *Canvas
	z         int
	seq       uint64
	visible   bool
	instances []*Instance
	destroyed bool
}

// CreateLayer appends a new layer on top of cv's existing layers.
func (c *Context) CreateLayer(cv *Canvas) (*Layer, error) {
	if err := c.checkPrepared("create layer"); err != nil {
		return nil, err
	}
	if err := cv.validFor(c, "create layer"); err != nil {
		return nil, err
	}
	c.nextLayerSeq++
	l := &Layer{
		ID:      c.newID(),
		canvas:  cv,
		seq:     c.nextLayerSeq,
		visible: true,
	}
	// New layers sit above every existing layer, even ones with raised Z.
	if cv.layers.Size() > 0 {
		top := cv.layers.Right().Key.(layerKey)
		if top.z > 0 {
			l.z = top.z
		}
	}
	cv.layers.Put(l.key(), l)
	logger.Debug("layer created", "id", l.ID, "canvas", cv.ID, "z", l.z)
	return l, nil
}

// DestroyLayer removes l from its canvas. Instances should be destroyed
// first: any still attached are detached and stop rendering, but keep their
// image reference until DestroyInstance is called on them. Destroying a nil
// or already destroyed layer is ignored (debug mode panics).
func (c *Context) DestroyLayer(l *Layer) {
	if l == nil || l.destroyed {
		if c.debug {
			panic("splat debug: DestroyLayer on nil or destroyed layer")
		}
		return
	}
	if n := len(l.instances); n > 0 {
		logger.Warn("destroying layer with attached instances", "id", l.ID, "instances", n)
		for i, inst := range l.instances {
			inst.layer = nil
			l.instances[i] = nil
		}
	}
	l.instances = nil
	l.canvas.layers.Remove(l.key())
	l.destroyed = true
	logger.Debug("layer destroyed", "id", l.ID)
}

func (l *Layer) key() layerKey {
	return layerKey{z: l.z, seq: l.seq}
}

// Z returns the layer's z-order.
func (l *Layer) Z() int {
	return l.z
}

// SetZ moves the layer within its canvas. Higher Z draws later (on top);
// layers with equal Z keep their creation order.
func (l *Layer) SetZ(z int) {
	if l.z == z || l.destroyed {
		return
	}
	l.canvas.layers.Remove(l.key())
	l.z = z
	l.canvas.layers.Put(l.key(), l)
}

// Visible reports whether the layer is drawn.
func (l *Layer) Visible() bool {
	return l.visible
}

// SetVisible shows or hides the whole layer.
func (l *Layer) SetVisible(v bool) {
	l.visible = v
}

// Canvas returns the owning canvas.
func (l *Layer) Canvas() *Canvas {
	return l.canvas
}

// Instances returns the attached instances in creation order. The returned
// slice MUST NOT be mutated.
func (l *Layer) Instances() []*Instance {
	return l.instances
}

// NumInstances returns the number of attached instances.
func (l *Layer) NumInstances() int {
	return len(l.instances)
}

// IsDestroyed reports whether l has been destroyed.
func (l *Layer) IsDestroyed() bool {
	return l.destroyed
}

// removeInstance removes inst from l.instances, keeping order.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (l *Layer) removeInstance(inst *Instance) {
	for i, other := range l.instances {
		if other == inst {
			copy(l.instances[i:], l.instances[i+1:])
			l.instances[len(l.instances)-1] = nil
			l.instances = l.instances[:len(l.instances)-1]
			return
		}
	}
}

func (l *Layer) validFor(c *Context, op string) error {
	if l == nil || l.destroyed || l.canvas == nil || l.canvas.ctx != c {
		if c.debug {
			panic(fmt.Sprintf("splat debug: %s on nil, destroyed, or foreign layer", op))
		}
		return fmt.Errorf("splat: %s: layer: %w", op, ErrInvalidHandle)
	}
	return nil
}
