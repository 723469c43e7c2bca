package splat

import "fmt"

// Region selects a sub-rectangle of an image in normalized texture
// coordinates. U0 > U1 (or V0 > V1) is allowed and samples the region
// flipped.
type Region struct {
	U0, V0, U1, V1 float64
}

// FullRegion covers the whole image.
var FullRegion = Region{0, 0, 1, 1}

// Validate reports ErrInvalidTextureRegion unless every coordinate lies in
// [0, 1] and the region has non-zero width and height.
func (r Region) Validate() error {
	for _, v := range [4]float64{r.U0, r.V0, r.U1, r.V1} {
		// Written as a negated range check so NaN fails too.
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("region %+v outside [0, 1]: %w", r, ErrInvalidTextureRegion)
		}
	}
	if r.U0 == r.U1 || r.V0 == r.V1 {
		return fmt.Errorf("region %+v is empty: %w", r, ErrInvalidTextureRegion)
	}
	return nil
}

// mirrored returns the region as sampled under flags. The stored region is
// never modified.
func (r Region) mirrored(f Flags) Region {
	f &= flagsKnown
	if f&FlagMirrorX != 0 {
		r.U0, r.U1 = r.U1, r.U0
	}
	if f&FlagMirrorY != 0 {
		r.V0, r.V1 = r.V1, r.V0
	}
	return r
}

// Instance is a positioned, transformable reference to an image within a
// layer. Every setter is O(1) and takes effect at the next Render.
type Instance struct {
	ID uint32

	// Color tints the sampled texels. Alpha multiplies Color.A.
	Color     Color
	Alpha     float64
	BlendMode BlendMode
	Visible   bool

	ctx    *Context
	image  *Image
	layer  *Layer
	seq    uint64
	region Region
	flags  Flags
	zIndex int

	// Transform (local to canvas)
	x, y           float64
	scaleX, scaleY float64
	rotation       float64
	pivotX, pivotY float64

	transform      [6]float64
	transformDirty bool

	destroyed bool
}

// CreateInstance attaches a new instance of img to layer at (x, y), sampling
// the texture region (u0, v0)-(u1, v1) with the given flags.
func (c *Context) CreateInstance(img *Image, layer *Layer, x, y, u0, v0, u1, v1 float64, flags Flags) (*Instance, error) {
	return c.CreateInstanceRegion(img, layer, x, y, Region{u0, v0, u1, v1}, flags)
}

// CreateInstanceRegion is CreateInstance with the texture region as a Region.
func (c *Context) CreateInstanceRegion(img *Image, layer *Layer, x, y float64, region Region, flags Flags) (*Instance, error) {
	if err := c.checkPrepared("create instance"); err != nil {
		return nil, err
	}
	if img == nil || img.destroyed || img.ctx != c {
		if c.debug {
			panic("splat debug: CreateInstance with nil, destroyed, or foreign image")
		}
		return nil, fmt.Errorf("splat: create instance: image: %w", ErrInvalidHandle)
	}
	if err := layer.validFor(c, "create instance"); err != nil {
		return nil, err
	}
	if err := region.Validate(); err != nil {
		return nil, fmt.Errorf("splat: create instance: %w", err)
	}
	c.nextInstSeq++
	inst := &Instance{
		ID:             c.newID(),
		ctx:            c,
		Color:          ColorWhite,
		Alpha:          1,
		Visible:        true,
		image:          img,
		layer:          layer,
		seq:            c.nextInstSeq,
		region:         region,
		flags:          flags,
		x:              x,
		y:              y,
		scaleX:         1,
		scaleY:         1,
		transformDirty: true,
	}
	img.refs++
	layer.instances = append(layer.instances, inst)
	if c.debug {
		debugCheckInstanceCount(layer)
	}
	return inst, nil
}

// DestroyInstance detaches inst from its layer and releases its reference
// on the image. The image itself is not destroyed. Destroying a nil or
// already destroyed instance, or one created by another context, is ignored
// (debug mode panics).
func (c *Context) DestroyInstance(inst *Instance) {
	if inst == nil || inst.destroyed {
		if c.debug {
			panic("splat debug: DestroyInstance on nil or destroyed instance")
		}
		return
	}
	if inst.ctx != c {
		if c.debug {
			panic("splat debug: DestroyInstance on instance from another context")
		}
		logger.Warn("foreign instance destroy ignored", "id", inst.ID)
		return
	}
	if inst.layer != nil {
		inst.layer.removeInstance(inst)
		inst.layer = nil
	}
	inst.image.refs--
	inst.image = nil
	inst.destroyed = true
}

// --- Accessors ---

// Image returns the referenced image, or nil once destroyed.
func (inst *Instance) Image() *Image {
	return inst.image
}

// Layer returns the owning layer, or nil once detached.
func (inst *Instance) Layer() *Layer {
	return inst.layer
}

// IsDestroyed reports whether inst has been destroyed.
func (inst *Instance) IsDestroyed() bool {
	return inst.destroyed
}

// Position returns the instance position exactly as last set.
func (inst *Instance) Position() (x, y float64) {
	return inst.x, inst.y
}

// SetPosition moves the instance. No clamping is applied.
func (inst *Instance) SetPosition(x, y float64) {
	if inst.destroyed {
		debugUseAfterDestroy(inst, "SetPosition")
	}
	inst.x = x
	inst.y = y
	inst.transformDirty = true
}

// Flags returns the current flags bitmask.
func (inst *Instance) Flags() Flags {
	return inst.flags
}

// SetFlags replaces the flags bitmask wholesale.
func (inst *Instance) SetFlags(f Flags) {
	if inst.destroyed {
		debugUseAfterDestroy(inst, "SetFlags")
	}
	inst.flags = f
}

// TextureRegion returns the stored texture region. Mirroring flags do not
// alter it.
func (inst *Instance) TextureRegion() Region {
	return inst.region
}

// SetTextureRegion replaces the texture region after validating it.
func (inst *Instance) SetTextureRegion(r Region) error {
	if inst.destroyed {
		debugUseAfterDestroy(inst, "SetTextureRegion")
	}
	if err := r.Validate(); err != nil {
		return fmt.Errorf("splat: set texture region: %w", err)
	}
	inst.region = r
	return nil
}

// ZIndex returns the intra-layer draw order key.
func (inst *Instance) ZIndex() int {
	return inst.zIndex
}

// SetZIndex changes the instance's draw order within its layer. Higher
// values draw later; equal values keep creation order.
func (inst *Instance) SetZIndex(z int) {
	inst.zIndex = z
}

// Size returns the untransformed quad size in canvas pixels: the image size
// scaled by the texture region extent.
func (inst *Instance) Size() (w, h float64) {
	if inst.image == nil {
		return 0, 0
	}
	r := inst.region
	return float64(inst.image.width) * abs(r.U1-r.U0), float64(inst.image.height) * abs(r.V1-r.V0)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// debugUseAfterDestroy panics when the instance's context is in debug mode.
// Release builds let the write land on the dead instance.
func debugUseAfterDestroy(inst *Instance, op string) {
	if inst.ctx != nil && inst.ctx.debug {
		panic(fmt.Sprintf("splat debug: %s on destroyed instance (ID was %d)", op, inst.ID))
	}
}
