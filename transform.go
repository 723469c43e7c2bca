package splat

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the instance's affine matrix from its
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func computeLocalTransform(inst *Instance) [6]float64 {
	sx := inst.scaleX
	sy := inst.scaleY
	sin, cos := math.Sincos(inst.rotation)

	preTx := -inst.pivotX * sx
	preTy := -inst.pivotY * sy

	return [6]float64{
		cos * sx, sin * sx,
		-sin * sy, cos * sy,
		cos*preTx - sin*preTy + inst.x,
		sin*preTx + cos*preTy + inst.y,
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// worldTransform returns the cached transform, recomputing it if dirty.
func (inst *Instance) worldTransform() [6]float64 {
	if inst.transformDirty {
		inst.transform = computeLocalTransform(inst)
		inst.transformDirty = false
	}
	return inst.transform
}

// --- Transform property setters ---

// Scale returns the instance's scale factors.
func (inst *Instance) Scale() (sx, sy float64) {
	return inst.scaleX, inst.scaleY
}

// SetScale sets the instance's scale factors.
func (inst *Instance) SetScale(sx, sy float64) {
	inst.scaleX = sx
	inst.scaleY = sy
	inst.transformDirty = true
}

// Rotation returns the rotation in radians.
func (inst *Instance) Rotation() float64 {
	return inst.rotation
}

// SetRotation sets the rotation (in radians, clockwise on screen).
func (inst *Instance) SetRotation(r float64) {
	inst.rotation = r
	inst.transformDirty = true
}

// Pivot returns the transform origin in local pixels.
func (inst *Instance) Pivot() (px, py float64) {
	return inst.pivotX, inst.pivotY
}

// SetPivot sets the transform origin for scale and rotation, in local
// pixels. The pivot is placed at the instance position.
func (inst *Instance) SetPivot(px, py float64) {
	inst.pivotX = px
	inst.pivotY = py
	inst.transformDirty = true
}

// Bounds returns the axis-aligned bounding box of the transformed quad in
// canvas coordinates.
func (inst *Instance) Bounds() Rect {
	w, h := inst.Size()
	return transformedAABB(inst.worldTransform(), w, h)
}

// transformedAABB returns the bounding box of the (0,0)-(w,h) quad under m.
func transformedAABB(m [6]float64, w, h float64) Rect {
	x0, y0 := transformPoint(m, 0, 0)
	minX, maxX, minY, maxY := x0, x0, y0, y0
	for _, p := range [3][2]float64{{w, 0}, {0, h}, {w, h}} {
		x, y := transformPoint(m, p[0], p[1])
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{minX, minY, maxX - minX, maxY - minY}
}
