package splat

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Instance simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenRotation, TweenAlpha) and call Update(dt) each frame before Render.
// The group writes values straight into the instance, exactly as the
// matching setters would. If the instance is destroyed, the group stops.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Instance
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target instance has been destroyed, Done is set to true and
// no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	if g.target != nil {
		g.target.transformDirty = true
	}
}

// TweenPosition creates a TweenGroup that moves inst to (toX, toY) over
// duration seconds using the easing function.
func TweenPosition(inst *Instance, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: inst}
	g.tweens[0] = gween.New(float32(inst.x), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(inst.y), float32(toY), duration, fn)
	g.fields[0] = &inst.x
	g.fields[1] = &inst.y
	return g
}

// TweenScale creates a TweenGroup that animates the instance scale.
func TweenScale(inst *Instance, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: inst}
	g.tweens[0] = gween.New(float32(inst.scaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(inst.scaleY), float32(toSY), duration, fn)
	g.fields[0] = &inst.scaleX
	g.fields[1] = &inst.scaleY
	return g
}

// TweenRotation creates a TweenGroup that animates the instance rotation.
func TweenRotation(inst *Instance, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: inst}
	g.tweens[0] = gween.New(float32(inst.rotation), float32(to), duration, fn)
	g.fields[0] = &inst.rotation
	return g
}

// TweenAlpha creates a TweenGroup that animates inst.Alpha.
func TweenAlpha(inst *Instance, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: inst}
	g.tweens[0] = gween.New(float32(inst.Alpha), float32(to), duration, fn)
	g.fields[0] = &inst.Alpha
	return g
}
