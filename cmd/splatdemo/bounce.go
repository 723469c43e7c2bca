package main

import (
	"math"

	"github.com/phanxgames/splat"
)

// Bouncer moves a sprite back and forth across the viewport, mirroring it
// while it travels left.
type Bouncer struct {
	X     float64
	limit float64
	speed float64
	step  float64
}

// NewBouncer starts at x = 0 moving right. The sprite turns around once its
// left edge reaches viewW - spriteW.
func NewBouncer(viewW, spriteW int, speed float64) *Bouncer {
	speed = math.Abs(speed)
	return &Bouncer{limit: float64(viewW - spriteW), speed: speed, step: speed}
}

// Step advances one tick. When the sprite turns around, set is true and
// flags holds the new instance flags.
func (b *Bouncer) Step() (x float64, flags splat.Flags, set bool) {
	b.X += b.step
	switch {
	case b.X >= b.limit:
		b.step = -b.speed
		return b.X, splat.FlagMirrorX, true
	case b.X < 1:
		b.step = b.speed
		return b.X, 0, true
	}
	return b.X, 0, false
}
