package splat

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing and draw-call metrics.
// Only populated when Context.debug is true.
type debugStats struct {
	traverseTime time.Duration
	sortTime     time.Duration
	submitTime   time.Duration
	frame        FrameStats
}

// debugLog logs timing and draw-call stats at debug level.
func (c *Context) debugLog(stats debugStats) {
	if !c.debug {
		return
	}
	total := stats.traverseTime + stats.sortTime + stats.submitTime
	logger.Debug("frame",
		"traverse", stats.traverseTime,
		"sort", stats.sortTime,
		"submit", stats.submitTime,
		"total", total)
	logger.Debug("frame counts",
		"layers", stats.frame.Layers,
		"commands", stats.frame.Commands,
		"culled", stats.frame.Culled,
		"batches", countBatches(c.commands),
		"draw_calls", stats.frame.DrawCalls)
}

// debugCheckImage panics with a descriptive message when a destroyed image
// is queried. Only called in debug mode.
func debugCheckImage(img *Image, op string) {
	if img.destroyed {
		panic(fmt.Sprintf("splat debug: %s on destroyed image (ID was %d)", op, img.ID))
	}
}

// debugMaxInstances is the per-layer instance count that triggers a warning.
const debugMaxInstances = 10000

// debugCheckInstanceCount warns if a layer holds more than debugMaxInstances.
func debugCheckInstanceCount(l *Layer) {
	if len(l.instances) == debugMaxInstances+1 {
		logger.Warn("layer instance count exceeds threshold",
			"layer", l.ID, "instances", len(l.instances), "threshold", debugMaxInstances)
	}
}
