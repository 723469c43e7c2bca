package splat

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when quads are built for submission.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is the default canvas clear color.
var ColorBlack = Color{0, 0, 0, 1}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Flags is a bitmask of per-instance draw-time transforms. SetFlags replaces
// the whole mask; flags never accumulate implicitly.
type Flags uint32

const (
	FlagMirrorX Flags = 1 << iota // flip the texture region horizontally
	FlagMirrorY                   // flip the texture region vertically
)

// flagsKnown covers every defined flag. Bits outside it are reserved and are
// stored but ignored by the renderer.
const flagsKnown = FlagMirrorX | FlagMirrorY

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// BlendMode selects a compositing operation. Each maps to a backend blend
// state; instances with different blend modes never share a batch.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendScreen                    // screen (1 - (1-src)*(1-dst); only brightens)
	BlendNone                      // opaque copy (skip blending)
)

// EventType identifies a kind of window event.
type EventType uint8

const (
	EventQuit    EventType = iota + 1 // window close requested
	EventKeyDown                  // a key was pressed this frame
)

// KeyEscape is the key name reported for the Escape key.
const KeyEscape = "Escape"

// Event is a single polled window event. Key is the key name for
// EventKeyDown and empty otherwise.
type Event struct {
	Type EventType
	Key  string
}

// IsQuit reports whether the event asks the application to terminate:
// either a quit request or an Escape key press.
func (e Event) IsQuit() bool {
	return e.Type == EventQuit || (e.Type == EventKeyDown && e.Key == KeyEscape)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
