package splat

import "image"

// Vertex is one corner of a submitted quad. Dst is in canvas (viewport)
// pixels; U and V are normalized texture coordinates. Color is
// premultiplied.
type Vertex struct {
	DstX, DstY float32
	U, V       float32
	R, G, B, A float32
}

// Texture is a backend-owned GPU image.
type Texture interface {
	Size() (w, h int)
}

// Window is a native window surface that a backend can bind to.
type Window interface {
	// Size returns the physical window size in pixels.
	Size() (w, h int)
}

// EventSource supplies polled window events.
type EventSource interface {
	// PollEvent removes and returns the next pending event. ok is false
	// when no event is pending.
	PollEvent() (e Event, ok bool)
}

// Backend is the GPU-facing half of the renderer. A Context drives exactly
// one backend from a single goroutine.
type Backend interface {
	// Bind attaches the backend to a window with a logical viewport size.
	// Output is scaled from the viewport to the physical window size.
	Bind(win Window, viewportW, viewportH int) error
	// NewTexture uploads pixels to GPU memory.
	NewTexture(img *image.NRGBA) (Texture, error)
	// DeleteTexture releases GPU memory held by tex.
	DeleteTexture(tex Texture)
	// BeginFrame starts a frame by clearing the viewport.
	BeginFrame(clear Color)
	// DrawTriangles submits one draw call of indexed triangles sampling tex.
	// verts and inds are reused after the call returns.
	DrawTriangles(tex Texture, verts []Vertex, inds []uint32, blend BlendMode)
	// EndFrame presents the composited frame to the bound window.
	EndFrame() error
	// Unbind detaches the backend from its window.
	Unbind()
}

// FrameReader is implemented by backends that can read back the last
// presented frame as premultiplied RGBA bytes at viewport size.
type FrameReader interface {
	ReadFrame() (pix []byte, w, h int)
}
