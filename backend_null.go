package splat

import (
	"errors"
	"fmt"
	"image"
)

// NullTexture is the texture type of NullBackend. It keeps a copy of the
// uploaded pixels so tests can inspect them.
type NullTexture struct {
	ID      int
	W, H    int
	Pix     []byte
	Deleted bool
}

// Size returns the texture size in pixels.
func (t *NullTexture) Size() (w, h int) {
	return t.W, t.H
}

// DrawCall is one recorded DrawTriangles submission.
type DrawCall struct {
	Texture *NullTexture
	Verts   []Vertex
	Inds    []uint32
	Blend   BlendMode
}

// Quads returns the number of quads in the call.
func (d DrawCall) Quads() int {
	return len(d.Inds) / 6
}

// Frame is one recorded frame, from BeginFrame to EndFrame.
type Frame struct {
	Clear     Color
	DrawCalls []DrawCall
}

// NullBackend is a Backend that records frames instead of drawing them. It
// needs no GPU or window system and is used for tests and headless runs.
type NullBackend struct {
	// MaxTextureSize rejects larger uploads when non-zero, simulating an
	// out-of-memory backend.
	MaxTextureSize int

	// Last is the most recently presented frame.
	Last Frame
	// Presented counts EndFrame calls.
	Presented int
	// LiveTextures counts textures created and not deleted.
	LiveTextures int

	window    Window
	viewportW int
	viewportH int
	bound     bool
	nextTex   int
	current   Frame
	inFrame   bool
}

// NewNullBackend creates an unbound recording backend.
func NewNullBackend() *NullBackend {
	return &NullBackend{}
}

// Bind records the window and viewport. The window must report a positive
// size.
func (b *NullBackend) Bind(win Window, viewportW, viewportH int) error {
	if win == nil {
		return fmt.Errorf("null backend: nil window: %w", ErrWindowBinding)
	}
	if w, h := win.Size(); w <= 0 || h <= 0 {
		return fmt.Errorf("null backend: window size %dx%d: %w", w, h, ErrWindowBinding)
	}
	b.window = win
	b.viewportW = viewportW
	b.viewportH = viewportH
	b.bound = true
	return nil
}

// Bound reports whether the backend is bound to a window.
func (b *NullBackend) Bound() bool {
	return b.bound
}

// Viewport returns the bound viewport size.
func (b *NullBackend) Viewport() (w, h int) {
	return b.viewportW, b.viewportH
}

// NewTexture copies img into a NullTexture.
func (b *NullBackend) NewTexture(img *image.NRGBA) (Texture, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if b.MaxTextureSize > 0 && (w > b.MaxTextureSize || h > b.MaxTextureSize) {
		return nil, fmt.Errorf("null backend: texture %dx%d exceeds %d", w, h, b.MaxTextureSize)
	}
	b.nextTex++
	b.LiveTextures++
	return &NullTexture{
		ID:  b.nextTex,
		W:   w,
		H:   h,
		Pix: append([]byte(nil), img.Pix...),
	}, nil
}

// DeleteTexture marks tex deleted.
func (b *NullBackend) DeleteTexture(tex Texture) {
	t, ok := tex.(*NullTexture)
	if !ok || t.Deleted {
		return
	}
	t.Deleted = true
	t.Pix = nil
	b.LiveTextures--
}

// BeginFrame starts recording a frame.
func (b *NullBackend) BeginFrame(clear Color) {
	b.current = Frame{Clear: clear}
	b.inFrame = true
}

// DrawTriangles records a copy of the submission.
func (b *NullBackend) DrawTriangles(tex Texture, verts []Vertex, inds []uint32, blend BlendMode) {
	t, _ := tex.(*NullTexture)
	b.current.DrawCalls = append(b.current.DrawCalls, DrawCall{
		Texture: t,
		Verts:   append([]Vertex(nil), verts...),
		Inds:    append([]uint32(nil), inds...),
		Blend:   blend,
	})
}

// EndFrame stores the recorded frame as Last.
func (b *NullBackend) EndFrame() error {
	if !b.inFrame {
		return fmt.Errorf("null backend: EndFrame without BeginFrame")
	}
	if !b.bound {
		return fmt.Errorf("null backend: present while unbound: %w", ErrWindowBinding)
	}
	b.Last = b.current
	b.current = Frame{}
	b.inFrame = false
	b.Presented++
	return nil
}

// Unbind forgets the window.
func (b *NullBackend) Unbind() {
	b.window = nil
	b.bound = false
}

// NullWindow is a headless Window with an injectable event queue.
type NullWindow struct {
	W, H   int
	events eventQueue

	// MaxFrames stops Run after this many ticks when non-zero.
	MaxFrames int
	frames    int
}

// NewNullWindow creates a headless window of the given size.
func NewNullWindow(w, h int) *NullWindow {
	return &NullWindow{W: w, H: h}
}

// Size returns the window size.
func (w *NullWindow) Size() (int, int) {
	return w.W, w.H
}

// PollEvent pops the next injected event.
func (w *NullWindow) PollEvent() (Event, bool) {
	return w.events.poll()
}

// InjectKeyDown queues a key press.
func (w *NullWindow) InjectKeyDown(key string) {
	w.events.push(Event{Type: EventKeyDown, Key: key})
}

// InjectQuit queues a quit request.
func (w *NullWindow) InjectQuit() {
	w.events.push(Event{Type: EventQuit})
}

// SetEventStore sets the optional ECS bridge.
func (w *NullWindow) SetEventStore(store EventStore) {
	w.events.store = store
}

// Frames returns the number of completed ticks.
func (w *NullWindow) Frames() int {
	return w.frames
}

// Run calls tick repeatedly until it returns ErrStop (a clean exit), any
// other error, or MaxFrames ticks have run.
func (w *NullWindow) Run(tick func() error) error {
	for w.MaxFrames == 0 || w.frames < w.MaxFrames {
		err := tick()
		w.frames++
		if errors.Is(err, ErrStop) {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}
