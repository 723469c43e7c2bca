package splat

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig configures an EbitenWindow.
type WindowConfig struct {
	// Title is the window title.
	Title string
	// Width and Height set the initial window size in device-independent
	// pixels. Zero defaults to 640x480.
	Width, Height int
	// Resizable allows the user to resize the window. Presented frames are
	// scaled to whatever size the window has.
	Resizable bool
	// ShowFPS draws an FPS/TPS counter over the presented frame.
	ShowFPS bool
	// TPS sets the tick rate. Zero keeps Ebitengine's default of 60.
	TPS int
}

// EbitenWindow is a native window driven by Ebitengine. It implements
// Window, EventSource, and ebiten.Game; Run enters the Ebitengine loop and
// calls a tick function once per update.
type EbitenWindow struct {
	cfg    WindowConfig
	events eventQueue
	keys   []ebiten.Key
	tick   func() error

	front      *ebiten.Image // last presented frame, viewport size
	viewportW  int
	viewportH  int
	outsideW   int
	outsideH   int
	screenOpts ebiten.DrawImageOptions
}

// NewEbitenWindow creates a window; nothing is shown until Run.
func NewEbitenWindow(cfg WindowConfig) *EbitenWindow {
	if cfg.Width <= 0 {
		cfg.Width = 640
	}
	if cfg.Height <= 0 {
		cfg.Height = 480
	}
	return &EbitenWindow{cfg: cfg, outsideW: cfg.Width, outsideH: cfg.Height}
}

// Size returns the current window size. Before Run it is the configured
// size.
func (w *EbitenWindow) Size() (int, int) {
	return w.outsideW, w.outsideH
}

// PollEvent pops the next window event.
func (w *EbitenWindow) PollEvent() (Event, bool) {
	return w.events.poll()
}

// InjectKeyDown queues a synthetic key press.
func (w *EbitenWindow) InjectKeyDown(key string) {
	w.events.push(Event{Type: EventKeyDown, Key: key})
}

// InjectQuit queues a synthetic quit request.
func (w *EbitenWindow) InjectQuit() {
	w.events.push(Event{Type: EventQuit})
}

// SetEventStore sets the optional ECS bridge.
func (w *EbitenWindow) SetEventStore(store EventStore) {
	w.events.store = store
}

// Run opens the window and calls tick once per update until tick returns
// ErrStop (a clean exit) or another error.
func (w *EbitenWindow) Run(tick func() error) error {
	w.tick = tick
	ebiten.SetWindowTitle(w.cfg.Title)
	ebiten.SetWindowSize(w.cfg.Width, w.cfg.Height)
	ebiten.SetWindowClosingHandled(true)
	if w.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if w.cfg.TPS > 0 {
		ebiten.SetTPS(w.cfg.TPS)
	}
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("splat: run window: %w", err)
	}
	return nil
}

// Update implements ebiten.Game. It converts window-close and key presses
// into events, then runs the tick.
func (w *EbitenWindow) Update() error {
	if ebiten.IsWindowBeingClosed() {
		w.events.push(Event{Type: EventQuit})
	}
	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		w.events.push(Event{Type: EventKeyDown, Key: k.String()})
	}
	if w.tick == nil {
		return nil
	}
	if err := w.tick(); err != nil {
		if errors.Is(err, ErrStop) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// Draw implements ebiten.Game. It scales the last presented frame to the
// screen.
func (w *EbitenWindow) Draw(screen *ebiten.Image) {
	if w.front != nil && w.viewportW > 0 && w.viewportH > 0 {
		sb := screen.Bounds()
		op := &w.screenOpts
		op.GeoM.Reset()
		op.GeoM.Scale(float64(sb.Dx())/float64(w.viewportW), float64(sb.Dy())/float64(w.viewportH))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(w.front, op)
	}
	if w.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game. The screen always matches the window so
// frames are scaled rather than letterboxed.
func (w *EbitenWindow) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.outsideW = outsideWidth
	w.outsideH = outsideHeight
	return outsideWidth, outsideHeight
}

// attach allocates the front buffer for a bound backend.
func (w *EbitenWindow) attach(viewportW, viewportH int) {
	w.viewportW = viewportW
	w.viewportH = viewportH
	w.front = ebiten.NewImage(viewportW, viewportH)
}

func (w *EbitenWindow) detach() {
	if w.front != nil {
		w.front.Deallocate()
		w.front = nil
	}
}

// present copies a composed frame into the front buffer.
func (w *EbitenWindow) present(frame *ebiten.Image) {
	if w.front == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.Blend = ebiten.BlendCopy
	w.front.DrawImage(frame, &op)
}
