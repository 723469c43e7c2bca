package splat

import "testing"

const (
	testViewW = 640
	testViewH = 480
)

// newTestContext prepares a context on a recording backend.
func newTestContext(t *testing.T) (*Context, *NullBackend, *NullWindow) {
	t.Helper()
	b := NewNullBackend()
	w := NewNullWindow(testViewW, testViewH)
	ctx, err := Prepare(b, w, testViewW, testViewH)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	t.Cleanup(func() { ctx.SetDebugMode(false) })
	return ctx, b, w
}

// solidSurface returns a w x h RGBA8 surface filled with one color.
func solidSurface(w, h int, r, g, b, a byte) *Surface {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, a
	}
	return &Surface{Width: w, Height: h, Format: PixelFormatRGBA8, Pix: pix}
}

// newTestScene creates a canvas with one layer and one w x h image.
func newTestScene(t *testing.T, ctx *Context, w, h int) (*Canvas, *Layer, *Image) {
	t.Helper()
	cv, err := ctx.CreateCanvas()
	if err != nil {
		t.Fatalf("CreateCanvas: %v", err)
	}
	l, err := ctx.CreateLayer(cv)
	if err != nil {
		t.Fatalf("CreateLayer: %v", err)
	}
	img, err := ctx.CreateImage(solidSurface(w, h, 255, 255, 255, 255))
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	return cv, l, img
}

func mustInstance(t *testing.T, ctx *Context, img *Image, l *Layer, x, y float64) *Instance {
	t.Helper()
	inst, err := ctx.CreateInstance(img, l, x, y, 0, 0, 1, 1, 0)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	return inst
}

func mustRender(t *testing.T, ctx *Context, cv *Canvas) {
	t.Helper()
	if err := ctx.Render(cv); err != nil {
		t.Fatalf("Render: %v", err)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
