package splat

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestCreateImage(t *testing.T) {
	ctx, b, _ := newTestContext(t)

	img, err := ctx.CreateImage(solidSurface(64, 32, 1, 2, 3, 4))
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	if w, h := img.Size(); w != 64 || h != 32 {
		t.Errorf("Size = %dx%d, want 64x32", w, h)
	}
	if w, h := ImageSize(img); w != 64 || h != 32 {
		t.Errorf("ImageSize = %dx%d, want 64x32", w, h)
	}
	if ctx.LiveImages() != 1 || b.LiveTextures != 1 {
		t.Errorf("live images = %d, textures = %d; want 1, 1", ctx.LiveImages(), b.LiveTextures)
	}
	tex := img.Texture().(*NullTexture)
	if !bytes.Equal(tex.Pix[:4], []byte{1, 2, 3, 4}) {
		t.Errorf("uploaded pixel = %v", tex.Pix[:4])
	}
	if img.RefCount() != 0 {
		t.Errorf("RefCount = %d, want 0", img.RefCount())
	}
}

func TestCreateImage_RejectsBadSurface(t *testing.T) {
	ctx, b, _ := newTestContext(t)

	_, err := ctx.CreateImage(&Surface{Width: 4, Height: 4, Format: PixelFormat(99), Pix: make([]byte, 64)})
	if !errors.Is(err, ErrResourceCreation) {
		t.Errorf("err = %v, want ErrResourceCreation", err)
	}
	_, err = ctx.CreateImage(&Surface{Width: 4, Height: 4, Format: PixelFormatRGBA8})
	if !errors.Is(err, ErrResourceCreation) {
		t.Errorf("empty buffer: err = %v, want ErrResourceCreation", err)
	}
	if ctx.LiveImages() != 0 || b.LiveTextures != 0 {
		t.Error("failed creation should not leave resources behind")
	}
}

func TestCreateImage_OversizedSurface(t *testing.T) {
	ctx, b, _ := newTestContext(t)

	for _, s := range []*Surface{
		{Width: math.MaxInt / 4, Height: 1, Format: PixelFormatRGBA8},
		{Width: math.MaxInt / 8, Height: math.MaxInt / 8, Stride: math.MaxInt / 2, Format: PixelFormatRGBA8},
	} {
		if _, err := ctx.CreateImage(s); !errors.Is(err, ErrResourceCreation) {
			t.Errorf("%dx%d stride %d: err = %v, want ErrResourceCreation", s.Width, s.Height, s.Stride, err)
		}
	}
	if ctx.LiveImages() != 0 || b.LiveTextures != 0 {
		t.Error("oversized surface should not allocate")
	}
}

func TestCreateImage_BackendAllocationFailure(t *testing.T) {
	ctx, b, _ := newTestContext(t)
	b.MaxTextureSize = 32

	_, err := ctx.CreateImage(solidSurface(64, 8, 0, 0, 0, 255))
	if !errors.Is(err, ErrResourceCreation) {
		t.Errorf("err = %v, want ErrResourceCreation", err)
	}
}

func TestDestroyImage_InUse(t *testing.T) {
	ctx, b, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 16, 16)
	inst := mustInstance(t, ctx, img, l, 0, 0)

	if err := ctx.DestroyImage(img); !errors.Is(err, ErrImageInUse) {
		t.Fatalf("err = %v, want ErrImageInUse", err)
	}
	if img.IsDestroyed() || b.LiveTextures != 1 {
		t.Error("refused destroy must leave the image intact")
	}

	ctx.DestroyInstance(inst)
	if img.RefCount() != 0 {
		t.Fatalf("RefCount = %d after DestroyInstance", img.RefCount())
	}
	if err := ctx.DestroyImage(img); err != nil {
		t.Fatalf("DestroyImage: %v", err)
	}
	if !img.IsDestroyed() || img.Texture() != nil {
		t.Error("image should be destroyed")
	}
	if b.LiveTextures != 0 || ctx.LiveImages() != 0 {
		t.Errorf("live textures = %d, images = %d; want 0", b.LiveTextures, ctx.LiveImages())
	}
}

func TestDestroyImage_TwiceIgnored(t *testing.T) {
	ctx, b, _ := newTestContext(t)
	img, _ := ctx.CreateImage(solidSurface(2, 2, 0, 0, 0, 0))
	if err := ctx.DestroyImage(img); err != nil {
		t.Fatal(err)
	}
	if err := ctx.DestroyImage(img); err != nil {
		t.Errorf("second destroy: %v", err)
	}
	if err := ctx.DestroyImage(nil); err != nil {
		t.Errorf("nil destroy: %v", err)
	}
	if b.LiveTextures != 0 || ctx.LiveImages() != 0 {
		t.Error("double destroy must not double-release")
	}
}

func TestDestroyImage_ForeignContext(t *testing.T) {
	ctx, b, _ := newTestContext(t)
	other, _, _ := newTestContext(t)
	img, err := ctx.CreateImage(solidSurface(2, 2, 0, 0, 0, 0))
	if err != nil {
		t.Fatal(err)
	}

	if err := other.DestroyImage(img); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("err = %v, want ErrInvalidHandle", err)
	}
	if img.IsDestroyed() || b.LiveTextures != 1 || ctx.LiveImages() != 1 {
		t.Error("foreign destroy must leave the image intact")
	}
	if other.LiveImages() != 0 {
		t.Errorf("other LiveImages = %d, want 0", other.LiveImages())
	}

	other.SetDebugMode(true)
	expectPanic(t, "foreign DestroyImage", func() { _ = other.DestroyImage(img) })
}

func TestCreateImage_AfterClose(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	ctx.Close()
	if _, err := ctx.CreateImage(solidSurface(2, 2, 0, 0, 0, 0)); !errors.Is(err, ErrNotPrepared) {
		t.Errorf("err = %v, want ErrNotPrepared", err)
	}
}
