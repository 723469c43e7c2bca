package splat

import (
	"errors"
	"math"
	"testing"
)

func TestCreateInstance(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 64, 64)

	inst, err := ctx.CreateInstance(img, l, 12.5, -3, 0, 0, 1, 1, FlagMirrorY)
	if err != nil {
		t.Fatal(err)
	}
	if x, y := inst.Position(); x != 12.5 || y != -3 {
		t.Errorf("Position = (%v, %v)", x, y)
	}
	if inst.Flags() != FlagMirrorY {
		t.Errorf("Flags = %v", inst.Flags())
	}
	if inst.Image() != img || inst.Layer() != l {
		t.Error("instance should reference its image and layer")
	}
	if img.RefCount() != 1 || l.NumInstances() != 1 {
		t.Errorf("refs = %d, layer instances = %d", img.RefCount(), l.NumInstances())
	}
	if inst.Color != ColorWhite || inst.Alpha != 1 || !inst.Visible {
		t.Error("defaults: white, opaque, visible")
	}
}

func TestCreateInstance_InvalidRegion(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 64, 64)

	regions := []Region{
		{0, 0, 1.5, 1},
		{-0.1, 0, 1, 1},
		{0, 0, 1, math.NaN()},
		{0.5, 0, 0.5, 1}, // zero width
		{0, 0.2, 1, 0.2}, // zero height
	}
	for _, r := range regions {
		_, err := ctx.CreateInstanceRegion(img, l, 0, 0, r, 0)
		if !errors.Is(err, ErrInvalidTextureRegion) {
			t.Errorf("region %+v: err = %v, want ErrInvalidTextureRegion", r, err)
		}
	}
	if img.RefCount() != 0 || l.NumInstances() != 0 {
		t.Error("rejected instances must not take references")
	}
}

func TestCreateInstance_DestroyedImage(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 4, 4)
	if err := ctx.DestroyImage(img); err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.CreateInstance(img, l, 0, 0, 0, 0, 1, 1, 0); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("err = %v, want ErrInvalidHandle", err)
	}
}

func TestInstanceSetPositionExact(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 64, 64)
	inst := mustInstance(t, ctx, img, l, 0, 0)

	for _, p := range [][2]float64{{576, 0}, {-100.25, 1e6}, {0.1, 0.2}} {
		inst.SetPosition(p[0], p[1])
		if x, y := inst.Position(); x != p[0] || y != p[1] {
			t.Errorf("Position = (%v, %v), want %v", x, y, p)
		}
	}
}

func TestInstanceSetFlagsReplaces(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 64, 64)
	inst := mustInstance(t, ctx, img, l, 0, 0)

	inst.SetFlags(FlagMirrorX)
	inst.SetFlags(FlagMirrorY)
	if inst.Flags() != FlagMirrorY {
		t.Errorf("Flags = %v, want FlagMirrorY only", inst.Flags())
	}
	inst.SetFlags(0)
	if inst.Flags() != 0 {
		t.Errorf("Flags = %v, want 0", inst.Flags())
	}
}

func TestRegionMirroredLeavesStoredRegion(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 64, 64)
	r := Region{0.25, 0, 0.75, 0.5}
	inst, err := ctx.CreateInstanceRegion(img, l, 0, 0, r, FlagMirrorX|FlagMirrorY)
	if err != nil {
		t.Fatal(err)
	}
	if inst.TextureRegion() != r {
		t.Errorf("TextureRegion = %+v, want %+v", inst.TextureRegion(), r)
	}
	m := r.mirrored(inst.Flags())
	if m != (Region{0.75, 0.5, 0.25, 0}) {
		t.Errorf("mirrored = %+v", m)
	}
	// Reserved bits are ignored.
	if r.mirrored(Flags(1<<7)) != r {
		t.Error("reserved flag bits should not affect sampling")
	}
}

func TestInstanceSetTextureRegion(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 64, 32)
	inst := mustInstance(t, ctx, img, l, 0, 0)

	if err := inst.SetTextureRegion(Region{0, 0, 0.5, 0.5}); err != nil {
		t.Fatal(err)
	}
	if w, h := inst.Size(); w != 32 || h != 16 {
		t.Errorf("Size = %vx%v, want 32x16", w, h)
	}
	if err := inst.SetTextureRegion(Region{0, 0, 2, 1}); !errors.Is(err, ErrInvalidTextureRegion) {
		t.Errorf("err = %v, want ErrInvalidTextureRegion", err)
	}
	if inst.TextureRegion() != (Region{0, 0, 0.5, 0.5}) {
		t.Error("invalid region must not replace the stored one")
	}
}

func TestDestroyInstance(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 8, 8)
	a := mustInstance(t, ctx, img, l, 0, 0)
	b := mustInstance(t, ctx, img, l, 0, 0)

	ctx.DestroyInstance(a)
	if !a.IsDestroyed() || a.Image() != nil || a.Layer() != nil {
		t.Error("destroyed instance should drop its references")
	}
	if img.RefCount() != 1 {
		t.Errorf("RefCount = %d, want 1", img.RefCount())
	}
	if got := l.Instances(); len(got) != 1 || got[0] != b {
		t.Error("layer should keep the surviving instance")
	}
	ctx.DestroyInstance(a) // ignored
	ctx.DestroyInstance(nil)
	if img.RefCount() != 1 {
		t.Error("double destroy must not release twice")
	}
}

func TestDestroyInstance_ForeignContext(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	other, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 8, 8)
	inst := mustInstance(t, ctx, img, l, 0, 0)

	other.DestroyInstance(inst)
	if inst.IsDestroyed() || inst.Layer() != l || img.RefCount() != 1 {
		t.Error("foreign destroy must leave the instance attached")
	}

	other.SetDebugMode(true)
	expectPanic(t, "foreign DestroyInstance", func() { other.DestroyInstance(inst) })

	ctx.DestroyInstance(inst)
	if !inst.IsDestroyed() || img.RefCount() != 0 {
		t.Error("owning context should still destroy the instance")
	}
}

func TestInstanceZIndex(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	_, l, img := newTestScene(t, ctx, 8, 8)
	inst := mustInstance(t, ctx, img, l, 0, 0)
	inst.SetZIndex(-4)
	if inst.ZIndex() != -4 {
		t.Errorf("ZIndex = %d", inst.ZIndex())
	}
}
