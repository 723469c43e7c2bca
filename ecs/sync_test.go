package ecs

import (
	"testing"

	"github.com/phanxgames/splat"

	"github.com/yohamta/donburi"
)

func newTestInstance(t *testing.T) (*splat.Context, *splat.Instance) {
	t.Helper()
	ctx, err := splat.Prepare(splat.NewNullBackend(), splat.NewNullWindow(640, 480), 640, 480)
	if err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	cv, _ := ctx.CreateCanvas()
	layer, _ := ctx.CreateLayer(cv)
	img, err := ctx.CreateImage(&splat.Surface{
		Width: 2, Height: 2, Format: splat.PixelFormatRGBA8, Pix: make([]byte, 16),
	})
	if err != nil {
		t.Fatalf("CreateImage: %v", err)
	}
	inst, err := ctx.CreateInstance(img, layer, 5, 6, 0, 0, 1, 1, 0)
	if err != nil {
		t.Fatalf("CreateInstance: %v", err)
	}
	return ctx, inst
}

func TestNewSpriteEntity_SeedsTransform(t *testing.T) {
	_, inst := newTestInstance(t)
	world := donburi.NewWorld()

	e := NewSpriteEntity(world, inst)
	tr := Transform.Get(world.Entry(e))
	if tr.X != 5 || tr.Y != 6 {
		t.Errorf("transform position = (%v, %v), want (5, 6)", tr.X, tr.Y)
	}
	if tr.ScaleX != 1 || tr.ScaleY != 1 {
		t.Errorf("transform scale = (%v, %v), want (1, 1)", tr.ScaleX, tr.ScaleY)
	}
}

func TestSyncInstances_AppliesTransform(t *testing.T) {
	_, inst := newTestInstance(t)
	world := donburi.NewWorld()
	e := NewSpriteEntity(world, inst)

	tr := Transform.Get(world.Entry(e))
	tr.X = 100
	tr.Y = 50
	tr.Flags = splat.FlagMirrorX

	SyncInstances(world)

	x, y := inst.Position()
	if x != 100 || y != 50 {
		t.Errorf("instance position = (%v, %v), want (100, 50)", x, y)
	}
	if inst.Flags() != splat.FlagMirrorX {
		t.Errorf("instance flags = %v, want FlagMirrorX", inst.Flags())
	}
}

func TestSyncInstances_RemovesDestroyed(t *testing.T) {
	ctx, inst := newTestInstance(t)
	world := donburi.NewWorld()
	e := NewSpriteEntity(world, inst)

	ctx.DestroyInstance(inst)
	SyncInstances(world)

	if world.Valid(e) {
		t.Error("entity for destroyed instance should be removed")
	}
}
