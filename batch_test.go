package splat

import "testing"

func TestBatchKey(t *testing.T) {
	texA, texB := &NullTexture{ID: 1}, &NullTexture{ID: 2}
	a := drawCommand{tex: texA, blend: BlendNormal}
	b := drawCommand{tex: texA, blend: BlendNormal}
	if commandBatchKey(&a) != commandBatchKey(&b) {
		t.Error("same texture + same blend should produce same batch key")
	}
	b.blend = BlendAdd
	if commandBatchKey(&a) == commandBatchKey(&b) {
		t.Error("different blend modes should produce different batch keys")
	}
	b = drawCommand{tex: texB, blend: BlendNormal}
	if commandBatchKey(&a) == commandBatchKey(&b) {
		t.Error("different textures should produce different batch keys")
	}
}

func TestCountBatches(t *testing.T) {
	texA, texB := &NullTexture{ID: 1}, &NullTexture{ID: 2}
	cmds := []drawCommand{
		{tex: texA}, {tex: texA}, {tex: texB}, {tex: texA}, {tex: texA, blend: BlendAdd},
	}
	if got := countBatches(cmds); got != 4 {
		t.Errorf("countBatches = %d, want 4", got)
	}
	if got := countBatches(nil); got != 0 {
		t.Errorf("countBatches(nil) = %d", got)
	}
}

func TestAppendQuadIndices(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	cmd := drawCommand{transform: identityTransform, w: 4, h: 2, region: FullRegion}
	ctx.appendQuad(&cmd)
	ctx.appendQuad(&cmd)

	if len(ctx.batchVerts) != 8 || len(ctx.batchInds) != 12 {
		t.Fatalf("verts = %d, inds = %d", len(ctx.batchVerts), len(ctx.batchInds))
	}
	want := []uint32{0, 1, 2, 1, 3, 2, 4, 5, 6, 5, 7, 6}
	for i, w := range want {
		if ctx.batchInds[i] != w {
			t.Fatalf("inds = %v, want %v", ctx.batchInds, want)
		}
	}
	if br := ctx.batchVerts[3]; br.DstX != 4 || br.DstY != 2 {
		t.Errorf("BR = (%v, %v), want (4, 2)", br.DstX, br.DstY)
	}
}

func TestSubmitBatchesEmpty(t *testing.T) {
	ctx, _, _ := newTestContext(t)
	ctx.commands = ctx.commands[:0]
	if n := ctx.submitBatches(); n != 0 {
		t.Errorf("draw calls = %d, want 0", n)
	}
}
