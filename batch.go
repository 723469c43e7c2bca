package splat

// batchKey groups draw commands that can be submitted in a single draw call.
type batchKey struct {
	tex   Texture
	blend BlendMode
}

func commandBatchKey(cmd *drawCommand) batchKey {
	return batchKey{tex: cmd.tex, blend: cmd.blend}
}

// submitBatches iterates sorted commands, coalescing consecutive same-key
// quads into a single DrawTriangles call. Non-adjacent commands are never
// merged, so overlapping quads keep their painter's order. Returns the
// number of draw calls issued.
func (c *Context) submitBatches() int {
	if len(c.commands) == 0 {
		return 0
	}

	c.batchVerts = c.batchVerts[:0]
	c.batchInds = c.batchInds[:0]

	drawCalls := 0
	current := commandBatchKey(&c.commands[0])
	for i := range c.commands {
		cmd := &c.commands[i]
		key := commandBatchKey(cmd)
		if key != current {
			if c.flushBatch(current) {
				drawCalls++
			}
			current = key
		}
		c.appendQuad(cmd)
	}
	if c.flushBatch(current) {
		drawCalls++
	}
	return drawCalls
}

// appendQuad appends 4 vertices and 6 indices for a single instance.
func (c *Context) appendQuad(cmd *drawCommand) {
	t := &cmd.transform // [a, b, c, d, tx, ty]
	r := &cmd.region

	// 4 local positions: TL, TR, BL, BR
	lx := [4]float64{0, cmd.w, 0, cmd.w}
	ly := [4]float64{0, 0, cmd.h, cmd.h}
	u := [4]float32{float32(r.U0), float32(r.U1), float32(r.U0), float32(r.U1)}
	v := [4]float32{float32(r.V0), float32(r.V0), float32(r.V1), float32(r.V1)}

	a, b, cc, d, tx, ty := t[0], t[1], t[2], t[3], t[4], t[5]
	base := uint32(len(c.batchVerts))

	for i := 0; i < 4; i++ {
		c.batchVerts = append(c.batchVerts, Vertex{
			DstX: float32(a*lx[i] + cc*ly[i] + tx),
			DstY: float32(b*lx[i] + d*ly[i] + ty),
			U:    u[i],
			V:    v[i],
			R:    cmd.color.R,
			G:    cmd.color.G,
			B:    cmd.color.B,
			A:    cmd.color.A,
		})
	}

	// Two triangles: TL-TR-BL, TR-BR-BL
	c.batchInds = append(c.batchInds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// flushBatch submits accumulated vertices as one draw call and reports
// whether anything was drawn.
func (c *Context) flushBatch(key batchKey) bool {
	if len(c.batchVerts) == 0 {
		return false
	}
	c.backend.DrawTriangles(key.tex, c.batchVerts, c.batchInds, key.blend)
	c.batchVerts = c.batchVerts[:0]
	c.batchInds = c.batchInds[:0]
	return true
}

// countBatches counts contiguous groups of commands sharing the same batchKey.
func countBatches(commands []drawCommand) int {
	if len(commands) == 0 {
		return 0
	}
	count := 1
	prev := commandBatchKey(&commands[0])
	for i := 1; i < len(commands); i++ {
		cur := commandBatchKey(&commands[i])
		if cur != prev {
			count++
			prev = cur
		}
	}
	return count
}
