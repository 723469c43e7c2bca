package splat

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// maxEbitenTextureSize is the largest texture edge accepted for upload.
const maxEbitenTextureSize = 16384

// EbitenBackend renders through Ebitengine. Frames are composed on an
// offscreen image of viewport size and handed to an EbitenWindow on
// EndFrame, which scales them to the physical window.
type EbitenBackend struct {
	win    *EbitenWindow
	target *ebiten.Image
	verts  []ebiten.Vertex
}

// NewEbitenBackend creates an unbound Ebitengine backend.
func NewEbitenBackend() *EbitenBackend {
	return &EbitenBackend{}
}

type ebitenTexture struct {
	img  *ebiten.Image
	w, h int
}

func (t *ebitenTexture) Size() (int, int) {
	return t.w, t.h
}

// Bind attaches to win, which must be an *EbitenWindow.
func (b *EbitenBackend) Bind(win Window, viewportW, viewportH int) error {
	ew, ok := win.(*EbitenWindow)
	if !ok || ew == nil {
		return fmt.Errorf("ebiten backend: window %T is not an *EbitenWindow: %w", win, ErrWindowBinding)
	}
	if viewportW > maxEbitenTextureSize || viewportH > maxEbitenTextureSize {
		return fmt.Errorf("ebiten backend: viewport %dx%d too large: %w", viewportW, viewportH, ErrWindowBinding)
	}
	b.win = ew
	b.target = ebiten.NewImage(viewportW, viewportH)
	ew.attach(viewportW, viewportH)
	return nil
}

// NewTexture uploads img as an ebiten.Image.
func (b *EbitenBackend) NewTexture(img *image.NRGBA) (Texture, error) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w > maxEbitenTextureSize || h > maxEbitenTextureSize {
		return nil, fmt.Errorf("ebiten backend: texture %dx%d exceeds %d", w, h, maxEbitenTextureSize)
	}
	return &ebitenTexture{img: ebiten.NewImageFromImage(img), w: w, h: h}, nil
}

// DeleteTexture deallocates the texture's GPU image.
func (b *EbitenBackend) DeleteTexture(tex Texture) {
	if t, ok := tex.(*ebitenTexture); ok && t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}

// BeginFrame clears the offscreen target.
func (b *EbitenBackend) BeginFrame(clear Color) {
	b.target.Fill(clear.toRGBA())
}

// DrawTriangles converts normalized UVs to source pixels and submits one
// DrawTriangles32 call.
func (b *EbitenBackend) DrawTriangles(tex Texture, verts []Vertex, inds []uint32, blend BlendMode) {
	t, ok := tex.(*ebitenTexture)
	if !ok || t.img == nil {
		return
	}
	tw, th := float32(t.w), float32(t.h)
	b.verts = b.verts[:0]
	for i := range verts {
		v := &verts[i]
		b.verts = append(b.verts, ebiten.Vertex{
			DstX:   v.DstX,
			DstY:   v.DstY,
			SrcX:   v.U * tw,
			SrcY:   v.V * th,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: v.A,
		})
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	b.target.DrawTriangles32(b.verts, inds, t.img, &triOp)
}

// EndFrame hands the composed frame to the window.
func (b *EbitenBackend) EndFrame() error {
	if b.win == nil {
		return fmt.Errorf("ebiten backend: present while unbound: %w", ErrWindowBinding)
	}
	b.win.present(b.target)
	return nil
}

// ReadFrame reads back the last presented frame.
func (b *EbitenBackend) ReadFrame() ([]byte, int, int) {
	if b.win == nil || b.win.front == nil {
		return nil, 0, 0
	}
	bounds := b.target.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix := make([]byte, 4*w*h)
	b.win.front.ReadPixels(pix)
	return pix, w, h
}

// Unbind releases the offscreen target and detaches from the window.
func (b *EbitenBackend) Unbind() {
	if b.target != nil {
		b.target.Deallocate()
		b.target = nil
	}
	if b.win != nil {
		b.win.detach()
		b.win = nil
	}
}

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (m BlendMode) EbitenBlend() ebiten.Blend {
	switch m {
	case BlendNormal:
		return ebiten.BlendSourceOver
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}
