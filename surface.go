package splat

import (
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"math"

	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// PixelFormat describes the byte layout of a Surface's pixel buffer.
type PixelFormat uint8

const (
	PixelFormatUnknown PixelFormat = iota
	PixelFormatRGBA8               // 4 bytes per pixel, straight alpha
	PixelFormatBGRA8               // 4 bytes per pixel, straight alpha
	PixelFormatRGB8                // 3 bytes per pixel, opaque
)

// BytesPerPixel returns the size of one pixel, or 0 for unknown formats.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGBA8, PixelFormatBGRA8:
		return 4
	case PixelFormatRGB8:
		return 3
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGBA8:
		return "RGBA8"
	case PixelFormatBGRA8:
		return "BGRA8"
	case PixelFormatRGB8:
		return "RGB8"
	default:
		return fmt.Sprintf("PixelFormat(%d)", uint8(f))
	}
}

// Surface is a fully decoded pixel buffer in CPU memory. It is the only
// input to Context.CreateImage. Stride is the byte length of one row; zero
// means tightly packed.
type Surface struct {
	Width, Height int
	Stride        int
	Format        PixelFormat
	Pix           []byte
}

// rowStride returns the effective stride.
func (s *Surface) rowStride() int {
	if s.Stride > 0 {
		return s.Stride
	}
	return s.Width * s.Format.BytesPerPixel()
}

// maxSurfaceRowBytes bounds the width in bytes, the stride, and the row
// count of a surface so that buffer arithmetic cannot overflow int.
const maxSurfaceRowBytes = math.MaxInt32

// validate checks dimensions, format, and buffer length.
func (s *Surface) validate() error {
	if s == nil {
		return fmt.Errorf("nil surface: %w", ErrResourceCreation)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("surface size %dx%d: %w", s.Width, s.Height, ErrResourceCreation)
	}
	bpp := s.Format.BytesPerPixel()
	if bpp == 0 {
		return fmt.Errorf("unsupported pixel format %v: %w", s.Format, ErrResourceCreation)
	}
	if s.Width > maxSurfaceRowBytes/bpp || s.Height > maxSurfaceRowBytes || s.Stride > maxSurfaceRowBytes {
		return fmt.Errorf("surface %dx%d stride %d too large: %w", s.Width, s.Height, s.Stride, ErrResourceCreation)
	}
	stride := s.rowStride()
	if stride < s.Width*bpp {
		return fmt.Errorf("stride %d shorter than row of %d bytes: %w", stride, s.Width*bpp, ErrResourceCreation)
	}
	need := int64(stride)*int64(s.Height-1) + int64(s.Width*bpp)
	if int64(len(s.Pix)) < need {
		return fmt.Errorf("pixel buffer holds %d bytes, need %d: %w", len(s.Pix), need, ErrResourceCreation)
	}
	return nil
}

// toNRGBA converts the surface into a tightly packed straight-alpha image.
// The surface must already be valid.
func (s *Surface) toNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.Width, s.Height))
	stride := s.rowStride()
	for y := 0; y < s.Height; y++ {
		src := s.Pix[y*stride:]
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < s.Width; x++ {
			d := dst[x*4 : x*4+4]
			switch s.Format {
			case PixelFormatRGBA8:
				copy(d, src[x*4:x*4+4])
			case PixelFormatBGRA8:
				p := src[x*4 : x*4+4]
				d[0], d[1], d[2], d[3] = p[2], p[1], p[0], p[3]
			case PixelFormatRGB8:
				p := src[x*3 : x*3+3]
				d[0], d[1], d[2], d[3] = p[0], p[1], p[2], 0xff
			}
		}
	}
	return img
}

// SurfaceFromImage converts any image.Image into an RGBA8 surface.
func SurfaceFromImage(img image.Image) *Surface {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(nrgba, nrgba.Bounds(), img, b.Min, xdraw.Src)
	}
	return &Surface{
		Width:  b.Dx(),
		Height: b.Dy(),
		Stride: nrgba.Stride,
		Format: PixelFormatRGBA8,
		Pix:    nrgba.Pix,
	}
}

// DecodeSurface decodes PNG, GIF, JPEG, BMP, or WebP data into an RGBA8
// surface.
func DecodeSurface(r io.Reader) (*Surface, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("splat: decode image: %w", err)
	}
	logger.Debug("decoded image", "format", format,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return SurfaceFromImage(img), nil
}
