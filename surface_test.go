package splat

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"
)

func TestSurfaceValidate(t *testing.T) {
	tests := []struct {
		name string
		s    *Surface
	}{
		{"nil", nil},
		{"zero width", &Surface{Width: 0, Height: 4, Format: PixelFormatRGBA8, Pix: make([]byte, 16)}},
		{"unknown format", &Surface{Width: 2, Height: 2, Format: PixelFormatUnknown, Pix: make([]byte, 16)}},
		{"short buffer", &Surface{Width: 2, Height: 2, Format: PixelFormatRGBA8, Pix: make([]byte, 15)}},
		{"short stride", &Surface{Width: 2, Height: 2, Stride: 4, Format: PixelFormatRGBA8, Pix: make([]byte, 64)}},
		{"huge width", &Surface{Width: math.MaxInt / 4, Height: 1, Format: PixelFormatRGBA8}},
		{"huge width and stride", &Surface{Width: math.MaxInt / 8, Height: math.MaxInt / 8, Stride: math.MaxInt / 2, Format: PixelFormatRGBA8}},
		{"huge height", &Surface{Width: 1, Height: math.MaxInt, Format: PixelFormatRGB8, Pix: make([]byte, 3)}},
		{"huge stride", &Surface{Width: 1, Height: 2, Stride: math.MaxInt, Format: PixelFormatRGBA8, Pix: make([]byte, 4)}},
	}
	for _, tt := range tests {
		if err := tt.s.validate(); !errors.Is(err, ErrResourceCreation) {
			t.Errorf("%s: err = %v, want ErrResourceCreation", tt.name, err)
		}
	}

	ok := &Surface{Width: 2, Height: 2, Format: PixelFormatRGB8, Pix: make([]byte, 12)}
	if err := ok.validate(); err != nil {
		t.Errorf("valid RGB8 surface: %v", err)
	}
}

func TestSurfaceValidate_PaddedLastRowOptional(t *testing.T) {
	// The final row need not carry stride padding.
	s := &Surface{Width: 1, Height: 2, Stride: 8, Format: PixelFormatRGBA8, Pix: make([]byte, 12)}
	if err := s.validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestPixelFormatBytesPerPixel(t *testing.T) {
	if PixelFormatRGBA8.BytesPerPixel() != 4 || PixelFormatBGRA8.BytesPerPixel() != 4 {
		t.Error("4-byte formats")
	}
	if PixelFormatRGB8.BytesPerPixel() != 3 {
		t.Error("RGB8 should be 3 bytes")
	}
	if PixelFormatUnknown.BytesPerPixel() != 0 {
		t.Error("unknown format should be 0 bytes")
	}
	if PixelFormatBGRA8.String() != "BGRA8" {
		t.Errorf("String = %q", PixelFormatBGRA8.String())
	}
}

func TestToNRGBA_BGRASwapsChannels(t *testing.T) {
	s := &Surface{Width: 1, Height: 1, Format: PixelFormatBGRA8, Pix: []byte{10, 20, 30, 40}}
	img := s.toNRGBA()
	want := []byte{30, 20, 10, 40}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("pix = %v, want %v", img.Pix, want)
	}
}

func TestToNRGBA_RGB8IsOpaque(t *testing.T) {
	s := &Surface{Width: 2, Height: 1, Format: PixelFormatRGB8, Pix: []byte{1, 2, 3, 4, 5, 6}}
	img := s.toNRGBA()
	want := []byte{1, 2, 3, 255, 4, 5, 6, 255}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("pix = %v, want %v", img.Pix, want)
	}
}

func TestToNRGBA_HonorsStride(t *testing.T) {
	s := &Surface{
		Width: 1, Height: 2, Stride: 8, Format: PixelFormatRGBA8,
		Pix: []byte{1, 1, 1, 1, 9, 9, 9, 9, 2, 2, 2, 2},
	}
	img := s.toNRGBA()
	want := []byte{1, 1, 1, 1, 2, 2, 2, 2}
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("pix = %v, want %v", img.Pix, want)
	}
}

func TestDecodeSurface_PNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatal(err)
	}

	s, err := DecodeSurface(&buf)
	if err != nil {
		t.Fatalf("DecodeSurface: %v", err)
	}
	if s.Width != 3 || s.Height != 2 || s.Format != PixelFormatRGBA8 {
		t.Fatalf("surface = %dx%d %v", s.Width, s.Height, s.Format)
	}
	off := 1*s.rowStride() + 1*4
	if got := s.Pix[off : off+4]; !bytes.Equal(got, []byte{200, 100, 50, 255}) {
		t.Errorf("pixel (1,1) = %v", got)
	}
}

func TestDecodeSurface_Garbage(t *testing.T) {
	if _, err := DecodeSurface(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestSurfaceFromImage_SubImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(2, 2, color.RGBA{R: 255, A: 255})
	sub := src.SubImage(image.Rect(1, 1, 3, 3))

	s := SurfaceFromImage(sub)
	if s.Width != 2 || s.Height != 2 {
		t.Fatalf("size = %dx%d, want 2x2", s.Width, s.Height)
	}
	off := 1*s.rowStride() + 1*4
	if got := s.Pix[off : off+4]; !bytes.Equal(got, []byte{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want red", got)
	}
}
