package splat

import "fmt"

// Image is a GPU-resident texture created from a decoded Surface. Instances
// borrow images; the image counts them and refuses destruction while any
// remain.
type Image struct {
	ID        uint32
	width     int
	height    int
	tex       Texture
	refs      int
	ctx       *Context
	destroyed bool
}

// Size returns the image's pixel width and height.
func (img *Image) Size() (w, h int) {
	if img.ctx != nil && img.ctx.debug {
		debugCheckImage(img, "Size")
	}
	return img.width, img.height
}

// ImageSize returns img's pixel width and height.
func ImageSize(img *Image) (w, h int) {
	return img.Size()
}

// RefCount returns the number of live instances referencing img.
func (img *Image) RefCount() int {
	return img.refs
}

// Texture returns the backend texture, or nil once destroyed.
func (img *Image) Texture() Texture {
	return img.tex
}

// IsDestroyed reports whether img has been destroyed.
func (img *Image) IsDestroyed() bool {
	return img.destroyed
}

// CreateImage uploads s to GPU memory and returns a handle to it. It fails
// with ErrResourceCreation if the surface is malformed, its pixel format is
// unsupported, or the backend cannot allocate the texture.
func (c *Context) CreateImage(s *Surface) (*Image, error) {
	if err := c.checkPrepared("create image"); err != nil {
		return nil, err
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("splat: create image: %w", err)
	}
	tex, err := c.backend.NewTexture(s.toNRGBA())
	if err != nil {
		return nil, fmt.Errorf("splat: create image: %w: %w", ErrResourceCreation, err)
	}
	img := &Image{
		ID:     c.newID(),
		width:  s.Width,
		height: s.Height,
		tex:    tex,
		ctx:    c,
	}
	c.liveImages++
	logger.Debug("image created", "id", img.ID, "width", s.Width, "height", s.Height, "format", s.Format)
	return img, nil
}

// DestroyImage releases img's GPU memory. It returns ErrImageInUse, leaving
// the image intact, while instances still reference it. Destroying a nil or
// already destroyed image is undefined by contract: it is ignored normally
// and panics in debug mode. Callers should drop the handle afterwards.
func (c *Context) DestroyImage(img *Image) error {
	if img == nil || img.destroyed {
		if c.debug {
			panic("splat debug: DestroyImage on nil or destroyed image")
		}
		return nil
	}
	if img.ctx != c {
		if c.debug {
			panic("splat debug: DestroyImage on image from another context")
		}
		return fmt.Errorf("splat: destroy image %d: %w", img.ID, ErrInvalidHandle)
	}
	if img.refs > 0 {
		logger.Warn("image destroy refused", "id", img.ID, "refs", img.refs)
		return fmt.Errorf("splat: destroy image %d (%d refs): %w", img.ID, img.refs, ErrImageInUse)
	}
	c.backend.DeleteTexture(img.tex)
	img.tex = nil
	img.destroyed = true
	c.liveImages--
	logger.Debug("image destroyed", "id", img.ID)
	return nil
}
