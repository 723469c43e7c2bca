package splat

import "errors"

var (
	// ErrResourceCreation reports that an image could not be uploaded to the
	// backend: unsupported pixel format, empty or short pixel buffer, or a
	// backend allocation failure.
	ErrResourceCreation = errors.New("splat: resource creation failed")

	// ErrInvalidHandle reports use of a nil or destroyed handle.
	ErrInvalidHandle = errors.New("splat: invalid handle")

	// ErrInvalidTextureRegion reports texture coordinates outside [0, 1] or a
	// region with zero width or height.
	ErrInvalidTextureRegion = errors.New("splat: invalid texture region")

	// ErrWindowBinding reports that the backend could not be bound to the
	// given window, or that the viewport size is not positive.
	ErrWindowBinding = errors.New("splat: window binding failed")

	// ErrImageInUse reports an attempt to destroy an image that instances
	// still reference. The image stays alive.
	ErrImageInUse = errors.New("splat: image still referenced by instances")

	// ErrNotPrepared reports use of a context after Close.
	ErrNotPrepared = errors.New("splat: context not prepared")
)

// ErrStop is returned from a tick function to end a window's run loop
// cleanly.
var ErrStop = errors.New("splat: stop")
