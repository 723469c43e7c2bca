package splat

import (
	"encoding/json"
	"fmt"
	"sort"
)

// AtlasRegion is a named sprite inside an atlas page.
type AtlasRegion struct {
	Page   *Image
	Region Region // normalized against the page size
	Width  int    // frame width in pixels
	Height int    // frame height in pixels
}

// Atlas holds one or more atlas page images and a map of named regions.
// It lets many instances share one image, each showing a different crop.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages   []*Image
	regions map[string]AtlasRegion
}

// Region returns the region for the given name.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	r, ok := a.regions[name]
	if !ok {
		logger.Debug("atlas region not found", "name", name)
	}
	return r, ok
}

// Names returns all region names in sorted order.
func (a *Atlas) Names() []string {
	names := make([]string, 0, len(a.regions))
	for name := range a.regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of regions.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// LoadAtlas parses TexturePacker JSON data and associates the given page
// images. Supports both the hash format (single "frames" object) and the
// array format ("textures" array with per-page frame lists). Rotated frames
// are rejected because a texture region cannot express the rotation.
func LoadAtlas(jsonData []byte, pages []*Image) (*Atlas, error) {
	// Peek at the top-level keys to detect the format.
	var shape struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &shape); err != nil {
		return nil, fmt.Errorf("splat: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]AtlasRegion),
	}

	switch {
	case shape.Textures != nil:
		if err := parseArrayFormat(shape.Textures, atlas); err != nil {
			return nil, err
		}
	case shape.Frames != nil:
		if err := parseHashFrames(shape.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("splat: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("splat: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		r, err := frameToRegion(name, f, page, atlas.Pages)
		if err != nil {
			return err
		}
		atlas.regions[name] = r
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("splat: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		for name, f := range tex.Frames {
			r, err := frameToRegion(name, f, i, atlas.Pages)
			if err != nil {
				return err
			}
			atlas.regions[name] = r
		}
	}
	return nil
}

func frameToRegion(name string, f jsonFrame, page int, pages []*Image) (AtlasRegion, error) {
	if page >= len(pages) || pages[page] == nil {
		return AtlasRegion{}, fmt.Errorf("splat: atlas frame %q references missing page %d", name, page)
	}
	if f.Rotated {
		return AtlasRegion{}, fmt.Errorf("splat: atlas frame %q is rotated: %w", name, ErrInvalidTextureRegion)
	}
	img := pages[page]
	pw, ph := float64(img.width), float64(img.height)
	r := Region{
		U0: float64(f.Frame.X) / pw,
		V0: float64(f.Frame.Y) / ph,
		U1: float64(f.Frame.X+f.Frame.W) / pw,
		V1: float64(f.Frame.Y+f.Frame.H) / ph,
	}
	if err := r.Validate(); err != nil {
		return AtlasRegion{}, fmt.Errorf("splat: atlas frame %q: %w", name, err)
	}
	return AtlasRegion{Page: img, Region: r, Width: f.Frame.W, Height: f.Frame.H}, nil
}

// CreateInstanceFromAtlas creates an instance showing the named atlas region.
func (c *Context) CreateInstanceFromAtlas(a *Atlas, name string, layer *Layer, x, y float64, flags Flags) (*Instance, error) {
	r, ok := a.Region(name)
	if !ok {
		return nil, fmt.Errorf("splat: atlas region %q not found: %w", name, ErrInvalidTextureRegion)
	}
	return c.CreateInstanceRegion(r.Page, layer, x, y, r.Region, flags)
}
