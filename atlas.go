package petal

import (
	"encoding/json"
	"fmt"
	"image"
)

// AtlasRegion is a named sub-rectangle of one atlas page.
type AtlasRegion struct {
	Page   int             // index into Atlas.Pages
	Bounds image.Rectangle // pixel rect within the page
}

// Atlas is a parsed TexturePacker sheet: page image paths plus named regions.
// Image attributes address a region as "sheet.json#name".
type Atlas struct {
	// Pages holds the page image paths, relative to the atlas file.
	Pages   []string
	regions map[string]AtlasRegion
}

// Region returns the region for name.
func (a *Atlas) Region(name string) (AtlasRegion, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// NumRegions returns the number of named regions.
func (a *Atlas) NumRegions() int {
	return len(a.regions)
}

// ParseAtlas parses TexturePacker JSON. Supports both the hash format (single
// "frames" object with the page named by meta.image) and the array format
// ("textures" array with per-page frame lists).
func ParseAtlas(jsonData []byte) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("petal: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{regions: make(map[string]AtlasRegion)}

	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if probe.Meta.Image == "" {
			return nil, fmt.Errorf("petal: atlas JSON has no meta.image")
		}
		atlas.Pages = []string{probe.Meta.Image}
		if err := parseHashFrames(probe.Frames, 0, atlas); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("petal: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

func parseHashFrames(raw json.RawMessage, page int, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("petal: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRegion(f, page)
	}
	return nil
}

func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("petal: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		atlas.Pages = append(atlas.Pages, tex.Image)
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRegion(f, i)
		}
	}
	return nil
}

func frameToRegion(f jsonFrame, page int) AtlasRegion {
	return AtlasRegion{
		Page:   page,
		Bounds: image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H),
	}
}
