package petal

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ImageHandle identifies an image known to an AssetServer. The zero handle
// means "no image". Handles are comparable; the same path always yields the
// same handle from one server.
type ImageHandle struct {
	id   uint32
	path string
}

// IsZero reports whether h is the zero handle.
func (h ImageHandle) IsZero() bool { return h.id == 0 }

// Path returns the path the handle was loaded from.
func (h ImageHandle) Path() string { return h.path }

func (h ImageHandle) String() string {
	if h.id == 0 {
		return "ImageHandle(none)"
	}
	return fmt.Sprintf("ImageHandle(%d %q)", h.id, h.path)
}

// AssetState is the load state of an ImageHandle.
type AssetState uint8

const (
	AssetUnknown AssetState = iota // handle was not issued by this server
	AssetPending                   // queued, decoded on the next Poll
	AssetLoaded
	AssetFailed
)

func (s AssetState) String() string {
	switch s {
	case AssetPending:
		return "pending"
	case AssetLoaded:
		return "loaded"
	case AssetFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type assetEntry struct {
	handle  ImageHandle
	state   AssetState
	decoded image.Image
	img     *ebiten.Image
	err     error
}

// AssetServer maps image paths to handles and decodes them from a file
// system. Load never blocks; decoding happens in Poll, which Scene.Update
// calls once per tick.
//
// A path of the form "sheet.json#name" addresses a region of a TexturePacker
// atlas; the atlas and its pages are read on first use.
type AssetServer struct {
	fs      afero.Fs
	root    string
	nextID  uint32
	entries map[string]*assetEntry
	pending []*assetEntry
	atlases map[string]*Atlas
	pages   map[string]image.Image
}

// NewAssetServer creates a server reading from fs. Paths are resolved
// relative to root.
func NewAssetServer(fs afero.Fs, root string) *AssetServer {
	return &AssetServer{
		fs:      fs,
		root:    root,
		entries: make(map[string]*assetEntry),
		atlases: make(map[string]*Atlas),
		pages:   make(map[string]image.Image),
	}
}

// Load returns the handle for p, queueing it for decoding if it is new.
// An empty path yields the zero handle.
func (a *AssetServer) Load(p string) ImageHandle {
	if p == "" {
		return ImageHandle{}
	}
	if e, ok := a.entries[p]; ok {
		return e.handle
	}
	a.nextID++
	e := &assetEntry{handle: ImageHandle{id: a.nextID, path: p}, state: AssetPending}
	a.entries[p] = e
	a.pending = append(a.pending, e)
	return e.handle
}

// State returns the load state of h.
func (a *AssetServer) State(h ImageHandle) AssetState {
	e := a.lookup(h)
	if e == nil {
		return AssetUnknown
	}
	return e.state
}

// Err returns the decode error for a failed handle.
func (a *AssetServer) Err(h ImageHandle) error {
	if e := a.lookup(h); e != nil {
		return e.err
	}
	return nil
}

// Bounds returns the pixel bounds of a loaded handle.
func (a *AssetServer) Bounds(h ImageHandle) (image.Rectangle, bool) {
	e := a.lookup(h)
	if e == nil || e.state != AssetLoaded {
		return image.Rectangle{}, false
	}
	return e.decoded.Bounds(), true
}

// Image returns the GPU image for a loaded handle, creating it on first use.
func (a *AssetServer) Image(h ImageHandle) *ebiten.Image {
	e := a.lookup(h)
	if e == nil || e.state != AssetLoaded {
		return nil
	}
	if e.img == nil {
		e.img = ebiten.NewImageFromImage(e.decoded)
	}
	return e.img
}

// Pending returns the number of handles waiting for Poll.
func (a *AssetServer) Pending() int {
	return len(a.pending)
}

// Poll decodes every pending handle. Failures are logged and mark the handle
// failed; the returned count is the number of handles that loaded.
func (a *AssetServer) Poll() int {
	loaded := 0
	for _, e := range a.pending {
		img, err := a.decode(e.handle.path)
		if err != nil {
			e.state = AssetFailed
			e.err = err
			logger.WithFields(logrus.Fields{
				"path": e.handle.path,
			}).WithError(err).Warn("[petal] image load failed")
			continue
		}
		e.state = AssetLoaded
		e.decoded = img
		loaded++
	}
	a.pending = a.pending[:0]
	return loaded
}

func (a *AssetServer) lookup(h ImageHandle) *assetEntry {
	if h.id == 0 {
		return nil
	}
	e, ok := a.entries[h.path]
	if !ok || e.handle != h {
		return nil
	}
	return e
}

func (a *AssetServer) decode(p string) (image.Image, error) {
	if sheet, region, ok := strings.Cut(p, "#"); ok {
		return a.decodeRegion(sheet, region)
	}
	return a.readImage(path.Join(a.root, p))
}

func (a *AssetServer) readImage(p string) (image.Image, error) {
	if img, ok := a.pages[p]; ok {
		return img, nil
	}
	f, err := a.fs.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", p, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}
	a.pages[p] = img
	return img, nil
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func (a *AssetServer) decodeRegion(sheet, name string) (image.Image, error) {
	atlas, err := a.atlas(sheet)
	if err != nil {
		return nil, err
	}
	r, ok := atlas.Region(name)
	if !ok {
		return nil, fmt.Errorf("atlas %s: region %q not found", sheet, name)
	}
	if r.Page < 0 || r.Page >= len(atlas.Pages) {
		return nil, fmt.Errorf("atlas %s: region %q references missing page %d", sheet, name, r.Page)
	}
	page, err := a.readImage(path.Join(a.root, path.Dir(sheet), atlas.Pages[r.Page]))
	if err != nil {
		return nil, fmt.Errorf("atlas %s: %w", sheet, err)
	}
	si, ok := page.(subImager)
	if !ok {
		return nil, fmt.Errorf("atlas %s: page image does not support sub-images", sheet)
	}
	return si.SubImage(r.Bounds), nil
}

func (a *AssetServer) atlas(sheet string) (*Atlas, error) {
	if at, ok := a.atlases[sheet]; ok {
		return at, nil
	}
	data, err := afero.ReadFile(a.fs, path.Join(a.root, sheet))
	if err != nil {
		return nil, fmt.Errorf("read atlas %s: %w", sheet, err)
	}
	at, err := ParseAtlas(data)
	if err != nil {
		return nil, err
	}
	a.atlases[sheet] = at
	return at, nil
}

// globalAssets mirrors the asset server of the most recently created Scene
// so the Image attribute can resolve paths without a Scene pointer. Only
// valid with a single Scene.
var globalAssets *AssetServer
