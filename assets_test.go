package petal

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG returns a w x h opaque PNG.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// newTestFs returns an in-memory file system holding a small UI asset tree
// under "ui/".
func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "ui/icon.png", encodePNG(t, 8, 4), 0o644))
	require.NoError(t, afero.WriteFile(fs, "ui/sheets/ui.png", encodePNG(t, 256, 256), 0o644))
	require.NoError(t, afero.WriteFile(fs, "ui/sheets/ui.json", []byte(singlePageJSON), 0o644))
	require.NoError(t, afero.WriteFile(fs, "ui/broken.png", []byte("not a png"), 0o644))
	return fs
}

func TestAssetServerLoadIssuesStableHandles(t *testing.T) {
	a := NewAssetServer(newTestFs(t), "ui")

	h1 := a.Load("icon.png")
	h2 := a.Load("icon.png")
	h3 := a.Load("other.png")

	assert.False(t, h1.IsZero())
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, "icon.png", h1.Path())
	assert.Equal(t, 2, a.Pending())
	assert.True(t, a.Load("").IsZero())
}

func TestAssetServerPollDecodes(t *testing.T) {
	a := NewAssetServer(newTestFs(t), "ui")
	h := a.Load("icon.png")
	assert.Equal(t, AssetPending, a.State(h))
	_, ok := a.Bounds(h)
	assert.False(t, ok)

	assert.Equal(t, 1, a.Poll())
	assert.Equal(t, AssetLoaded, a.State(h))
	assert.Equal(t, 0, a.Pending())
	b, ok := a.Bounds(h)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 8, 4), b)
	assert.NoError(t, a.Err(h))
}

func TestAssetServerPollFailures(t *testing.T) {
	hook := captureLogs(t)
	a := NewAssetServer(newTestFs(t), "ui")
	missing := a.Load("missing.png")
	broken := a.Load("broken.png")

	assert.Equal(t, 0, a.Poll())
	assert.Equal(t, AssetFailed, a.State(missing))
	assert.Equal(t, AssetFailed, a.State(broken))
	assert.Error(t, a.Err(missing))
	assert.Contains(t, a.Err(broken).Error(), "decode image")

	w := warnings(hook)
	require.Len(t, w, 2)
	assert.Equal(t, "missing.png", w[0].Data["path"])
}

func TestAssetServerAtlasRegion(t *testing.T) {
	a := NewAssetServer(newTestFs(t), "ui")
	h := a.Load("sheets/ui.json#button_hover.png")
	missing := a.Load("sheets/ui.json#nope.png")
	captureLogs(t)

	assert.Equal(t, 1, a.Poll())
	b, ok := a.Bounds(h)
	require.True(t, ok)
	assert.Equal(t, image.Rect(64, 0, 96, 48), b)
	assert.Equal(t, AssetFailed, a.State(missing))
	assert.Contains(t, a.Err(missing).Error(), "not found")
}

func TestAssetServerForeignHandle(t *testing.T) {
	a := NewAssetServer(newTestFs(t), "ui")
	b := NewAssetServer(newTestFs(t), "ui")
	b.Load("x.png")
	h := b.Load("icon.png")

	assert.Equal(t, AssetUnknown, a.State(h))
	assert.Equal(t, AssetUnknown, a.State(ImageHandle{}))
	assert.Nil(t, a.Image(h))
}

func TestAssetStateString(t *testing.T) {
	assert.Equal(t, "pending", AssetPending.String())
	assert.Equal(t, "loaded", AssetLoaded.String())
	assert.Equal(t, "failed", AssetFailed.String())
	assert.Equal(t, "unknown", AssetUnknown.String())
	assert.Equal(t, "ImageHandle(none)", ImageHandle{}.String())
}
