package panel_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/paperdash/internal/panel"
)

var palette = color.Palette{color.White, color.Black}

func TestPack(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 16, 2), palette)
	img.SetColorIndex(0, 0, 1)
	img.SetColorIndex(9, 1, 1)

	buf, err := panel.Pack(img, 16, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x00, 0x00, 0x40}, buf)
}

func TestPackPadsRows(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 10, 1), palette)
	img.SetColorIndex(9, 0, 1)

	buf, err := panel.Pack(img, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x40}, buf)
}

func TestPackRotatesPortrait(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 2, 3), palette)
	img.SetColorIndex(1, 0, 1) // top right
	img.SetColorIndex(0, 2, 1) // bottom left

	buf, err := panel.Pack(img, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x20}, buf)
}

func TestPackSizeMismatch(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
	_, err := panel.Pack(img, 8, 2)
	assert.ErrorContains(t, err, "image is 4x4")
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "dashboard.png")
	img := image.NewPaletted(image.Rect(0, 0, 4, 4), palette)
	img.SetColorIndex(2, 2, 1)

	require.NoError(t, panel.Show(&panel.FileSink{Path: path}, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	r, _, _, _ := decoded.At(2, 2).RGBA()
	assert.Zero(t, r)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestRawSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bin")
	img := image.NewPaletted(image.Rect(0, 0, 8, 2), palette)
	img.SetColorIndex(7, 1, 1)

	require.NoError(t, panel.Show(&panel.RawSink{Path: path, Width: 8, Height: 2}, img))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01}, data)
}

type recordingPanel struct {
	calls      []string
	displayErr error
}

func (p *recordingPanel) Init() error { p.calls = append(p.calls, "init"); return nil }
func (p *recordingPanel) Display(image.Image) error {
	p.calls = append(p.calls, "display")
	return p.displayErr
}
func (p *recordingPanel) Sleep() error { p.calls = append(p.calls, "sleep"); return nil }

func TestShowSleepsAfterDisplayError(t *testing.T) {
	p := &recordingPanel{displayErr: errors.New("busy pin timeout")}
	err := panel.Show(p, image.NewPaletted(image.Rect(0, 0, 1, 1), palette))

	assert.ErrorContains(t, err, "busy pin timeout")
	assert.Equal(t, []string{"init", "display", "sleep"}, p.calls)
}
