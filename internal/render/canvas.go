// Package render draws dashboards onto 1-bit bitmaps for the e-paper panel.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Panel dimensions in portrait orientation.
const (
	Width  = 480
	Height = 800
)

// Palette has white at index 0 so a fresh image starts blank.
var Palette = color.Palette{color.White, color.Black}

// Canvas is a two-colour drawing surface with the dashboard fonts.
type Canvas struct {
	img     *image.Paletted
	regular font.Face
	bold    font.Face
}

// NewCanvas returns a white canvas of the given size.
func NewCanvas(w, h int, regularSize, boldSize float64) (*Canvas, error) {
	regular, err := loadFace(goregular.TTF, regularSize)
	if err != nil {
		return nil, fmt.Errorf("loading regular font: %w", err)
	}
	bold, err := loadFace(gobold.TTF, boldSize)
	if err != nil {
		return nil, fmt.Errorf("loading bold font: %w", err)
	}
	return &Canvas{
		img:     image.NewPaletted(image.Rect(0, 0, w, h), Palette),
		regular: regular,
		bold:    bold,
	}, nil
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// Image returns the drawn bitmap.
func (c *Canvas) Image() *image.Paletted {
	return c.img
}

// Text draws s with its top-left corner at (x, y).
func (c *Canvas) Text(x, y int, s string, bold bool) {
	face := c.regular
	if bold {
		face = c.bold
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// TextWidth is the advance of s in pixels.
func (c *Canvas) TextWidth(s string, bold bool) int {
	face := c.regular
	if bold {
		face = c.bold
	}
	return font.MeasureString(face, s).Ceil()
}

// Fill paints r black.
func (c *Canvas) Fill(r image.Rectangle) {
	draw.Draw(c.img, r, image.Black, image.Point{}, draw.Src)
}

// Outline draws a one pixel black border just inside r.
func (c *Canvas) Outline(r image.Rectangle) {
	c.Fill(image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1))
	c.Fill(image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y))
	c.Fill(image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y))
	c.Fill(image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y))
}
