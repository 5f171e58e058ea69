package panel

import (
	"fmt"
	"image"
	"image/color"
)

// Pack converts img into the panel's frame buffer: one bit per pixel, rows
// padded to whole bytes, most significant bit first, set bits black.
// An image whose dimensions are the panel's swapped is rotated 90 degrees
// counter-clockwise first, so portrait layouts fit a landscape panel.
func Pack(img image.Image, width, height int) ([]byte, error) {
	b := img.Bounds()
	var at func(x, y int) color.Color
	switch {
	case b.Dx() == width && b.Dy() == height:
		at = func(x, y int) color.Color { return img.At(b.Min.X+x, b.Min.Y+y) }
	case b.Dx() == height && b.Dy() == width:
		// Target (x, y) comes from source (w-1-y, x) of the portrait image.
		at = func(x, y int) color.Color { return img.At(b.Min.X+b.Dx()-1-y, b.Min.Y+x) }
	default:
		return nil, fmt.Errorf("image is %dx%d, panel is %dx%d", b.Dx(), b.Dy(), width, height)
	}

	stride := (width + 7) / 8
	buf := make([]byte, stride*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if isBlack(at(x, y)) {
				buf[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return buf, nil
}

func isBlack(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}
