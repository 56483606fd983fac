package qrimage

import (
	"image"

	"github.com/disintegration/imaging"
)

// Render draws sym with each module as a BoxSize square, foreground
// white on a black background, inside a Border module quiet zone.
func Render(sym *Symbol) image.Image {
	return sym.code.Image(-BoxSize)
}

// MakeTransparent converts img to NRGBA and clears every pure black
// pixel to fully transparent. Other pixels keep their color and alpha.
func MakeTransparent(img image.Image) *image.NRGBA {
	out := imaging.Clone(img)

	for i := 0; i+3 < len(out.Pix); i += 4 {
		px := out.Pix[i : i+4 : i+4]
		if px[0] == 0 && px[1] == 0 && px[2] == 0 {
			px[3] = 0
		}
	}
	return out
}
