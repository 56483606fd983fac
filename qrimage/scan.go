package qrimage

import (
	"fmt"
	"image"
	"image/color"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// Scan decodes the QR code drawn by the opaque pixels of img. Opaque
// pixels are read as dark modules and transparent pixels as light ones,
// which turns the white-on-transparent pattern back into a standard
// dark-on-light symbol.
func Scan(img image.Image) (string, error) {
	b := img.Bounds()
	flat := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a == 0 {
				flat.SetGray(x, y, color.Gray{Y: 0xff})
			}
		}
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(flat)
	if err != nil {
		return "", fmt.Errorf("creating bitmap: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_PURE_BARCODE: true,
	}
	result, err := qrcode.NewQRCodeReader().Decode(bmp, hints)
	if err != nil {
		return "", fmt.Errorf("no QR code found in image: %w", err)
	}

	return result.GetText(), nil
}
