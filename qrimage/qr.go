// Package qrimage renders QR codes as PNG images with a transparent
// background and opaque white modules.
package qrimage

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/skip2/go-qrcode"
)

const (
	// DefaultContent is the URL encoded when nothing else is configured.
	DefaultContent = "https://de-fund.vercel.app/"

	// DefaultOutput is where the generated image is written.
	DefaultOutput = "figures/website_qr_code_white_transparent.png"

	// BoxSize is the pixel width and height of one module.
	BoxSize = 10

	// Border is the quiet zone width, in modules. skip2 always draws
	// exactly this many.
	Border = 4

	// Level is the error correction level (~7% recovery).
	Level = qrcode.Low
)

var (
	// Foreground is the color of "on" modules.
	Foreground = color.White
	// Background is the color of "off" modules and the border before
	// it is made transparent.
	Background = color.Black
)

// ErrEmptyContent is returned when there is nothing to encode.
var ErrEmptyContent = errors.New("qrimage: empty content")

// Symbol is an encoded QR matrix without a quiet zone. Symbols are
// built by Encode.
type Symbol struct {
	Content string
	Version int
	// Modules is indexed [y][x]; true marks a foreground module.
	Modules [][]bool

	code *qrcode.QRCode
}

// Size returns the number of modules per side.
func (s *Symbol) Size() int {
	return len(s.Modules)
}

// Encode encodes content at the smallest QR version able to hold it.
func Encode(content string) (*Symbol, error) {
	if content == "" {
		return nil, ErrEmptyContent
	}

	q, err := qrcode.New(content, Level)
	if err != nil {
		return nil, fmt.Errorf("encoding %d bytes: %w", len(content), err)
	}
	q.ForegroundColor = Foreground
	q.BackgroundColor = Background

	return &Symbol{
		Content: content,
		Version: q.VersionNumber,
		Modules: trimQuietZone(q.Bitmap()),
		code:    q,
	}, nil
}

// trimQuietZone drops the Border modules skip2 draws around the symbol.
func trimQuietZone(bitmap [][]bool) [][]bool {
	inner := bitmap[Border : len(bitmap)-Border]
	for i, row := range inner {
		inner[i] = row[Border : len(row)-Border]
	}
	return inner
}
