package qrimage

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
)

// Result is the output of one generation run.
type Result struct {
	Symbol *Symbol
	Image  *image.NRGBA
	PNG    []byte
}

// Generator runs the encode, render, recolor and PNG steps.
type Generator struct {
	log *slog.Logger
}

// NewGenerator returns a Generator logging to log. A nil log discards.
func NewGenerator(log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{log: log}
}

// Generate encodes content and returns the transparent image and its PNG bytes.
func (g *Generator) Generate(content string) (*Result, error) {
	sym, err := Encode(content)
	if err != nil {
		return nil, err
	}
	g.log.Debug("qr encoded", "version", sym.Version, "modules", sym.Size(), "level", "L")

	img := MakeTransparent(Render(sym))

	data, err := EncodePNG(img)
	if err != nil {
		return nil, err
	}
	g.log.Debug("png encoded", "width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "bytes", len(data))

	return &Result{Symbol: sym, Image: img, PNG: data}, nil
}

// Save generates the image for content and writes it to path.
func (g *Generator) Save(content, path string) (*Result, error) {
	res, err := g.Generate(content)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(path, res.PNG); err != nil {
		return nil, err
	}
	g.log.Info("qr image written", "path", path, "version", res.Symbol.Version, "bytes", len(res.PNG))
	return res, nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile creates or truncates path and writes data to it. The parent
// directory must already exist.
func WriteFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
