// Package raster renders a line of text into the bitmap format the UEFI
// capsule plugin displays during the update.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// FontScale divides the screen height to get the font pixel size.
const FontScale = 32

// ErrMissingFont means no font in the set can draw the text.
var ErrMissingFont = errors.New("missing sans fonts")

// Image is one rendered label.
type Image struct {
	Language string
	Font     string
	FontSize float64
	Width    int
	Height   int
	Extents  Extents

	// BMP is the uncompressed Windows bitmap.
	BMP []byte
}

// Renderer draws labels with an ordered set of fonts.
type Renderer struct {
	fonts []*Font
}

// NewRenderer returns a Renderer. The first font that covers the text wins.
func NewRenderer(fonts []*Font) *Renderer {
	return &Renderer{fonts: fonts}
}

// Fonts returns the font set in lookup order.
func (r *Renderer) Fonts() []*Font {
	return r.fonts
}

type shaped struct {
	font *Font
	face *font.Face
	run  Run
	ext  Extents
}

// measure shapes text with the first font that covers it and has ink.
func (r *Renderer) measure(lang, text string, screenHeight int) (*shaped, error) {
	runes := []rune(text)
	size := fixed.Int26_6(math.Round(FontSize(screenHeight) * 64))

	for _, f := range r.fonts {
		face := f.face()
		run := Shape(face, runes, lang, size)
		if !run.covers() {
			continue
		}
		ext := run.Extents()
		if ext.Empty() {
			continue
		}
		return &shaped{font: f, face: face, run: run, ext: ext}, nil
	}
	return nil, fmt.Errorf("%w: cannot render %q for %s", ErrMissingFont, text, lang)
}

// Measure returns the extents text would have at the size chosen for screenHeight.
func (r *Renderer) Measure(lang, text string, screenHeight int) (Extents, error) {
	s, err := r.measure(lang, text, screenHeight)
	if err != nil {
		return Extents{}, err
	}
	return s.ext, nil
}

// Rasterize draws text white on black on a canvas sized to its extents.
func (r *Renderer) Rasterize(lang, text string, screenHeight int) (*image.RGBA, Extents, *Font, error) {
	s, err := r.measure(lang, text, screenHeight)
	if err != nil {
		return nil, Extents{}, nil, err
	}

	width, height := s.ext.CanvasSize()
	canvas := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(canvas, canvas.Bounds(), image.Black, image.Point{}, draw.Src)
	s.run.Draw(canvas, s.face, s.ext.Origin(), image.White)
	return canvas, s.ext, s.font, nil
}

// Render rasterizes text and encodes it as a bitmap.
// The canvas goes through PNG first so the BMP always comes from a decoded,
// opaque RGB image.
func (r *Renderer) Render(lang, text string, screenHeight int) (*Image, error) {
	canvas, ext, f, err := r.Rasterize(lang, text, screenHeight)
	if err != nil {
		return nil, err
	}

	data, err := EncodeBMP(canvas)
	if err != nil {
		return nil, err
	}

	b := canvas.Bounds()
	return &Image{
		Language: lang,
		Font:     f.Name,
		FontSize: FontSize(screenHeight),
		Width:    b.Dx(),
		Height:   b.Dy(),
		Extents:  ext,
		BMP:      data,
	}, nil
}

// EncodeBMP converts img to a Windows bitmap via a lossless PNG round trip.
func EncodeBMP(img image.Image) ([]byte, error) {
	pngBuf := getBuffer()
	defer putBuffer(pngBuf)

	if err := png.Encode(pngBuf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	decoded, err := png.Decode(pngBuf)
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	bmpBuf := getBuffer()
	defer putBuffer(bmpBuf)

	if err := bmp.Encode(bmpBuf, decoded); err != nil {
		return nil, fmt.Errorf("encode bmp: %w", err)
	}
	return bytes.Clone(bmpBuf.Bytes()), nil
}

// DecodeBMP parses a bitmap produced by EncodeBMP.
func DecodeBMP(data []byte) (image.Image, error) {
	return bmp.Decode(bytes.NewReader(data))
}
