package render

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ContentType names the media type JPEG produces.
const ContentType = "image/jpeg"

const jpegQuality = 80

// JPEG renders a card into raster bytes at the fixed canvas size. The output
// depends only on the card and the fonts — no clock, no randomness — so
// identical inputs always produce identical bytes.
func JPEG(card Card, fonts *FontSet) ([]byte, error) {
	l, err := buildLayout(card, fonts)
	if err != nil {
		return nil, err
	}
	img, err := l.rasterize(fonts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("render: encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// SVG renders only the card's vector stage, for preview and debugging.
func SVG(card Card, fonts *FontSet) ([]byte, error) {
	l, err := buildLayout(card, fonts)
	if err != nil {
		return nil, err
	}
	return l.document(), nil
}

func (l *layout) rasterize(fonts *FontSet) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(l.shapes()))
	if err != nil {
		return nil, fmt.Errorf("render: parse layout svg: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	icon.SetTarget(0, 0, CanvasWidth, CanvasHeight)
	scanner := rasterx.NewScannerGV(CanvasWidth, CanvasHeight, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(CanvasWidth, CanvasHeight, scanner), 1.0)

	for _, t := range l.texts {
		face, err := fonts.Face(t.weight, t.size)
		if err != nil {
			return nil, err
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(t.fill),
			Face: face,
			Dot:  fixed.P(t.x, t.y),
		}
		d.DrawString(t.text)
		face.Close()
	}
	return img, nil
}
