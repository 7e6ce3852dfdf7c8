package render

import (
	"bytes"
	"fmt"
	"image/color"

	svg "github.com/ajstarks/svgo"
)

func hexRGB(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (t textNode) style() string {
	weight := "normal"
	if t.weight == Bold {
		weight = "bold"
	}
	return fmt.Sprintf("font-family:Go,sans-serif;font-size:%gpx;font-weight:%s;fill:%s", t.size, weight, hexRGB(t.fill))
}

// document serializes the full layout tree — shapes and text — into an SVG
// document. This is the card's vector form, served by the preview surface.
func (l *layout) document() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(CanvasWidth, CanvasHeight, 0, 0, CanvasWidth, CanvasHeight)
	for _, r := range l.rects {
		canvas.Rect(r.x, r.y, r.w, r.h, "fill:"+hexRGB(r.fill))
	}
	for _, t := range l.texts {
		canvas.Text(t.x, t.y, t.text, t.style())
	}
	canvas.End()
	return buf.Bytes()
}

// shapes serializes only the rect nodes. The raster path consumes this
// subset because oksvg has no <text> support; text nodes are drawn directly
// onto the canvas in a second pass (see raster.go).
func (l *layout) shapes() []byte {
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(CanvasWidth, CanvasHeight, 0, 0, CanvasWidth, CanvasHeight)
	for _, r := range l.rects {
		canvas.Rect(r.x, r.y, r.w, r.h, "fill:"+hexRGB(r.fill))
	}
	canvas.End()
	return buf.Bytes()
}
