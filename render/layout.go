package render

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/font"
)

// Canvas dimensions follow the og:image convention used by every major
// social crawler.
const (
	CanvasWidth  = 1200
	CanvasHeight = 630
)

const (
	marginX            = 80
	accentBarHeight    = 14
	secondaryBarHeight = 6

	titleSize       = 64.0
	titleTop        = 230
	titleLineHeight = 78
	maxTitleLines   = 3

	descSize       = 32.0
	descGap        = 20
	descLineHeight = 44
	maxDescLines   = 2

	footerSize       = 28.0
	footerRuleY      = CanvasHeight - 84
	footerBaseline   = CanvasHeight - 44
	footerRuleHeight = 4
	footerRuleWidth  = 120

	ellipsis = "…"
)

// Card is the renderer's input: resolved presentation metadata plus the site
// identity line for the footer strip. An empty Footer hides the strip.
type Card struct {
	Title                string
	Description          string
	AccentColor          string
	SecondaryAccentColor string
	TextColor            string
	BackgroundColor      string
	Footer               string
}

// The layout tree: logical nodes with resolved positions, sizes, and colors.
// Text y coordinates are baselines, matching both SVG text placement and
// font.Drawer dots, so the vector and raster stages agree.
type rectNode struct {
	x, y, w, h int
	fill       color.RGBA
}

type textNode struct {
	x, y   int
	text   string
	size   float64
	weight Weight
	fill   color.RGBA
}

type layout struct {
	rects []rectNode
	texts []textNode
}

// buildLayout resolves a card into the layout tree. Overly long text is
// wrapped and ellipsized, never an error; the only failures here are font
// faults and violated geometry invariants, both fatal.
func buildLayout(card Card, fonts *FontSet) (*layout, error) {
	bg := parseColor(card.BackgroundColor, defaultBackground)
	accent := parseColor(card.AccentColor, defaultAccent)
	secondary := parseColor(card.SecondaryAccentColor, defaultSecondary)
	textColor := parseColor(card.TextColor, defaultText)

	maxWidth := CanvasWidth - 2*marginX
	if maxWidth <= 0 {
		return nil, fmt.Errorf("render: text area is %dpx wide", maxWidth)
	}

	l := &layout{
		rects: []rectNode{
			{0, 0, CanvasWidth, CanvasHeight, bg},
			{0, 0, CanvasWidth, accentBarHeight, accent},
			{0, accentBarHeight, CanvasWidth, secondaryBarHeight, secondary},
		},
	}

	titleFace, err := fonts.Face(Bold, titleSize)
	if err != nil {
		return nil, err
	}
	y := titleTop
	for _, line := range wrapText(titleFace, card.Title, maxWidth, maxTitleLines) {
		l.texts = append(l.texts, textNode{marginX, y, line, titleSize, Bold, textColor})
		y += titleLineHeight
	}

	if card.Description != "" {
		descFace, err := fonts.Face(Regular, descSize)
		if err != nil {
			return nil, err
		}
		y += descGap
		for _, line := range wrapText(descFace, card.Description, maxWidth, maxDescLines) {
			l.texts = append(l.texts, textNode{marginX, y, line, descSize, Regular, textColor})
			y += descLineHeight
		}
	}

	if card.Footer != "" {
		l.rects = append(l.rects, rectNode{marginX, footerRuleY, footerRuleWidth, footerRuleHeight, accent})
		l.texts = append(l.texts, textNode{marginX, footerBaseline, card.Footer, footerSize, Regular, textColor})
	}

	return l, nil
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// wrapText greedily wraps s into at most maxLines lines of maxWidth pixels.
// Text that would still overflow gets the last line ellipsized.
func wrapText(face font.Face, s string, maxWidth, maxLines int) []string {
	var lines []string
	rest := strings.Join(strings.Fields(s), " ")
	for rest != "" && len(lines) < maxLines {
		line, tail := takeLine(face, rest, maxWidth)
		lines = append(lines, line)
		rest = tail
	}
	if rest != "" && len(lines) > 0 {
		lines[len(lines)-1] = ellipsize(face, lines[len(lines)-1], maxWidth)
	}
	return lines
}

// takeLine returns the longest prefix of s that fits in maxWidth, breaking
// on a word boundary when one fits and hard-splitting by rune otherwise.
func takeLine(face font.Face, s string, maxWidth int) (string, string) {
	if textWidth(face, s) <= maxWidth {
		return s, ""
	}
	cut := -1
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			continue
		}
		if textWidth(face, s[:i]) > maxWidth {
			break
		}
		cut = i
	}
	if cut > 0 {
		return s[:cut], strings.TrimLeft(s[cut:], " ")
	}
	runes := []rune(s)
	n := 1
	for n < len(runes) && textWidth(face, string(runes[:n+1])) <= maxWidth {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}

// ellipsize trims line until it fits in maxWidth with the ellipsis appended.
func ellipsize(face font.Face, line string, maxWidth int) string {
	runes := []rune(line)
	for len(runes) > 0 && textWidth(face, strings.TrimRight(string(runes), " ")+ellipsis) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + ellipsis
}
