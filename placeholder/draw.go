// ABOUTME: Draws placeholder bitmaps: a solid fill with multi-line text centered on the canvas.
// ABOUTME: Text uses the fixed 7x13 bitmap face from golang.org/x/image with 12px line spacing.
package placeholder

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LineSpacing is the vertical gap in pixels between consecutive text lines.
const LineSpacing = 12

// Image describes one placeholder to generate.
type Image struct {
	Name   string // file name; extension selects the encoder
	Width  int
	Height int
	Lines  []string
	Fill   string // background, "#rrggbb"
	Text   string // text color, "#rrggbb"
}

// Placement is the computed position of one text line. X and Y are the
// top-left corner of the line's ink box; Dot is the baseline origin to pass
// to a font.Drawer.
type Placement struct {
	Line   string
	X, Y   int
	Width  int
	Height int
	Dot    fixed.Point26_6
}

// DefaultFace is the face used for all placeholder text.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// ParseHexColor parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Layout centers each line horizontally and the whole block vertically on a
// width x height canvas.
func Layout(face font.Face, lines []string, width, height int) []Placement {
	if len(lines) == 0 {
		return nil
	}

	placements := make([]Placement, len(lines))
	total := 0
	for i, line := range lines {
		bounds, _ := font.BoundString(face, line)
		w := (bounds.Max.X - bounds.Min.X).Ceil()
		h := (bounds.Max.Y - bounds.Min.Y).Ceil()
		placements[i] = Placement{
			Line:   line,
			Width:  w,
			Height: h,
			Dot:    fixed.Point26_6{X: -bounds.Min.X, Y: -bounds.Min.Y},
		}
		total += h
	}
	total += (len(lines) - 1) * LineSpacing

	y := floorDiv(height-total, 2)
	for i := range placements {
		p := &placements[i]
		p.X = floorDiv(width-p.Width, 2)
		p.Y = y
		p.Dot.X += fixed.I(p.X)
		p.Dot.Y += fixed.I(p.Y)
		y += p.Height + LineSpacing
	}
	return placements
}

// Draw renders img into a new RGBA bitmap.
func Draw(img Image) (*image.RGBA, error) {
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", img.Width, img.Height)
	}
	fill, err := ParseHexColor(img.Fill)
	if err != nil {
		return nil, fmt.Errorf("fill: %w", err)
	}
	text, err := ParseHexColor(img.Text)
	if err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	face := DefaultFace()
	d := &font.Drawer{Dst: canvas, Src: image.NewUniform(text), Face: face}
	for _, p := range Layout(face, img.Lines, img.Width, img.Height) {
		d.Dot = p.Dot
		d.DrawString(p.Line)
	}
	return canvas, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
