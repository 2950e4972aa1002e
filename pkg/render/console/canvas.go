// pkg/render/console/canvas.go
package console

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// canvas is the glyph grid one frame is painted into. Each cell carries an
// optional foreground color; uncolored cells render as plain runes.
type canvas struct {
	width  int
	height int
	glyphs [][]rune
	colors [][]string
}

func newCanvas(width, height int) *canvas {
	c := &canvas{
		width:  width,
		height: height,
		glyphs: make([][]rune, height),
		colors: make([][]string, height),
	}
	for y := 0; y < height; y++ {
		c.glyphs[y] = make([]rune, width)
		c.colors[y] = make([]string, width)
		for x := 0; x < width; x++ {
			c.glyphs[y][x] = ' '
		}
	}
	return c
}

// set paints one cell. Out-of-bounds coordinates are ignored so callers can
// paint shapes that extend past the viewport edge.
func (c *canvas) set(x, y int, glyph rune, color string) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.glyphs[y][x] = glyph
	c.colors[y][x] = color
}

// fillEllipse paints a filled disc with independent cell radii. Terminal
// cells are about twice as tall as they are wide, so a round-looking disc
// takes rx ≈ 2·ry. A disc smaller than one cell still paints its center.
func (c *canvas) fillEllipse(cx, cy, rx, ry float64, glyph rune, color string) {
	if rx < 1 || ry < 1 {
		c.set(int(cx), int(cy), glyph, color)
		return
	}

	minY := int(cy - ry)
	if minY < 0 {
		minY = 0
	}
	maxY := int(cy + ry)
	if maxY >= c.height {
		maxY = c.height - 1
	}

	for y := minY; y <= maxY; y++ {
		dy := (float64(y) - cy) / ry
		d := 1 - dy*dy
		if d < 0 {
			continue
		}
		span := rx * math.Sqrt(d)

		minX := int(cx - span)
		if minX < 0 {
			minX = 0
		}
		maxX := int(cx + span)
		if maxX >= c.width {
			maxX = c.width - 1
		}
		for x := minX; x <= maxX; x++ {
			c.set(x, y, glyph, color)
		}
	}
}

// box draws a single-line border rectangle.
func (c *canvas) box(x, y, w, h int, color string) {
	for i := 1; i < w-1; i++ {
		c.set(x+i, y, '─', color)
		c.set(x+i, y+h-1, '─', color)
	}
	for j := 1; j < h-1; j++ {
		c.set(x, y+j, '│', color)
		c.set(x+w-1, y+j, '│', color)
	}
	c.set(x, y, '┌', color)
	c.set(x+w-1, y, '┐', color)
	c.set(x, y+h-1, '└', color)
	c.set(x+w-1, y+h-1, '┘', color)
}

// write prints a string horizontally starting at (x, y).
func (c *canvas) write(x, y int, s, color string) {
	i := 0
	for _, r := range s {
		c.set(x+i, y, r, color)
		i++
	}
}

// render flattens the grid into styled terminal lines. Styles are cached
// per color so a large disc does not rebuild the same style per cell.
func (c *canvas) render() string {
	styles := make(map[string]lipgloss.Style)
	var b strings.Builder

	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			glyph := c.glyphs[y][x]
			color := c.colors[y][x]
			if color == "" {
				b.WriteRune(glyph)
				continue
			}
			style, ok := styles[color]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
				styles[color] = style
			}
			b.WriteString(style.Render(string(glyph)))
		}
		if y < c.height-1 {
			b.WriteRune('\n')
		}
	}

	return b.String()
}
