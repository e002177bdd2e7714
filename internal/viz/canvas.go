package viz

import (
	"strings"

	"github.com/san-kum/orbit/internal/celestial"
)

// Braille patterns: each cell is a 2x4 dot grid, unicode offset 0x2800.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a braille-cell drawing surface. Sub-pixel resolution is
// (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
}

// Mark overwrites a whole cell with a marker rune, used for body glyphs
// on top of braille trails.
func (c *Canvas) Mark(x, y int, r rune) {
	col := x / 2
	row := y / 4
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
}

// DrawLine draws a sub-pixel line with Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Project maps a world position (meters, x/y plane) onto sub-pixel
// coordinates, with the origin at the canvas center and spanAU
// astronomical units across the width. Braille cells are twice as tall as
// wide, which the y scale compensates for.
func (c *Canvas) Project(p celestial.Vec3, spanAU float64) (int, int) {
	spanM := spanAU * celestial.AU
	subW := float64(c.Width * 2)
	subH := float64(c.Height * 4)

	x := p.X/spanM*subW + subW/2
	y := subH/2 - p.Y/spanM*subW/2

	return int(x), int(y)
}

// DrawSystem renders trajectory trails and current body markers.
func (c *Canvas) DrawSystem(sys *celestial.System, spanAU float64) {
	for _, b := range sys.Bodies() {
		samples := b.Track.Samples()
		for _, p := range samples {
			x, y := c.Project(p, spanAU)
			c.Set(x, y)
		}
	}
	for _, b := range sys.Bodies() {
		x, y := c.Project(b.Position, spanAU)
		glyph := '●'
		if b.ParentID != celestial.NoParent {
			glyph = '·'
		}
		c.Mark(x, y, glyph)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
