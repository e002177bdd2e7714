package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/orbit/internal/celestial"
)

// Orbit is one body's sampled path for rendering.
type Orbit struct {
	Name   string
	Points []celestial.Vec3
}

var palette = []string{
	"#ffd700", "#b0b0b0", "#e8a33d", "#4f94cd", "#cd5c5c",
	"#deb887", "#f4e99b", "#7ec0ee", "#5f9ea0", "#c0a0c0",
}

// OrbitsToSVG renders the x/y projection of every orbit into one SVG,
// scaled to a shared bounding box with 10% padding. Positions are taken
// as-is (meters); the viewBox normalizes them.
func OrbitsToSVG(orbits []Orbit, width, height int) string {
	minX, maxX, minY, maxY := bounds(orbits)
	if minX == maxX && minY == maxY {
		return ""
	}

	padX := (maxX - minX) * 0.1
	padY := (maxY - minY) * 0.1
	if padX == 0 {
		padX = 1
	}
	if padY == 0 {
		padY = 1
	}
	minX -= padX
	maxX += padX
	minY -= padY
	maxY += padY
	rangeX := maxX - minX
	rangeY := maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a14"/>
`, width, height, width, height))

	for oi, orbit := range orbits {
		if len(orbit.Points) < 2 {
			continue
		}
		color := palette[oi%len(palette)]

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.2" d="M`, color))
		for i, p := range orbit.Points {
			x := (p.X - minX) / rangeX * float64(width)
			y := float64(height) - (p.Y-minY)/rangeY*float64(height)
			if i == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		last := orbit.Points[len(orbit.Points)-1]
		cx := (last.X - minX) / rangeX * float64(width)
		cy := float64(height) - (last.Y-minY)/rangeY*float64(height)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="2.5" fill="%s"/>
<text x="%.1f" y="%.1f" fill="%s" font-size="10" font-family="monospace">%s</text>
`, cx, cy, color, cx+5, cy-5, color, orbit.Name))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(orbits []Orbit) (minX, maxX, minY, maxY float64) {
	first := true
	for _, o := range orbits {
		for _, p := range o.Points {
			if first {
				minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
				first = false
				continue
			}
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}
	return
}
