// Package ui renders the terminal output of the deletion session.
package ui

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diskpie/internal/chart"
)

// PieOptions controls the shape of the rendered chart. The aspect
// ratio stretches the circle horizontally so terminal cells, which are
// taller than wide, still produce something round.
type PieOptions struct {
	Radius      int
	AspectRatio int
}

func (o PieOptions) normalized() PieOptions {
	if o.Radius <= 0 {
		o.Radius = 6
	}
	if o.AspectRatio <= 0 {
		o.AspectRatio = 3
	}
	return o
}

// DrawPie draws the slices as a filled circle of glyphs with a legend
// beside it. Each point of the disc is assigned to the slice whose
// cumulative value range covers the point's angle, measured clockwise
// from twelve o'clock.
func DrawPie(w io.Writer, slices []chart.Slice, opts PieOptions) {
	if len(slices) == 0 {
		return
	}
	opts = opts.normalized()

	bounds := make([]float64, len(slices))
	cumulative := 0.0
	for i, s := range slices {
		cumulative += s.Value
		bounds[i] = cumulative
	}

	styles := make([]lipgloss.Style, len(slices))
	for i, s := range slices {
		styles[i] = lipgloss.NewStyle().Foreground(s.Color)
	}

	radius := float64(opts.Radius)
	legendStart := opts.Radius - len(slices)/2

	for row := 0; row <= 2*opts.Radius; row++ {
		y := radius - float64(row)
		var line strings.Builder

		for col := -opts.Radius * opts.AspectRatio; col <= opts.Radius*opts.AspectRatio; col++ {
			x := float64(col) / float64(opts.AspectRatio)
			if x*x+y*y > radius*radius {
				line.WriteByte(' ')
				continue
			}
			idx := sliceAt(bounds, x, y)
			line.WriteString(styles[idx].Render(string(slices[idx].Fill)))
		}

		if entry := row - legendStart; entry >= 0 && entry < len(slices) {
			line.WriteString("   ")
			line.WriteString(styles[entry].Render(string(slices[entry].Fill)))
			line.WriteString(" ")
			line.WriteString(slices[entry].Label)
			line.WriteString(fmt.Sprintf(" %.2f%%", slices[entry].Value*100))
		}

		fmt.Fprintln(w, line.String())
	}
}

// sliceAt maps a disc point to the index of the slice covering its
// angle. The last slice absorbs any floating-point remainder.
func sliceAt(bounds []float64, x, y float64) int {
	frac := math.Atan2(x, y) / (2 * math.Pi)
	if frac < 0 {
		frac++
	}
	for i, b := range bounds {
		if frac <= b {
			return i
		}
	}
	return len(bounds) - 1
}
