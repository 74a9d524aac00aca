// Package chart turns session state into pie-chart slices.
package chart

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"diskpie/internal/format"
	"diskpie/internal/scanner"
)

// PageSize is how many candidates one page shows individually.
const PageSize = 5

const (
	fileFill  = '•'
	otherFill = '-'
)

// One distinct color per page slot, plus gray for the Other bucket.
var (
	slotColors = [PageSize]lipgloss.Color{
		"#EF4444",
		"#F59E0B",
		"#10B981",
		"#3B82F6",
		"#7C3AED",
	}
	otherColor = lipgloss.Color("#6B7280")
)

// Slice is one entry of the visualization: a single candidate file or
// the aggregate Other bucket. Value is the fraction of the live total.
type Slice struct {
	Label string
	Value float64
	Color lipgloss.Color
	Fill  rune
}

// Build produces the slices for the page starting at offset. Deleted
// slots are omitted but surviving slots keep their original page
// numbering, so a freed number is never reused. The trailing Other
// slice holds everything the per-file slices do not, measured against
// the live total; it is present even when it is zero.
//
// liveTotal must be positive; the exhausted session is the caller's
// terminal state, not a chart.
func Build(files []scanner.File, offset int, liveTotal uint64, deleted map[int]struct{}) []Slice {
	end := offset + PageSize
	if end > len(files) {
		end = len(files)
	}
	if offset > end {
		offset = end
	}

	slices := make([]Slice, 0, PageSize+1)
	var shown uint64

	for slot, file := range files[offset:end] {
		if _, gone := deleted[slot]; gone {
			continue
		}
		slices = append(slices, Slice{
			Label: fmt.Sprintf("(%d) %11s -- %s", slot+1, format.Size(file.Size), filepath.Base(file.Path)),
			Value: float64(file.Size) / float64(liveTotal),
			Color: slotColors[slot],
			Fill:  fileFill,
		})
		shown += file.Size
	}

	other := liveTotal - shown
	slices = append(slices, Slice{
		Label: "Other: " + format.Size(other),
		Value: float64(other) / float64(liveTotal),
		Color: otherColor,
		Fill:  otherFill,
	})

	return slices
}
