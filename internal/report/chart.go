package report

import "math"

// BarRun is one colored stretch of a fixed-width chart bar.
type BarRun struct {
	Name  string
	Color string
	Cells int
}

// Bar splits width cells between segments by their share. Any segment
// with a non-zero share gets at least one cell while width allows, and
// the last one absorbs rounding so a full bar is exactly width cells wide.
func Bar(segments []Segment, width int) []BarRun {
	remaining := 0
	for _, seg := range segments {
		if seg.Percent > 0 {
			remaining++
		}
	}

	var runs []BarRun
	used := 0
	for _, seg := range segments {
		if seg.Percent <= 0 {
			continue
		}
		remaining--

		cells := width - used
		if remaining > 0 {
			cells = int(math.Round(seg.Percent / 100 * float64(width)))
			cells = min(max(cells, 1), width-used-remaining)
		}
		if cells <= 0 {
			continue
		}
		used += cells
		runs = append(runs, BarRun{Name: seg.Name, Color: seg.Color, Cells: cells})
	}
	return runs
}
