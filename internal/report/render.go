// Package report turns a scan report into a presentation model and into
// the plain-text export.
package report

import (
	"fmt"

	"github.com/guidefari/projstats/internal/core"
)

const missingValue = "-"

type Card struct {
	Value string
	Title string
}

type Segment struct {
	Name    string
	Percent float64
	Color   string
	Tooltip string
}

type LanguageItem struct {
	Label string
	Stats string
	Color string
}

type RankedFile struct {
	Rank  int
	Path  string
	Lines string
}

// Presentation holds every displayed value for one report.
type Presentation struct {
	TotalFiles   string
	TotalLines   string
	Newest       Card
	Oldest       Card
	Segments     []Segment
	Languages    []LanguageItem
	LargestFiles []RankedFile
	EmptyFiles   int
	SmallFiles   int
}

type Renderer struct {
	palette Palette
}

// NewRenderer returns a Renderer using palette; nil means HashPalette.
func NewRenderer(palette Palette) *Renderer {
	if palette == nil {
		palette = HashPalette{}
	}
	return &Renderer{palette: palette}
}

func (r *Renderer) Render(rep *core.ScanReport) Presentation {
	p := Presentation{
		TotalFiles: FormatNumber(rep.TotalFiles),
		TotalLines: FormatNumber(rep.TotalLines),
		Newest:     timeCard(rep.NewestFile),
		Oldest:     timeCard(rep.OldestFile),
		EmptyFiles: rep.EmptyFiles,
		SmallFiles: rep.SmallFiles,
	}

	for _, lang := range rep.Languages {
		pct := Percent(lang.Lines, rep.TotalLines)
		color := r.palette.Color(lang.Name)
		p.Segments = append(p.Segments, Segment{
			Name:    lang.Name,
			Percent: pct,
			Color:   color,
			Tooltip: fmt.Sprintf("%s: %s lines (%.1f%%)", lang.Name, FormatNumber(lang.Lines), pct),
		})
		p.Languages = append(p.Languages, LanguageItem{
			Label: fmt.Sprintf("%s (%s)", lang.Name, lang.Ext),
			Stats: fmt.Sprintf("%s lines • %d files", FormatNumber(lang.Lines), lang.Files),
			Color: color,
		})
	}

	for i, f := range rep.LargestFiles {
		p.LargestFiles = append(p.LargestFiles, RankedFile{
			Rank:  i + 1,
			Path:  f.Path,
			Lines: FormatNumber(f.Lines) + " lines",
		})
	}

	return p
}

func timeCard(info *core.FileTimeInfo) Card {
	if info == nil {
		return Card{Value: missingValue}
	}
	return Card{Value: info.TimeAgo, Title: info.Path}
}
