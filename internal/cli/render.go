package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"gopkg.in/yaml.v3"

	"github.com/guidefari/projstats/internal/core"
	"github.com/guidefari/projstats/internal/report"
	"github.com/guidefari/projstats/internal/tracing"
)

const chartWidth = 50

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func Render(w io.Writer, rep *core.ScanReport, label, format string) error {
	switch format {
	case "json":
		return RenderJSON(w, rep)
	case "yaml":
		return RenderYAML(w, rep)
	default:
		RenderTable(w, rep, label, report.HashPalette{})
		return nil
	}
}

func RenderTable(w io.Writer, rep *core.ScanReport, label string, palette report.Palette) {
	p := report.NewRenderer(palette).Render(rep)

	fmt.Fprintf(w, "\n%s  Scanning: %s\n\n", cyan("projstats"), label)
	fmt.Fprintf(w, "  %-22s %s\n", "Total files:", p.TotalFiles)
	fmt.Fprintf(w, "  %-22s %s\n", "Total lines of code:", p.TotalLines)

	if len(p.Segments) == 0 {
		fmt.Fprintf(w, "\n  %s\n\n", dim("No code files found."))
		return
	}

	fmt.Fprintf(w, "\n  %s\n\n", chartBar(p.Segments, chartWidth))

	langs := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"", "Language", "Lines", "Files", "Share"}),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithAlignment(tw.Alignment{tw.AlignLeft, tw.AlignLeft, tw.AlignRight, tw.AlignRight, tw.AlignRight}),
		tablewriter.WithBorders(tw.Border{Left: tw.Off, Right: tw.Off, Top: tw.Off, Bottom: tw.Off}),
	)
	for i, lang := range rep.Languages {
		seg := p.Segments[i]
		langs.Append([]string{
			swatch(seg.Color),
			p.Languages[i].Label,
			report.FormatNumber(lang.Lines),
			fmt.Sprintf("%d", lang.Files),
			fmt.Sprintf("%.1f%%", seg.Percent),
		})
	}
	langs.Render()

	if len(p.LargestFiles) > 0 {
		fmt.Fprintf(w, "\n%s  Top %d largest files\n\n", cyan("▸"), len(p.LargestFiles))
		files := tablewriter.NewTable(w,
			tablewriter.WithHeader([]string{"#", "Path", "Lines"}),
			tablewriter.WithHeaderAlignment(tw.AlignLeft),
			tablewriter.WithAlignment(tw.Alignment{tw.AlignRight, tw.AlignLeft, tw.AlignRight}),
			tablewriter.WithBorders(tw.Border{Left: tw.Off, Right: tw.Off, Top: tw.Off, Bottom: tw.Off}),
		)
		for _, f := range p.LargestFiles {
			files.Append([]string{fmt.Sprintf("%d", f.Rank), f.Path, f.Lines})
		}
		files.Render()
	}

	fmt.Fprintf(w, "\n%s  File anomalies\n", cyan("▸"))
	fmt.Fprintf(w, "  %-30s %s\n", "Empty files:", anomaly(p.EmptyFiles))
	fmt.Fprintf(w, "  %-30s %s\n", "Very small files (<5 lines):", anomaly(p.SmallFiles))

	if rep.NewestFile != nil || rep.OldestFile != nil {
		fmt.Fprintf(w, "\n%s  Time insights\n", cyan("▸"))
		fmt.Fprintf(w, "  %-14s %s %s\n", "Newest file:", p.Newest.Value, dim(p.Newest.Title))
		fmt.Fprintf(w, "  %-14s %s %s\n", "Oldest file:", p.Oldest.Value, dim(p.Oldest.Title))
	}

	if len(rep.Warnings) > 0 {
		fmt.Fprintf(w, "\n%s  %d paths could not be read\n", red("!"), len(rep.Warnings))
		for _, warn := range rep.Warnings {
			fmt.Fprintf(w, "  %s: %s\n", dim(warn.Path), warn.Message)
		}
	}

	fmt.Fprintln(w)
}

func anomaly(n int) string {
	if n == 0 {
		return green("0")
	}
	return red(fmt.Sprintf("%d", n))
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■")
}

// chartBar draws one colored run per language, proportional to its share.
func chartBar(segments []report.Segment, width int) string {
	var b strings.Builder
	for _, run := range report.Bar(segments, width) {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(run.Color)).Render(strings.Repeat("█", run.Cells)))
	}
	return b.String()
}

func RenderJSON(w io.Writer, rep *core.ScanReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func RenderYAML(w io.Writer, rep *core.ScanReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

func RenderTimings(w io.Writer, timings []tracing.Timing, total time.Duration) {
	if len(timings) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s  Performance Breakdown\n", cyan("⏱"))
	for _, t := range timings {
		fmt.Fprintf(w, "  %-20s %s\n", t.Name+":", t.Duration.Round(time.Microsecond))
	}
	fmt.Fprintf(w, "\n  %-20s %s\n", "Total:", total.Round(time.Millisecond))
}
