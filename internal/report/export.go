package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/guidefari/projstats/internal/core"
)

// ExportFileName is the name offered for the downloaded report.
const ExportFileName = "project-stats-report.txt"

var (
	titleRule   = strings.Repeat("=", 50)
	sectionRule = strings.Repeat("-", 30)
)

// Export renders rep as the plain-text report. The output depends only on
// its arguments.
func Export(rep *core.ScanReport, scanPathLabel string) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "Project Stats Report\n")
	fmt.Fprintf(&b, "%s\n\n", titleRule)
	fmt.Fprintf(&b, "Scanning: %s\n\n", scanPathLabel)
	fmt.Fprintf(&b, "Total files: %s\n", FormatNumber(rep.TotalFiles))
	fmt.Fprintf(&b, "Total lines of code: %s\n\n", FormatNumber(rep.TotalLines))

	section(&b, "Language Breakdown:")
	for _, lang := range rep.Languages {
		fmt.Fprintf(&b, "  - %s (%s): %s lines (%d files)\n",
			lang.Name, lang.Ext, FormatNumber(lang.Lines), lang.Files)
	}

	b.WriteString("\n")
	section(&b, fmt.Sprintf("Top %d Largest Files:", len(rep.LargestFiles)))
	for i, f := range rep.LargestFiles {
		fmt.Fprintf(&b, "  %d. %s – %s lines\n", i+1, f.Path, FormatNumber(f.Lines))
	}

	b.WriteString("\n")
	section(&b, "File Anomalies:")
	fmt.Fprintf(&b, "  Empty files: %d\n", rep.EmptyFiles)
	fmt.Fprintf(&b, "  Very small files (<%d lines): %d\n", core.SmallFileThreshold, rep.SmallFiles)

	if rep.NewestFile != nil || rep.OldestFile != nil {
		b.WriteString("\n")
		section(&b, "Time Insights:")
		if rep.NewestFile != nil {
			fmt.Fprintf(&b, "  Newest file: %s (%s)\n", rep.NewestFile.Path, rep.NewestFile.TimeAgo)
		}
		if rep.OldestFile != nil {
			fmt.Fprintf(&b, "  Oldest file: %s (%s)\n", rep.OldestFile.Path, rep.OldestFile.TimeAgo)
		}
	}

	return b.Bytes()
}

func section(b *bytes.Buffer, title string) {
	fmt.Fprintf(b, "%s\n%s\n", title, sectionRule)
}
