package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guidefari/projstats/internal/core"
)

func TestExportLayout(t *testing.T) {
	want := `Project Stats Report
==================================================

Scanning: /work/demo

Total files: 10
Total lines of code: 500

Language Breakdown:
------------------------------
  - Python (.py): 300 lines (6 files)
  - JavaScript (.js): 200 lines (4 files)

Top 3 Largest Files:
------------------------------
  1. src/moda.py – 100 lines
  2. web/appa.js – 90 lines
  3. src/modb.py – 80 lines

File Anomalies:
------------------------------
  Empty files: 0
  Very small files (<5 lines): 0

Time Insights:
------------------------------
  Newest file: web/appa.js (3 minutes ago)
  Oldest file: src/moda.py (2 years ago)
`

	assert.Equal(t, want, string(Export(twoLanguageReport(), "/work/demo")))
}

func TestExportIsDeterministic(t *testing.T) {
	rep := twoLanguageReport()
	assert.Equal(t, Export(rep, "x"), Export(rep, "x"))
}

func TestExportWithoutTimes(t *testing.T) {
	rep := &core.ScanReport{Languages: []core.LanguageStat{}, LargestFiles: []core.FileStat{}}

	want := `Project Stats Report
==================================================

Scanning: .

Total files: 0
Total lines of code: 0

Language Breakdown:
------------------------------

Top 0 Largest Files:
------------------------------

File Anomalies:
------------------------------
  Empty files: 0
  Very small files (<5 lines): 0
`

	assert.Equal(t, want, string(Export(rep, ".")))
}

func TestExportOnlyNewest(t *testing.T) {
	rep := &core.ScanReport{NewestFile: &core.FileTimeInfo{Path: "a.go", TimeAgo: "just now"}}

	out := string(Export(rep, "."))

	assert.Contains(t, out, "Time Insights:\n------------------------------\n  Newest file: a.go (just now)\n")
	assert.NotContains(t, out, "Oldest file")
}
