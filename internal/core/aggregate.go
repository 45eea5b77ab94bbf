package core

import (
	"sort"
	"time"
)

type languageTally struct {
	lines     int
	files     int
	extCounts map[string]int
}

// buildReport tallies languages by display name, so .yml and .yaml share
// one YAML row rather than one row per extension.
func buildReport(files []fileResult, topN int, now time.Time) *ScanReport {
	if topN <= 0 {
		topN = DefaultTopN
	}

	report := &ScanReport{
		Languages:    []LanguageStat{},
		LargestFiles: []FileStat{},
	}
	tallies := make(map[string]*languageTally)

	var newest, oldest *fileResult
	for i := range files {
		f := &files[i]
		report.TotalFiles++
		report.TotalLines += f.lines

		t, ok := tallies[f.lang]
		if !ok {
			t = &languageTally{extCounts: make(map[string]int)}
			tallies[f.lang] = t
		}
		t.lines += f.lines
		t.files++
		t.extCounts[f.ext]++

		switch {
		case f.lines == 0:
			report.EmptyFiles++
		case f.lines < SmallFileThreshold:
			report.SmallFiles++
		}

		if newest == nil || f.modTime.After(newest.modTime) ||
			(f.modTime.Equal(newest.modTime) && f.rel < newest.rel) {
			newest = f
		}
		if oldest == nil || f.modTime.Before(oldest.modTime) ||
			(f.modTime.Equal(oldest.modTime) && f.rel < oldest.rel) {
			oldest = f
		}
	}

	for name, t := range tallies {
		report.Languages = append(report.Languages, LanguageStat{
			Name:  name,
			Ext:   representativeExt(t.extCounts),
			Lines: t.lines,
			Files: t.files,
		})
	}
	SortLanguages(report.Languages)

	report.LargestFiles = largestFiles(files, topN)

	if newest != nil {
		report.NewestFile = &FileTimeInfo{Path: newest.rel, TimeAgo: TimeAgo(newest.modTime, now)}
	}
	if oldest != nil {
		report.OldestFile = &FileTimeInfo{Path: oldest.rel, TimeAgo: TimeAgo(oldest.modTime, now)}
	}

	return report
}

// SortLanguages orders by lines, then files (both descending), then name.
func SortLanguages(langs []LanguageStat) {
	sort.Slice(langs, func(i, j int) bool {
		a, b := langs[i], langs[j]
		if a.Lines != b.Lines {
			return a.Lines > b.Lines
		}
		if a.Files != b.Files {
			return a.Files > b.Files
		}
		return a.Name < b.Name
	})
}

// SortFiles orders by line count descending; equal counts fall back to
// path order so the top-N cut is stable.
func SortFiles(files []FileStat) {
	sort.Slice(files, func(i, j int) bool {
		if files[i].Lines != files[j].Lines {
			return files[i].Lines > files[j].Lines
		}
		return files[i].Path < files[j].Path
	})
}

func largestFiles(files []fileResult, topN int) []FileStat {
	all := make([]FileStat, len(files))
	for i, f := range files {
		all[i] = FileStat{Path: f.rel, Lines: f.lines}
	}
	SortFiles(all)
	if len(all) > topN {
		all = all[:topN]
	}
	return all
}

func representativeExt(counts map[string]int) string {
	best := ""
	bestCount := -1
	for ext, n := range counts {
		switch {
		case n > bestCount:
		case n == bestCount && rankOf(ext) < rankOf(best):
		case n == bestCount && rankOf(ext) == rankOf(best) && ext < best:
		default:
			continue
		}
		best, bestCount = ext, n
	}
	return best
}
