package core

import "time"

const (
	DefaultTopN        = 5
	DefaultWorkerCount = 4
	DefaultScanTimeout = 2 * time.Minute

	// Files with fewer lines than this (but more than zero) count as small.
	SmallFileThreshold = 5
)

type UnknownExtPolicy string

const (
	UnknownExclude UnknownExtPolicy = "exclude"
	UnknownAsText  UnknownExtPolicy = "text"
)

type ScanConfig struct {
	RootPath         string
	TopN             int
	SkipDirs         []string
	Exclude          []string
	RespectGitignore bool
	UnknownExt       UnknownExtPolicy
	WorkerCount      int
	// Now is the reference time for timeAgo; defaults to time.Now.
	Now func() time.Time
}

type ScanReport struct {
	TotalFiles   int            `json:"totalFiles" yaml:"totalFiles"`
	TotalLines   int            `json:"totalLines" yaml:"totalLines"`
	Languages    []LanguageStat `json:"languages" yaml:"languages"`
	LargestFiles []FileStat     `json:"largestFiles" yaml:"largestFiles"`
	EmptyFiles   int            `json:"emptyFiles" yaml:"emptyFiles"`
	SmallFiles   int            `json:"smallFiles" yaml:"smallFiles"`
	NewestFile   *FileTimeInfo  `json:"newestFile,omitempty" yaml:"newestFile,omitempty"`
	OldestFile   *FileTimeInfo  `json:"oldestFile,omitempty" yaml:"oldestFile,omitempty"`
	Warnings     []ScanWarning  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

type LanguageStat struct {
	Name  string `json:"name" yaml:"name"`
	Ext   string `json:"ext" yaml:"ext"`
	Lines int    `json:"lines" yaml:"lines"`
	Files int    `json:"files" yaml:"files"`
}

type FileStat struct {
	Path  string `json:"path" yaml:"path"`
	Lines int    `json:"lines" yaml:"lines"`
}

type FileTimeInfo struct {
	Path    string `json:"path" yaml:"path"`
	TimeAgo string `json:"timeAgo" yaml:"timeAgo"`
}

// ScanWarning records a file or directory that was skipped because it
// could not be read.
type ScanWarning struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

// fileEntry is a file selected by the walk, before its contents are read.
type fileEntry struct {
	abs  string
	rel  string
	ext  string
	lang string
	// sniff is set when the language came from the unknown-extension
	// policy and the content still has to be confirmed as text.
	sniff bool
}

// fileResult is a counted file.
type fileResult struct {
	rel     string
	ext     string
	lang    string
	lines   int
	modTime time.Time
}
