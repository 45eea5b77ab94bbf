package client

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/guidefari/projstats/internal/core"
	"github.com/guidefari/projstats/internal/report"
)

var (
	ErrEmptyPath      = errors.New("please enter a folder path")
	ErrScanInProgress = errors.New("a scan is already running")
)

// Scanner is satisfied by both the HTTP Client and the local service.
type Scanner interface {
	Scan(ctx context.Context, path string, top int) (*core.ScanReport, error)
}

// Session owns the current result. Only successful scans replace it.
type Session struct {
	scanner Scanner
	loading atomic.Bool

	mu      sync.RWMutex
	current *core.ScanReport
	label   string
}

func NewSession(scanner Scanner) *Session {
	return &Session{scanner: scanner}
}

// Scan runs one scan. While a scan is outstanding further calls return
// ErrScanInProgress without touching the scanner.
func (s *Session) Scan(ctx context.Context, path string, top int) (*core.ScanReport, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrEmptyPath
	}
	if top <= 0 {
		top = core.DefaultTopN
	}

	if !s.loading.CompareAndSwap(false, true) {
		return nil, ErrScanInProgress
	}
	defer s.loading.Store(false)

	rep, err := s.scanner.Scan(ctx, path, top)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = rep
	s.label = path
	s.mu.Unlock()
	return rep, nil
}

func (s *Session) Loading() bool { return s.loading.Load() }

// Current returns the last successful report, or nil.
func (s *Session) Current() *core.ScanReport {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Label is the path the current report was scanned with.
func (s *Session) Label() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.label
}

// Export writes the text report for the current result. It reports false
// and writes nothing when there is no result yet.
func (s *Session) Export(w io.Writer) (bool, error) {
	s.mu.RLock()
	rep, label := s.current, s.label
	s.mu.RUnlock()

	if rep == nil {
		return false, nil
	}
	if _, err := w.Write(report.Export(rep, label)); err != nil {
		return false, err
	}
	return true, nil
}

// WriteReportFile exports into dir/project-stats-report.txt and returns
// the path written, or "" when there is nothing to export.
func (s *Session) WriteReportFile(dir string) (string, error) {
	s.mu.RLock()
	rep, label := s.current, s.label
	s.mu.RUnlock()

	if rep == nil {
		return "", nil
	}
	path := filepath.Join(dir, report.ExportFileName)
	if err := os.WriteFile(path, report.Export(rep, label), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
