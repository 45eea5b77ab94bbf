package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guidefari/projstats/internal/core"
	"github.com/guidefari/projstats/internal/report"
)

type fakeScanner struct {
	calls   atomic.Int32
	gotPath string
	gotTop  int
	report  *core.ScanReport
	err     error
	block   chan struct{}
	started chan struct{}
}

func (f *fakeScanner) Scan(ctx context.Context, path string, top int) (*core.ScanReport, error) {
	f.calls.Add(1)
	f.gotPath, f.gotTop = path, top
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	return f.report, f.err
}

func sampleReport() *core.ScanReport {
	return &core.ScanReport{
		TotalFiles:   1,
		TotalLines:   4,
		Languages:    []core.LanguageStat{{Name: "Go", Ext: ".go", Lines: 4, Files: 1}},
		LargestFiles: []core.FileStat{{Path: "main.go", Lines: 4}},
		SmallFiles:   1,
	}
}

func TestSessionRejectsEmptyPath(t *testing.T) {
	f := &fakeScanner{}
	s := NewSession(f)

	_, err := s.Scan(context.Background(), "   ", 5)

	assert.ErrorIs(t, err, ErrEmptyPath)
	assert.Zero(t, f.calls.Load())
}

func TestSessionStoresResult(t *testing.T) {
	f := &fakeScanner{report: sampleReport()}
	s := NewSession(f)

	rep, err := s.Scan(context.Background(), "  /work/demo ", 0)

	require.NoError(t, err)
	assert.Same(t, f.report, rep)
	assert.Equal(t, "/work/demo", f.gotPath)
	assert.Equal(t, core.DefaultTopN, f.gotTop)
	assert.Same(t, rep, s.Current())
	assert.Equal(t, "/work/demo", s.Label())
	assert.False(t, s.Loading())
}

func TestSessionFailureKeepsPrevious(t *testing.T) {
	f := &fakeScanner{report: sampleReport()}
	s := NewSession(f)
	first, err := s.Scan(context.Background(), "/a", 5)
	require.NoError(t, err)

	f.report, f.err = nil, &core.Error{Kind: core.KindServer, Message: "path not found"}
	_, err = s.Scan(context.Background(), "/b", 5)

	assert.ErrorIs(t, err, core.ErrServer)
	assert.Same(t, first, s.Current())
	assert.Equal(t, "/a", s.Label())
	assert.False(t, s.Loading())
}

func TestSessionSingleFlight(t *testing.T) {
	f := &fakeScanner{report: sampleReport(), block: make(chan struct{}), started: make(chan struct{})}
	s := NewSession(f)

	done := make(chan error, 1)
	go func() {
		_, err := s.Scan(context.Background(), "/a", 5)
		done <- err
	}()
	<-f.started

	assert.True(t, s.Loading())
	_, err := s.Scan(context.Background(), "/b", 5)
	assert.ErrorIs(t, err, ErrScanInProgress)

	close(f.block)
	require.NoError(t, <-done)
	assert.False(t, s.Loading())
	assert.Equal(t, int32(1), f.calls.Load())
	assert.Equal(t, "/a", s.Label())
}

func TestSessionExportWithoutResult(t *testing.T) {
	s := NewSession(&fakeScanner{})
	var buf bytes.Buffer

	ok, err := s.Export(&buf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, buf.Len())

	dir := t.TempDir()
	path, err := s.WriteReportFile(dir)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.NoFileExists(t, filepath.Join(dir, report.ExportFileName))
}

func TestSessionExport(t *testing.T) {
	s := NewSession(&fakeScanner{report: sampleReport()})
	_, err := s.Scan(context.Background(), "/work/demo", 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	ok, err := s.Export(&buf)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, report.Export(sampleReport(), "/work/demo"), buf.Bytes())

	dir := t.TempDir()
	path, err := s.WriteReportFile(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "project-stats-report.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), data)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSessionExportWriteError(t *testing.T) {
	s := NewSession(&fakeScanner{report: sampleReport()})
	_, err := s.Scan(context.Background(), "/a", 5)
	require.NoError(t, err)

	ok, err := s.Export(failingWriter{})
	assert.False(t, ok)
	assert.EqualError(t, err, "disk full")
}
