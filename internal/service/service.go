// Package service wraps the scanner behind the scan(path, topN) operation
// used by the HTTP server and local clients.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/guidefari/projstats/internal/core"
)

// Options are the scanner settings shared by every scan.
type Options struct {
	SkipDirs         []string
	Exclude          []string
	RespectGitignore bool
	UnknownExt       core.UnknownExtPolicy
	WorkerCount      int
	Timeout          time.Duration
	Logger           *slog.Logger
	Now              func() time.Time
}

type Service struct {
	opts Options
}

func New(opts Options) *Service {
	if opts.Timeout <= 0 {
		opts.Timeout = core.DefaultScanTimeout
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Service{opts: opts}
}

// Scan scans path and keeps the topN largest files. A non-positive topN
// means core.DefaultTopN.
func (s *Service) Scan(ctx context.Context, path string, topN int) (*core.ScanReport, error) {
	if topN <= 0 {
		topN = core.DefaultTopN
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	start := time.Now()
	scanner := core.NewScanner(core.ScanConfig{
		RootPath:         path,
		TopN:             topN,
		SkipDirs:         s.opts.SkipDirs,
		Exclude:          s.opts.Exclude,
		RespectGitignore: s.opts.RespectGitignore,
		UnknownExt:       s.opts.UnknownExt,
		WorkerCount:      s.opts.WorkerCount,
		Now:              s.opts.Now,
	})

	report, err := scanner.Scan(ctx)
	if err != nil {
		s.opts.Logger.Warn("scan failed", "path", path, "kind", core.KindOf(err), "err", err)
		return nil, err
	}

	s.opts.Logger.Debug("scan finished",
		"path", path,
		"files", report.TotalFiles,
		"lines", report.TotalLines,
		"duration", time.Since(start).Round(time.Millisecond))
	for _, w := range report.Warnings {
		s.opts.Logger.Debug("file skipped", "path", w.Path, "reason", w.Message)
	}
	return report, nil
}
