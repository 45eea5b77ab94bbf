package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"time"

	"github.com/guidefari/projstats/internal/tracing"
	"github.com/karrick/godirwalk"
	"go.opentelemetry.io/otel/attribute"
)

type Scanner struct {
	config ScanConfig
}

func NewScanner(config ScanConfig) *Scanner {
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultWorkerCount
	}
	if config.TopN <= 0 {
		config.TopN = DefaultTopN
	}
	if config.UnknownExt == "" {
		config.UnknownExt = UnknownExclude
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	return &Scanner{config: config}
}

// Scan walks the configured root and builds a report. It keeps no state
// between calls, so one Scanner may serve concurrent scans.
func (s *Scanner) Scan(ctx context.Context) (*ScanReport, error) {
	now := s.config.Now()

	ctx, span := tracing.Tracer().Start(ctx, "scan")
	defer span.End()

	root, err := CheckRoot(s.config.RootPath)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("scan.root", root))

	rules := newIgnoreRules(root, s.config)

	_, walkSpan := tracing.Tracer().Start(ctx, "walk")
	found, err := s.findFiles(ctx, root, rules)
	walkSpan.SetAttributes(attribute.Int("scan.candidates", len(found.files)))
	walkSpan.End()
	if err != nil {
		return nil, scanFailure(err)
	}

	pool := NewPool(s.config.WorkerCount)
	_, countSpan := tracing.Tracer().Start(ctx, "count_lines")
	results, warnings, err := pool.Process(ctx, found.files)
	countSpan.End()
	if err != nil {
		return nil, scanFailure(err)
	}

	_, aggSpan := tracing.Tracer().Start(ctx, "aggregate")
	report := buildReport(results, s.config.TopN, now)
	aggSpan.End()

	report.Warnings = append(found.warnings, warnings...)
	sort.SliceStable(report.Warnings, func(i, j int) bool {
		return report.Warnings[i].Path < report.Warnings[j].Path
	})

	return report, nil
}

// CheckRoot resolves path and verifies it is a readable directory. An
// empty path means the working directory.
func CheckRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "", invalidPath(abs, "path '%s' does not exist")
	case errors.Is(err, fs.ErrPermission):
		return "", permissionDenied(abs, err)
	case err != nil:
		return "", fmt.Errorf("stat %s: %w", abs, err)
	case !info.IsDir():
		return "", invalidPath(abs, "'%s' is not a directory")
	}

	dir, err := os.Open(abs)
	if err != nil {
		return "", permissionDenied(abs, err)
	}
	defer dir.Close()
	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return "", permissionDenied(abs, err)
	}
	return abs, nil
}

func permissionDenied(path string, err error) *Error {
	return &Error{
		Kind:    KindPermission,
		Path:    path,
		Message: fmt.Sprintf("cannot read directory '%s'", path),
		Err:     err,
	}
}

func scanFailure(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutError(err)
	}
	return err
}

type findResult struct {
	files    []fileEntry
	warnings []ScanWarning
}

func (s *Scanner) findFiles(ctx context.Context, root string, rules *ignoreRules) (*findResult, error) {
	found := &findResult{}
	root = filepath.Clean(root)

	relPath := func(path string) string {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return filepath.Base(path)
		}
		return filepath.ToSlash(rel)
	}
	enterDir := func(rel string) {
		if err := rules.enterDir(rel); err != nil {
			found.warnings = append(found.warnings, ScanWarning{
				Path:    path.Join(rel, gitignoreFile),
				Message: err.Error(),
			})
		}
	}

	err := godirwalk.Walk(root, &godirwalk.Options{
		Unsorted: true,
		Callback: func(osPath string, de *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if filepath.Clean(osPath) == root {
				enterDir(".")
				return nil
			}

			rel := relPath(osPath)
			if de.IsDir() {
				if rules.skipDir(de.Name(), rel) {
					return godirwalk.SkipThis
				}
				enterDir(rel)
				return nil
			}

			if de.IsSymlink() {
				info, err := os.Stat(osPath)
				if err != nil || !info.Mode().IsRegular() {
					return nil
				}
			} else if !de.IsRegular() {
				return nil
			}

			if rules.skipFile(rel) {
				return nil
			}
			if entry, ok := s.classify(osPath, rel, de.Name()); ok {
				found.files = append(found.files, entry)
			}
			return nil
		},
		ErrorCallback: func(osPath string, err error) godirwalk.ErrorAction {
			if ctx.Err() != nil {
				return godirwalk.Halt
			}
			found.warnings = append(found.warnings, ScanWarning{Path: relPath(osPath), Message: err.Error()})
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		return found, err
	}
	return found, nil
}

func (s *Scanner) classify(abs, rel, name string) (fileEntry, bool) {
	lang, ext, ok := LanguageFor(name)
	if ok {
		return fileEntry{abs: abs, rel: rel, ext: ext, lang: lang}, true
	}
	if s.config.UnknownExt != UnknownAsText {
		return fileEntry{}, false
	}
	// Counted as plain text, so they report under the Text extension.
	return fileEntry{abs: abs, rel: rel, ext: textExt, lang: TextLanguage, sniff: true}, true
}
