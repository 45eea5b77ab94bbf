package core

import (
	"bufio"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

const gitignoreFile = ".gitignore"

// DefaultSkipDirs are build, dependency and VCS directories that are never
// descended into.
var DefaultSkipDirs = []string{
	"node_modules", ".git", "__pycache__", ".venv", "venv",
	"env", ".env", "dist", "build", ".idea", ".vscode",
	"target", "bin", "obj", ".next", ".nuxt",
}

// ignoreRules is owned by one walk. Directories are visited before their
// contents, so a .gitignore is loaded before anything it governs.
type ignoreRules struct {
	skipDirs  map[string]bool
	fs        billy.Filesystem
	gitignore []gitignore.Pattern
	exclude   []gitignore.Pattern
	matcher   gitignore.Matcher
}

func newIgnoreRules(root string, config ScanConfig) *ignoreRules {
	names := config.SkipDirs
	if names == nil {
		names = DefaultSkipDirs
	}
	rules := &ignoreRules{skipDirs: make(map[string]bool, len(names))}
	for _, n := range names {
		rules.skipDirs[n] = true
	}

	if config.RespectGitignore {
		rules.fs = osfs.New(root)
	}
	for _, p := range config.Exclude {
		p = strings.TrimSpace(p)
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		rules.exclude = append(rules.exclude, gitignore.ParsePattern(p, nil))
	}
	rules.rebuild()
	return rules
}

// enterDir loads the .gitignore of the directory at rel ("." for the
// root). A missing file is not an error.
func (r *ignoreRules) enterDir(rel string) error {
	if r.fs == nil {
		return nil
	}
	var domain []string
	if rel != "." {
		domain = strings.Split(filepath.ToSlash(rel), "/")
	}

	f, err := r.fs.Open(r.fs.Join(append(domain, gitignoreFile)...))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	added := false
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		r.gitignore = append(r.gitignore, gitignore.ParsePattern(line, domain))
		added = true
	}
	if added {
		r.rebuild()
	}
	return sc.Err()
}

// rebuild keeps exclude patterns last so they win over any negation in a
// .gitignore.
func (r *ignoreRules) rebuild() {
	patterns := make([]gitignore.Pattern, 0, len(r.gitignore)+len(r.exclude))
	patterns = append(patterns, r.gitignore...)
	patterns = append(patterns, r.exclude...)
	if len(patterns) == 0 {
		r.matcher = nil
		return
	}
	r.matcher = gitignore.NewMatcher(patterns)
}

func (r *ignoreRules) skipDir(name, rel string) bool {
	if r.skipDirs[name] {
		return true
	}
	return r.match(rel, true)
}

func (r *ignoreRules) skipFile(rel string) bool {
	return r.match(rel, false)
}

func (r *ignoreRules) match(rel string, isDir bool) bool {
	if r.matcher == nil || rel == "." {
		return false
	}
	return r.matcher.Match(strings.Split(filepath.ToSlash(rel), "/"), isDir)
}
