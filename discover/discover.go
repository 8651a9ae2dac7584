// Package discover finds the files a migration run operates on.
package discover

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
	"github.com/mdblp/i18n-rekey/errors"
	"github.com/rs/zerolog"
)

// DefaultExcludedDirs are never descended into.
var DefaultExcludedDirs = []string{"node_modules", ".git", "dist", "build", "coverage"}

// SourceExtensions are the file extensions scanned for translation calls.
var SourceExtensions = []string{".js", ".jsx", ".ts", ".tsx"}

// MatchFunc reports whether a file, given by its base name, is selected.
type MatchFunc func(name string) bool

// ByExtension matches file names ending in one of exts, case-insensitively.
// Extensions may be given with or without the leading dot.
func ByExtension(exts ...string) MatchFunc {
	wanted := make(map[string]struct{}, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		wanted[ext] = struct{}{}
	}
	return func(name string) bool {
		_, ok := wanted[strings.ToLower(filepath.Ext(name))]
		return ok
	}
}

// ByPattern matches file names against a glob, case-insensitively. Unless
// patternOnly is set, any .json file matches as well.
func ByPattern(pattern string, patternOnly bool) (MatchFunc, error) {
	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, errors.ErrInvalidPattern.WithArgs(pattern).Wrap(err)
	}
	isJSON := ByExtension(".json")
	return func(name string) bool {
		if g.Match(strings.ToLower(name)) {
			return true
		}
		return !patternOnly && isJSON(name)
	}, nil
}

// Walker collects matching files below a root directory.
type Walker struct {
	match    MatchFunc
	excluded map[string]struct{}
	log      zerolog.Logger
}

// Option configures a Walker.
type Option func(*Walker)

// WithExcludedDirs replaces DefaultExcludedDirs.
func WithExcludedDirs(dirs ...string) Option {
	return func(w *Walker) {
		w.excluded = make(map[string]struct{}, len(dirs))
		for _, d := range dirs {
			w.excluded[d] = struct{}{}
		}
	}
}

// WithLogger sets the logger used for skip diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(w *Walker) {
		w.log = log
	}
}

// NewWalker returns a walker selecting files with match.
func NewWalker(match MatchFunc, opts ...Option) *Walker {
	w := &Walker{match: match, log: zerolog.Nop()}
	WithExcludedDirs(DefaultExcludedDirs...)(w)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk returns the matching files below root, sorted by path.
// Excluded directories are pruned, the root itself is always entered.
func (w *Walker) Walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if _, skip := w.excluded[d.Name()]; skip && path != root {
				w.log.Debug().Str("dir", path).Msg("skipping excluded directory")
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if w.match(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.ErrFailedToWalk.WithArgs(root).Wrap(err)
	}

	sort.Strings(files)
	return files, nil
}
