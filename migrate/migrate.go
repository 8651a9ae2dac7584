// Package migrate runs a key migration over a file or a directory tree.
package migrate

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdblp/i18n-rekey/errors"
	"github.com/mdblp/i18n-rekey/mapping"
	"github.com/mdblp/i18n-rekey/options"
	"github.com/mdblp/i18n-rekey/report"
	"github.com/mdblp/i18n-rekey/rewrite"
	"github.com/napalu/goopt/v2/i18n"
	"github.com/rs/zerolog"
)

// FileResult is the outcome for one file.
type FileResult struct {
	Path     string
	Modified bool
	Changes  []rewrite.Change
	Err      error
}

// Summary is the outcome of a run.
type Summary struct {
	report.Totals
	Files    []FileResult
	Used     []rewrite.Usage
	Unused   []rewrite.Usage
	Unmapped []string
}

// Runner executes migrations, writing console output to out.
type Runner struct {
	out   io.Writer
	tr    i18n.Translator
	log   zerolog.Logger
	width int
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the diagnostics logger.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Runner) {
		r.log = log
	}
}

// WithWidth sets the separator width.
func WithWidth(width int) Option {
	return func(r *Runner) {
		r.width = width
	}
}

// NewRunner returns a runner printing through tr.
func NewRunner(out io.Writer, tr i18n.Translator, opts ...Option) *Runner {
	r := &Runner{out: out, tr: tr, log: zerolog.Nop(), width: report.MaxWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// session holds the state of a single run.
type session struct {
	common options.Common
	table  *mapping.Table
	stats  *rewrite.Stats
	rep    *report.Reporter
	log    zerolog.Logger
	root   string
	issues []mapping.Issue
}

func (r *Runner) newSession(common options.Common) (*session, error) {
	s := &session{
		common: common,
		stats:  rewrite.NewStats(),
		rep:    report.New(r.out, r.tr, r.width),
		log:    r.log,
	}

	if common.Mapping != "" {
		table, err := mapping.Load(common.Mapping)
		if err != nil {
			return nil, err
		}
		s.table = table
		s.log.Debug().Str("path", common.Mapping).Int("entries", table.Len()).Msg("loaded key mapping")
	} else {
		s.table = mapping.Default()
	}

	s.issues = s.table.Validate()
	return s, nil
}

// warnMapping prints the mapping issues found when the session started.
func (s *session) warnMapping() {
	if len(s.issues) == 0 {
		return
	}
	s.log.Debug().Int("issues", len(s.issues)).Msg("key mapping has issues")
	s.rep.MappingIssues(s.issues)
	s.rep.Blank()
}

// checkFile validates the --file target and sets the backup root to its directory.
func (s *session) checkFile() error {
	info, err := os.Stat(s.common.File)
	if err != nil || info.IsDir() {
		if err == nil {
			err = os.ErrNotExist
		}
		return errors.ErrFileNotFound.WithArgs(s.common.File).Wrap(err)
	}
	s.root = filepath.Dir(s.common.File)
	return nil
}

// checkDirectory validates the positional directory and sets it as the backup root.
func (s *session) checkDirectory() error {
	dir := s.common.Directory
	if dir == "" {
		dir = "."
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		if err == nil {
			err = os.ErrNotExist
		}
		return errors.ErrDirectoryNotFound.WithArgs(dir).Wrap(err)
	}
	s.common.Directory = dir
	s.root = dir
	return nil
}

func (s *session) absRoot() string {
	abs, err := filepath.Abs(s.root)
	if err != nil {
		return s.root
	}
	return abs
}

// relative returns path relative to the run root for display.
func (s *session) relative(path string) string {
	rel, err := filepath.Rel(s.root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// write replaces path with data, backing up original first when a backup
// directory is set. The file keeps its permissions.
func (s *session) write(path string, original, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.ErrFailedToWriteFile.WithArgs(path).Wrap(err)
	}

	if s.common.BackupDir != "" {
		rel := s.relative(path)
		if filepath.IsAbs(rel) {
			rel = filepath.Base(path)
		}
		backup := filepath.Join(s.common.BackupDir, rel)
		if err := os.MkdirAll(filepath.Dir(backup), 0755); err != nil {
			return errors.ErrFailedToBackupFile.WithArgs(path).Wrap(err)
		}
		if err := os.WriteFile(backup, original, info.Mode().Perm()); err != nil {
			return errors.ErrFailedToBackupFile.WithArgs(path).Wrap(err)
		}
		s.log.Debug().Str("file", path).Str("backup", backup).Msg("backup written")
	}

	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return errors.ErrFailedToWriteFile.WithArgs(path).Wrap(err)
	}
	return nil
}

func (s *session) finish(summary *Summary) {
	summary.Used, summary.Unused = s.stats.Usage(s.table)
}
