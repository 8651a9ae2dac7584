package migrate

import (
	"os"
	"time"
	"unicode/utf8"

	"github.com/mdblp/i18n-rekey/discover"
	"github.com/mdblp/i18n-rekey/errors"
	"github.com/mdblp/i18n-rekey/messages"
	"github.com/mdblp/i18n-rekey/options"
	"github.com/mdblp/i18n-rekey/rewrite"
)

// Source rewrites translation call keys in source files.
// Per-file failures are reported and counted; only path, mapping and
// configuration problems are returned as errors.
func (r *Runner) Source(cfg *options.SourceConfig) (*Summary, error) {
	start := time.Now()
	s, err := r.newSession(cfg.Common())
	if err != nil {
		return nil, err
	}

	rewriter, err := rewrite.NewSourceRewriter(s.table, cfg.Functions...)
	if err != nil {
		return nil, err
	}

	s.rep.Title(messages.Keys.AppRun.TitleSource)
	s.rep.Blank()
	s.warnMapping()
	if s.common.DryRun {
		s.rep.Println(messages.Keys.AppRun.DryRunBanner)
		s.rep.Blank()
	}

	summary := &Summary{}

	if s.common.File != "" {
		if err := s.checkFile(); err != nil {
			return nil, err
		}
		s.rep.Println(messages.Keys.AppRun.ProcessingFile, s.common.File)
		summary.Found = 1
		result := s.sourceFile(rewriter, s.common.File, summary)
		if !result.Modified && result.Err == nil {
			s.rep.Blank()
			s.rep.Println(messages.Keys.AppRun.NoChangesNeeded, s.common.File)
		}
	} else {
		if err := s.checkDirectory(); err != nil {
			return nil, err
		}
		s.rep.Println(messages.Keys.AppRun.SearchingSource, s.absRoot())
		s.rep.Blank()

		extensions := cfg.Extensions
		if len(extensions) == 0 {
			extensions = discover.SourceExtensions
		}
		walker := discover.NewWalker(discover.ByExtension(extensions...), discover.WithLogger(s.log))
		files, err := walker.Walk(s.common.Directory)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			s.rep.Println(messages.Keys.AppRun.NoSourceFiles)
			s.finish(summary)
			return summary, nil
		}

		summary.Found = len(files)
		s.rep.Println(messages.Keys.AppRun.FoundSourceFiles, len(files))
		s.rep.Blank()
		s.rep.Rule("=")
		for _, path := range files {
			s.sourceFile(rewriter, path, summary)
		}
	}

	s.finish(summary)
	s.rep.SourceSummary(summary.Totals, summary.Used, summary.Unused)
	s.rep.Finish(s.common.DryRun)
	s.log.Debug().Dur("elapsed", time.Since(start)).Int("files", summary.Found).Msg("source run finished")
	return summary, nil
}

func (s *session) sourceFile(rewriter *rewrite.SourceRewriter, path string, summary *Summary) FileResult {
	result := FileResult{Path: path}
	defer func() {
		summary.Files = append(summary.Files, result)
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = errors.ErrFailedToReadFile.WithArgs(path).Wrap(err)
		s.fail(path, result.Err, summary)
		return result
	}
	if !utf8.Valid(data) {
		result.Err = errors.ErrInvalidEncoding.WithArgs(path)
		s.fail(path, result.Err, summary)
		return result
	}

	rewritten := rewriter.Rewrite(string(data))
	if !rewritten.Modified {
		s.stats.Merge(rewritten.Counts)
		summary.Unchanged++
		if s.common.Verbose {
			s.rep.Println(messages.Keys.AppRun.Unchanged, path)
		}
		return result
	}

	if !s.common.DryRun {
		if err := s.write(path, data, []byte(rewritten.Content)); err != nil {
			result.Err = err
			s.fail(path, err, summary)
			return result
		}
	}

	s.stats.Merge(rewritten.Counts)
	result.Modified = true
	result.Changes = rewritten.Changes
	summary.Modified++
	s.rep.SourceChanges(path, s.common.DryRun, rewritten.Changes)
	return result
}

func (s *session) fail(path string, err error, summary *Summary) {
	summary.Failed++
	s.log.Debug().Err(err).Str("file", path).Msg("file skipped")
	s.rep.Blank()
	s.rep.Error(path, err)
}
