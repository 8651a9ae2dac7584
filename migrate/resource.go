package migrate

import (
	"os"
	"time"
	"unicode/utf8"

	"github.com/mdblp/i18n-rekey/discover"
	"github.com/mdblp/i18n-rekey/errors"
	"github.com/mdblp/i18n-rekey/jsondoc"
	"github.com/mdblp/i18n-rekey/messages"
	"github.com/mdblp/i18n-rekey/options"
	"github.com/mdblp/i18n-rekey/rewrite"
)

type resourceRun struct {
	*session
	rewriter *rewrite.ResourceRewriter
	mode     rewrite.CollisionMode
}

// Resource renames keys in JSON translation resources.
// Per-file failures are reported and counted; only path, mapping and
// configuration problems are returned as errors.
func (r *Runner) Resource(cfg *options.ResourceConfig) (*Summary, error) {
	start := time.Now()
	mode, err := rewrite.ParseCollisionMode(cfg.Collision)
	if err != nil {
		return nil, err
	}
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = "translation.json"
	}
	match, err := discover.ByPattern(pattern, cfg.PatternOnly)
	if err != nil {
		return nil, err
	}

	s, err := r.newSession(cfg.Common())
	if err != nil {
		return nil, err
	}
	run := &resourceRun{
		session:  s,
		rewriter: rewrite.NewResourceRewriter(s.table, mode),
		mode:     mode,
	}

	s.rep.Title(messages.Keys.AppRun.TitleResource)
	if len(s.issues) > 0 {
		s.rep.Blank()
		s.warnMapping()
	}
	if s.common.DryRun {
		s.rep.Blank()
		s.rep.Println(messages.Keys.AppRun.DryRunBanner)
		s.rep.Blank()
	}

	summary := &Summary{}

	if s.common.File != "" {
		if err := s.checkFile(); err != nil {
			return nil, err
		}
		s.rep.Blank()
		s.rep.Println(messages.Keys.AppRun.ProcessingFile, s.common.File)
		s.rep.Rule("-")
		summary.Found = 1
		notFound := run.resourceFile(s.common.File, summary)
		if cfg.ShowUnmapped {
			s.rep.Unmapped(notFound, false, cfg.Suggest)
		}
	} else {
		if err := s.checkDirectory(); err != nil {
			return nil, err
		}
		s.rep.Blank()
		s.rep.Println(messages.Keys.AppRun.SearchingResource, s.absRoot())
		s.rep.Println(messages.Keys.AppRun.FilenamePattern, pattern)
		s.rep.Blank()

		files, err := discover.NewWalker(match, discover.WithLogger(s.log)).Walk(s.common.Directory)
		if err != nil {
			return nil, err
		}
		if len(files) == 0 {
			s.rep.Println(messages.Keys.AppRun.NoResourceFiles)
			s.finish(summary)
			return summary, nil
		}

		summary.Found = len(files)
		s.rep.Println(messages.Keys.AppRun.FoundResourceFiles, len(files))
		s.rep.Rule("-")
		for _, path := range files {
			s.rep.Blank()
			s.rep.Println(messages.Keys.AppRun.FileHeading, s.relative(path))
			summary.Unmapped = append(summary.Unmapped, run.resourceFile(path, summary)...)
		}
	}

	s.finish(summary)
	s.rep.ResourceSummary(summary.Totals)
	if s.common.File == "" && cfg.ShowUnmapped {
		s.rep.Unmapped(summary.Unmapped, true, cfg.Suggest)
	}
	s.rep.Usage(summary.Used, summary.Unused)
	s.rep.Finish(s.common.DryRun)
	s.log.Debug().Dur("elapsed", time.Since(start)).Int("files", summary.Found).Msg("resource run finished")
	return summary, nil
}

// resourceFile processes one document and returns its unmapped keys.
func (run *resourceRun) resourceFile(path string, summary *Summary) []string {
	result := FileResult{Path: path}
	defer func() {
		summary.Files = append(summary.Files, result)
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		result.Err = errors.ErrFailedToReadFile.WithArgs(path).Wrap(err)
		run.fail(path, result.Err, summary)
		return nil
	}
	if !utf8.Valid(data) {
		result.Err = errors.ErrInvalidEncoding.WithArgs(path)
		run.fail(path, result.Err, summary)
		return nil
	}

	doc, err := jsondoc.Parse(data)
	if err != nil {
		result.Err = errors.ErrInvalidJson.WithArgs(path).Wrap(err)
		run.fail(path, result.Err, summary)
		return nil
	}

	rewritten, err := run.rewriter.Rewrite(doc)
	if len(rewritten.Collisions) > 0 {
		run.rep.Collisions(rewritten.Collisions, run.mode)
	}
	if err != nil {
		result.Err = err
		run.fail(path, err, summary)
		return nil
	}

	if rewritten.Updated == 0 {
		run.stats.Merge(rewritten.Counts)
		summary.Unchanged++
		run.rep.Println(messages.Keys.AppRun.NoKeysUpdated)
		return rewritten.NotFound
	}

	if !run.common.DryRun {
		out, err := rewritten.Document.Marshal()
		if err == nil {
			err = run.write(path, data, out)
		}
		if err != nil {
			result.Err = err
			run.fail(path, err, summary)
			return rewritten.NotFound
		}
	}

	run.stats.Merge(rewritten.Counts)
	result.Modified = true
	result.Changes = rewritten.Renames
	summary.Modified++
	summary.KeysUpdated += rewritten.Updated

	if run.common.DryRun {
		run.rep.Println(messages.Keys.AppRun.WouldUpdateKeys, rewritten.Updated)
	} else {
		run.rep.Println(messages.Keys.AppRun.UpdatedKeys, rewritten.Updated)
	}
	if run.common.Verbose {
		for _, c := range rewritten.Renames {
			run.rep.Println(messages.Keys.AppRun.Rename, c.OldKey, c.NewKey)
		}
	}
	return rewritten.NotFound
}
