// Package report prints the line-oriented console output of a migration run.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mdblp/i18n-rekey/mapping"
	"github.com/mdblp/i18n-rekey/messages"
	"github.com/mdblp/i18n-rekey/rewrite"
	"github.com/napalu/goopt/v2/i18n"
)

const (
	// FileUnmappedLimit caps the unmapped keys listed for a single file.
	FileUnmappedLimit = 10
	// BatchUnmappedLimit caps the unmapped keys listed for a whole batch.
	BatchUnmappedLimit = 20
)

// Totals are the per-run file and key counters.
type Totals struct {
	Found       int
	Modified    int
	Unchanged   int
	Failed      int
	KeysUpdated int
}

// Reporter writes translated console lines.
type Reporter struct {
	out   io.Writer
	tr    i18n.Translator
	width int
}

// New returns a reporter writing to out. A width <= 0 means MaxWidth.
func New(out io.Writer, tr i18n.Translator, width int) *Reporter {
	if width <= 0 {
		width = MaxWidth
	}
	return &Reporter{out: out, tr: tr, width: width}
}

// Println writes the message for key.
func (r *Reporter) Println(key string, args ...interface{}) {
	fmt.Fprintln(r.out, r.tr.T(key, args...))
}

// Blank writes an empty line.
func (r *Reporter) Blank() {
	fmt.Fprintln(r.out)
}

// Rule writes a separator line made of ch.
func (r *Reporter) Rule(ch string) {
	fmt.Fprintln(r.out, strings.Repeat(ch, r.width))
}

// Title writes the message for key framed by rules.
func (r *Reporter) Title(key string) {
	r.Rule("=")
	r.Println(key)
	r.Rule("=")
}

// Error writes a per-file failure with its translated cause.
func (r *Reporter) Error(path string, err error) {
	r.Println(messages.Keys.AppRun.ErrorProcessingFile, path, messages.RenderError(r.tr, err))
}

// MappingIssues writes one warning per mapping table issue.
func (r *Reporter) MappingIssues(issues []mapping.Issue) {
	for _, issue := range issues {
		r.Println(messages.Keys.AppRun.MappingWarning, r.issueText(issue))
	}
}

func (r *Reporter) issueText(issue mapping.Issue) string {
	switch issue.Kind {
	case mapping.IssueNotKebabCase:
		return r.tr.T(messages.Keys.AppMapping.NotKebabCase, issue.OldKey, issue.NewKey)
	case mapping.IssueChained:
		return r.tr.T(messages.Keys.AppMapping.Chained, issue.OldKey, issue.NewKey, issue.Other)
	case mapping.IssueDuplicateTarget:
		return r.tr.T(messages.Keys.AppMapping.DuplicateTarget, issue.Other, issue.OldKey, issue.NewKey)
	default:
		return r.tr.T(messages.Keys.AppMapping.EmptyKey, issue.NewKey)
	}
}

// SourceChanges writes the modified (or would-modify) line and one line per change.
func (r *Reporter) SourceChanges(path string, dryRun bool, changes []rewrite.Change) {
	r.Blank()
	if dryRun {
		r.Println(messages.Keys.AppRun.WouldModify, path)
	} else {
		r.Println(messages.Keys.AppRun.Modified, path)
	}
	for _, c := range changes {
		r.Println(messages.Keys.AppRun.Change, c.OldKey, c.NewKey, c.Count)
	}
}

// Collisions writes the key collisions of one resource file.
func (r *Reporter) Collisions(collisions []rewrite.Collision, mode rewrite.CollisionMode) {
	for _, c := range collisions {
		keys := "'" + strings.Join(c.Keys, "', '") + "'"
		if mode == rewrite.CollisionError {
			r.Println(messages.Keys.AppRun.Collision, c.NewKey, keys)
		} else {
			r.Println(messages.Keys.AppRun.CollisionResolved, c.NewKey, string(mode), keys)
		}
	}
}

// Unmapped lists keys missing from the mapping, at most limit of them. Batch
// listings are de-duplicated and sorted; file listings keep document order.
func (r *Reporter) Unmapped(keys []string, batch, suggest bool) {
	limit := FileUnmappedLimit
	header := messages.Keys.AppSummary.UnmappedFile
	if batch {
		limit = BatchUnmappedLimit
		header = messages.Keys.AppSummary.UnmappedBatch
		keys = uniqueSorted(keys)
	}
	if len(keys) == 0 {
		return
	}

	r.Blank()
	r.Println(header, len(keys))
	for i, key := range keys {
		if i == limit {
			r.Println(messages.Keys.AppSummary.UnmappedMore, len(keys)-limit)
			break
		}
		if s := mapping.Suggest(key); suggest && s != "" {
			r.Println(messages.Keys.AppSummary.UnmappedKeySuggest, key, s)
		} else {
			r.Println(messages.Keys.AppSummary.UnmappedKey, key)
		}
	}
}

// SourceSummary writes the batch summary of a source run including per-key usage.
func (r *Reporter) SourceSummary(t Totals, used, unused []rewrite.Usage) {
	r.Blank()
	r.Rule("=")
	r.Blank()
	r.Println(messages.Keys.AppSummary.Title)
	r.Println(messages.Keys.AppSummary.TotalProcessed, t.Found)
	r.Println(messages.Keys.AppSummary.FilesModified, t.Modified)
	r.Println(messages.Keys.AppSummary.FilesUnchanged, t.Unchanged)
	if t.Failed > 0 {
		r.Println(messages.Keys.AppSummary.FilesFailed, t.Failed)
	}
	r.Usage(used, unused)
}

// ResourceSummary writes the batch summary of a resource run.
func (r *Reporter) ResourceSummary(t Totals) {
	r.Blank()
	r.Rule("=")
	r.Println(messages.Keys.AppSummary.Title)
	r.Rule("=")
	r.Println(messages.Keys.AppSummary.TotalFound, t.Found)
	r.Println(messages.Keys.AppSummary.FilesModified, t.Modified)
	if t.Failed > 0 {
		r.Println(messages.Keys.AppSummary.FilesFailed, t.Failed)
	}
	r.Println(messages.Keys.AppSummary.KeysUpdated, t.KeysUpdated)
}

// Usage writes which mapping keys matched and which never did.
func (r *Reporter) Usage(used, unused []rewrite.Usage) {
	r.Blank()
	r.Println(messages.Keys.AppSummary.ReplacementTitle)
	r.Rule("-")
	for _, u := range used {
		r.Println(messages.Keys.AppSummary.KeyReplaced, u.OldKey, u.Count)
	}

	if len(unused) > 0 {
		r.Blank()
		r.Println(messages.Keys.AppSummary.UnusedTitle)
		r.Rule("-")
		for _, u := range unused {
			r.Println(messages.Keys.AppSummary.UnusedKey, u.OldKey)
		}
	}

	r.Blank()
	r.Println(messages.Keys.AppSummary.UnusedHint)
}

// Finish writes the closing line.
func (r *Reporter) Finish(dryRun bool) {
	r.Blank()
	if dryRun {
		r.Println(messages.Keys.AppRun.RunWithoutDryRun)
	} else {
		r.Println(messages.Keys.AppRun.Done)
	}
}

func uniqueSorted(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	unique := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}
	sort.Strings(unique)
	return unique
}
