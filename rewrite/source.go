// Package rewrite renames translation keys in source text and in resource documents.
package rewrite

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mdblp/i18n-rekey/errors"
	"github.com/mdblp/i18n-rekey/mapping"
)

// DefaultFunctions are the translation call names matched when none are given.
var DefaultFunctions = []string{"t", "translate"}

// Change describes one key renamed in a file.
type Change struct {
	OldKey string
	NewKey string
	Count  int
}

func (c Change) String() string {
	return fmt.Sprintf("'%s' -> '%s' (%d occurrence(s))", c.OldKey, c.NewKey, c.Count)
}

// SourceResult is the outcome of rewriting one source text.
type SourceResult struct {
	Content  string
	Modified bool
	Changes  []Change
	// Counts holds occurrences per old key, identity entries included.
	Counts map[string]int
}

// SourceRewriter rewrites the literal key of translation calls such as t('Key').
type SourceRewriter struct {
	table   *mapping.Table
	pattern *regexp.Regexp
}

// NewSourceRewriter compiles a matcher for the given call names (DefaultFunctions when empty).
func NewSourceRewriter(table *mapping.Table, functions ...string) (*SourceRewriter, error) {
	if len(functions) == 0 {
		functions = DefaultFunctions
	}

	r := &SourceRewriter{table: table}
	if table.Len() == 0 {
		return r, nil
	}

	calls := make([]string, 0, len(functions))
	for _, fn := range functions {
		fn = strings.TrimSpace(fn)
		if fn == "" {
			return nil, errors.ErrInvalidFunctionName.WithArgs(fn)
		}
		call := regexp.QuoteMeta(fn)
		// RE2 word boundaries are ASCII only
		if first, _ := utf8.DecodeRuneInString(fn); first < utf8.RuneSelf && (first == '_' || unicode.IsLetter(first) || unicode.IsDigit(first)) {
			call = `\b` + call
		}
		calls = append(calls, call)
	}

	keys := table.ByLength()
	quoted := make([]string, len(keys))
	for i, key := range keys {
		quoted[i] = regexp.QuoteMeta(key)
	}
	alt := strings.Join(quoted, "|")

	// group 1: single-quoted key, group 2: double-quoted key
	expr := fmt.Sprintf(`(?:%s)\s*\(\s*(?:'(%s)'|"(%s)")`, strings.Join(calls, "|"), alt, alt)
	pattern, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	r.pattern = pattern
	return r, nil
}

// Rewrite substitutes every mapped key found inside a translation call in one pass,
// so a replaced key is never matched again in the same run.
func (r *SourceRewriter) Rewrite(content string) SourceResult {
	result := SourceResult{Content: content}
	if r.pattern == nil {
		return result
	}

	matches := r.pattern.FindAllStringSubmatchIndex(content, -1)
	if len(matches) == 0 {
		return result
	}

	counts := make(map[string]int)
	var order []string
	var b strings.Builder
	b.Grow(len(content))
	last := 0

	for _, m := range matches {
		start, end := m[2], m[3]
		if start < 0 {
			start, end = m[4], m[5]
		}
		oldKey := content[start:end]
		newKey, _ := r.table.Lookup(oldKey)

		if _, seen := counts[oldKey]; !seen {
			order = append(order, oldKey)
		}
		counts[oldKey]++

		b.WriteString(content[last:start])
		b.WriteString(newKey)
		last = end
	}
	b.WriteString(content[last:])

	result.Counts = counts
	for _, oldKey := range order {
		newKey, _ := r.table.Lookup(oldKey)
		if newKey == oldKey {
			continue
		}
		result.Changes = append(result.Changes, Change{OldKey: oldKey, NewKey: newKey, Count: counts[oldKey]})
	}
	if len(result.Changes) == 0 {
		return result
	}

	sort.SliceStable(result.Changes, func(i, j int) bool {
		a, c := result.Changes[i].OldKey, result.Changes[j].OldKey
		if len(a) != len(c) {
			return len(a) > len(c)
		}
		return a < c
	})
	result.Content = b.String()
	result.Modified = true
	return result
}
