// Package mapping holds the old-to-new translation key table.
//
// The built-in table is embedded from keymap.json; Load reads a replacement
// table with the same flat {"old key": "new-key"} layout.
package mapping

import (
	_ "embed"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/mdblp/i18n-rekey/errors"
	"github.com/mdblp/i18n-rekey/jsondoc"
	"github.com/napalu/goopt/v2/types/orderedmap"
)

//go:embed keymap.json
var builtin []byte

var kebabCase = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Entry is a single old key -> new key pair.
type Entry struct {
	Old string
	New string
}

// Table is an immutable, ordered key mapping.
type Table struct {
	entries *orderedmap.OrderedMap[string, string]
}

// New builds a table from entries. Later duplicates overwrite earlier ones.
func New(entries ...Entry) *Table {
	t := &Table{entries: orderedmap.NewOrderedMap[string, string]()}
	for _, e := range entries {
		t.entries.Set(e.Old, e.New)
	}
	return t
}

// Default returns the built-in table.
func Default() *Table {
	t, err := Parse(builtin)
	if err != nil {
		panic("invalid built-in key mapping: " + err.Error())
	}
	return t
}

// Load reads a table from a JSON file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrFailedToLoadMapping.WithArgs(path).Wrap(err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, errors.ErrFailedToLoadMapping.WithArgs(path).Wrap(err)
	}
	return t, nil
}

// Parse decodes a flat JSON object of string values.
func Parse(data []byte) (*Table, error) {
	doc, err := jsondoc.Parse(data)
	if err != nil {
		return nil, err
	}
	t := New()
	for _, key := range doc.Keys() {
		value, ok := doc.String(key)
		if !ok {
			return nil, errors.ErrInvalidMappingValue.WithArgs(key)
		}
		t.entries.Set(key, value)
	}
	return t, nil
}

// Lookup returns the new key for old.
func (t *Table) Lookup(old string) (string, bool) {
	return t.entries.Get(old)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.entries.Len()
}

// Keys returns the old keys in table order.
func (t *Table) Keys() []string {
	keys := make([]string, 0, t.entries.Len())
	for iter := t.entries.Front(); iter != nil; iter = iter.Next() {
		keys = append(keys, *iter.Key)
	}
	return keys
}

// Entries returns all pairs in table order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, t.entries.Len())
	for iter := t.entries.Front(); iter != nil; iter = iter.Next() {
		entries = append(entries, Entry{Old: *iter.Key, New: iter.Value})
	}
	return entries
}

// SortedKeys returns the old keys in lexical order.
func (t *Table) SortedKeys() []string {
	keys := t.Keys()
	sort.Strings(keys)
	return keys
}

// ByLength returns the old keys longest first, ties in lexical order.
// A key nested inside a longer one must never be tried before it.
func (t *Table) ByLength() []string {
	keys := t.Keys()
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

// IssueKind classifies a problem found by Validate.
type IssueKind int

const (
	// IssueNotKebabCase flags a new key outside [a-z0-9-].
	IssueNotKebabCase IssueKind = iota
	// IssueChained flags a new key that is itself an old key with another target.
	IssueChained
	// IssueDuplicateTarget flags two old keys sharing a new key.
	IssueDuplicateTarget
	// IssueEmptyKey flags an empty old key.
	IssueEmptyKey
)

// Issue is a single Validate finding. Other holds the chained target or
// the first old key of a duplicate target.
type Issue struct {
	Kind   IssueKind
	OldKey string
	NewKey string
	Other  string
}

// Validate reports entries that would make a migration lossy or non-idempotent.
// Identity entries (old == new) never count as a duplicate target.
func (t *Table) Validate() []Issue {
	var issues []Issue
	owners := make(map[string]string)

	for _, e := range t.Entries() {
		if e.Old == "" {
			issues = append(issues, Issue{Kind: IssueEmptyKey, NewKey: e.New})
			continue
		}
		if !IsKebabCase(e.New) {
			issues = append(issues, Issue{Kind: IssueNotKebabCase, OldKey: e.Old, NewKey: e.New})
		}
		if next, ok := t.Lookup(e.New); ok && e.New != e.Old && next != e.New {
			issues = append(issues, Issue{Kind: IssueChained, OldKey: e.Old, NewKey: e.New, Other: next})
		}
		if e.Old == e.New {
			continue
		}
		if first, ok := owners[e.New]; ok {
			issues = append(issues, Issue{Kind: IssueDuplicateTarget, OldKey: e.Old, NewKey: e.New, Other: first})
		} else {
			owners[e.New] = e.Old
		}
	}

	return issues
}

// IsKebabCase reports whether key is a lower-case, dash-separated identifier.
func IsKebabCase(key string) bool {
	return kebabCase.MatchString(key)
}

var nonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)

const maxSuggestionLength = 50

// Suggest derives a kebab-case key from a legacy key, for operators extending the table.
func Suggest(old string) string {
	cleaned := strings.TrimSpace(nonWord.ReplaceAllString(old, " "))
	if cleaned == "" {
		return ""
	}
	key := strcase.ToKebab(cleaned)
	key = strings.Trim(key, "-")
	if runes := []rune(key); len(runes) > maxSuggestionLength {
		key = string(runes[:maxSuggestionLength])
		if i := strings.LastIndex(key, "-"); i > 0 {
			key = key[:i]
		}
	}
	return key
}
