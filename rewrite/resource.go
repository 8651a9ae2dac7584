package rewrite

import (
	"encoding/json"
	"strings"

	"github.com/mdblp/i18n-rekey/errors"
	"github.com/mdblp/i18n-rekey/jsondoc"
	"github.com/mdblp/i18n-rekey/mapping"
)

// CollisionMode decides what happens when two keys end up with the same name.
type CollisionMode string

const (
	// CollisionError leaves the document unwritten and reports the collision.
	CollisionError CollisionMode = "error"
	// CollisionSkip keeps the first key in document order.
	CollisionSkip CollisionMode = "skip"
	// CollisionReplace keeps the first key's position with the last key's value.
	CollisionReplace CollisionMode = "replace"
)

// ParseCollisionMode validates a --collision value. Empty means CollisionError.
func ParseCollisionMode(s string) (CollisionMode, error) {
	switch mode := CollisionMode(strings.ToLower(strings.TrimSpace(s))); mode {
	case "":
		return CollisionError, nil
	case CollisionError, CollisionSkip, CollisionReplace:
		return mode, nil
	default:
		return "", errors.ErrInvalidCollisionMode.WithArgs(s)
	}
}

// Collision lists the original keys, in document order, that resolve to NewKey.
type Collision struct {
	NewKey string
	Keys   []string
}

// ResourceResult is the outcome of rewriting one resource document.
type ResourceResult struct {
	Document *jsondoc.Document
	// Updated counts keys whose name changed.
	Updated int
	// NotFound holds keys absent from the mapping, in document order.
	NotFound []string
	// AlreadyMigrated holds keys that are already a mapping target.
	AlreadyMigrated []string
	Collisions      []Collision
	Renames         []Change
	// Counts holds matches per old key, identity entries included.
	Counts map[string]int
}

// ResourceRewriter renames keys of flat JSON documents.
type ResourceRewriter struct {
	table   *mapping.Table
	mode    CollisionMode
	targets map[string]struct{}
}

// NewResourceRewriter returns a rewriter resolving collisions with mode.
func NewResourceRewriter(table *mapping.Table, mode CollisionMode) *ResourceRewriter {
	if mode == "" {
		mode = CollisionError
	}
	targets := make(map[string]struct{}, table.Len())
	for _, e := range table.Entries() {
		targets[e.New] = struct{}{}
	}
	return &ResourceRewriter{table: table, mode: mode, targets: targets}
}

// Rewrite builds a new document with mapped keys renamed in place and values untouched.
// In CollisionError mode a collision yields the result along with ErrKeyCollision.
func (r *ResourceRewriter) Rewrite(doc *jsondoc.Document) (*ResourceResult, error) {
	result := &ResourceResult{Document: jsondoc.NewLike(doc), Counts: make(map[string]int)}
	out := result.Document
	owners := make(map[string]int)

	doc.Each(func(key string, value json.RawMessage) {
		name := key
		if newKey, ok := r.table.Lookup(key); ok {
			result.Counts[key]++
			name = newKey
			if newKey == key {
				result.AlreadyMigrated = append(result.AlreadyMigrated, key)
			} else {
				result.Updated++
				result.Renames = append(result.Renames, Change{OldKey: key, NewKey: newKey, Count: 1})
			}
		} else if _, ok := r.targets[key]; ok {
			result.AlreadyMigrated = append(result.AlreadyMigrated, key)
		} else if !strings.HasPrefix(key, "$") {
			result.NotFound = append(result.NotFound, key)
		}

		if !out.Has(name) {
			out.Set(name, value)
			return
		}

		idx, seen := owners[name]
		if !seen {
			idx = len(result.Collisions)
			owners[name] = idx
			result.Collisions = append(result.Collisions, Collision{NewKey: name, Keys: []string{r.ownerOf(doc, name)}})
		}
		result.Collisions[idx].Keys = append(result.Collisions[idx].Keys, key)

		if r.mode == CollisionReplace {
			out.Set(name, value)
		}
	})

	if len(result.Collisions) > 0 && r.mode == CollisionError {
		return result, errors.ErrKeyCollision.WithArgs(len(result.Collisions))
	}
	return result, nil
}

// ownerOf returns the first key of doc that resolves to name.
func (r *ResourceRewriter) ownerOf(doc *jsondoc.Document, name string) string {
	for _, key := range doc.Keys() {
		resolved := key
		if newKey, ok := r.table.Lookup(key); ok {
			resolved = newKey
		}
		if resolved == name {
			return key
		}
	}
	return name
}
