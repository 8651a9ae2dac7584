package rewrite

import (
	"github.com/mdblp/i18n-rekey/mapping"
)

// Stats accumulates per-key match counts across every file of a run.
// It is not safe for concurrent use.
type Stats struct {
	counts map[string]int
}

// NewStats returns empty stats.
func NewStats() *Stats {
	return &Stats{counts: make(map[string]int)}
}

// Add records n more occurrences of oldKey.
func (s *Stats) Add(oldKey string, n int) {
	if n <= 0 {
		return
	}
	s.counts[oldKey] += n
}

// Merge adds the per-key counts of one file.
func (s *Stats) Merge(counts map[string]int) {
	for oldKey, n := range counts {
		s.Add(oldKey, n)
	}
}

// Count returns the occurrences recorded for oldKey.
func (s *Stats) Count(oldKey string) int {
	return s.counts[oldKey]
}

// Total returns the sum of all recorded occurrences.
func (s *Stats) Total() int {
	total := 0
	for _, n := range s.counts {
		total += n
	}
	return total
}

// Usage is one mapping entry and how often it matched.
type Usage struct {
	OldKey string
	NewKey string
	Count  int
}

// Usage splits table entries into used and unused, both sorted by old key.
func (s *Stats) Usage(table *mapping.Table) (used, unused []Usage) {
	for _, oldKey := range table.SortedKeys() {
		newKey, _ := table.Lookup(oldKey)
		u := Usage{OldKey: oldKey, NewKey: newKey, Count: s.counts[oldKey]}
		if u.Count > 0 {
			used = append(used, u)
		} else {
			unused = append(unused, u)
		}
	}
	return used, unused
}
