// Package score tracks the round total and the per-identity hit tally.
package score

import (
	"cmp"
	"slices"
)

// PointsPerHit is awarded for every credited hit.
const PointsPerHit = 10

// Entry is one row of the tally.
type Entry struct {
	Name  string
	Count int
}

// Points returns the score contributed by this identity.
func (e Entry) Points() int {
	return e.Count * PointsPerHit
}

// Tracker holds the running total and per-identity counts for one round.
// Not safe for concurrent use; the round loop owns it.
type Tracker struct {
	total  int
	order  []string
	counts map[string]int
}

// NewTracker creates a tracker with every name in the roster at zero.
func NewTracker(names ...string) *Tracker {
	t := &Tracker{}
	t.Reset(names...)
	return t
}

// Reset zeroes the total and replaces the tally with the given roster.
func (t *Tracker) Reset(names ...string) {
	t.total = 0
	t.order = t.order[:0]
	t.counts = make(map[string]int, len(names))
	for _, name := range names {
		if _, ok := t.counts[name]; ok {
			continue
		}
		t.counts[name] = 0
		t.order = append(t.order, name)
	}
}

// Credit records one hit on the named identity.
func (t *Tracker) Credit(name string) {
	if _, ok := t.counts[name]; !ok {
		t.order = append(t.order, name)
	}
	t.counts[name]++
	t.total += PointsPerHit
}

// Total returns the round score.
func (t *Tracker) Total() int {
	return t.total
}

// Hits returns the number of credited hits for name.
func (t *Tracker) Hits(name string) int {
	return t.counts[name]
}

// Ranked returns the tally sorted by count descending. Ties keep roster order.
func (t *Tracker) Ranked() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, name := range t.order {
		entries = append(entries, Entry{Name: name, Count: t.counts[name]})
	}
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return entries
}
