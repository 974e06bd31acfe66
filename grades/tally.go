// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grades

// Tally is a multiset of grades stored as a count per scale level. It is
// the working representation for a candidate's collected grades during
// resolution: removing a single occurrence is O(1) and the median is a
// walk over seven buckets. The zero value is an empty tally.
type Tally struct {
	counts [NumGrades]int
	total  int
}

// NewTally builds a tally holding the given grades.
func NewTally(gs ...Grade) *Tally {
	t := &Tally{}
	for _, g := range gs {
		t.Add(g)
	}
	return t
}

// Add records one occurrence of g. g must be a valid scale level.
func (t *Tally) Add(g Grade) {
	t.counts[g]++
	t.total++
}

// AddN records n occurrences of g. g must be a valid scale level.
func (t *Tally) AddN(g Grade, n int) {
	if n <= 0 {
		return
	}
	t.counts[g] += n
	t.total += n
}

// RemoveOne removes a single occurrence of g if one is present and reports
// whether it did. Other occurrences of g are untouched.
func (t *Tally) RemoveOne(g Grade) bool {
	if !g.Valid() || t.counts[g] == 0 {
		return false
	}
	t.counts[g]--
	t.total--
	return true
}

// Count returns the number of occurrences of g.
func (t *Tally) Count(g Grade) int {
	if !g.Valid() {
		return 0
	}
	return t.counts[g]
}

// Counts returns the per-level occurrence counts, index 0 holding the
// worst level.
func (t *Tally) Counts() [NumGrades]int {
	return t.counts
}

// Total returns the number of grades held.
func (t *Tally) Total() int {
	return t.total
}

// IsEmpty reports whether the tally holds no grades.
func (t *Tally) IsEmpty() bool {
	return t.total == 0
}

// Median returns the majority-judgment median: the smallest grade whose
// cumulative count, walking worst to best, exceeds total/2. Equivalent to
// sorting all held grades by rank and taking index total/2, zero-based.
// Returns ErrNoGrades for an empty tally.
func (t *Tally) Median() (Grade, error) {
	if t.total == 0 {
		return 0, ErrNoGrades
	}
	mid := t.total / 2
	cumulative := 0
	for g := Bad; g <= Excellent; g++ {
		cumulative += t.counts[g]
		if cumulative > mid {
			return g, nil
		}
	}
	// Unreachable: the cumulative sum always reaches total.
	return 0, ErrNoGrades
}

// Grades expands the tally back into a rank-sorted slice, worst first.
func (t *Tally) Grades() []Grade {
	gs := make([]Grade, 0, t.total)
	for g := Bad; g <= Excellent; g++ {
		for i := 0; i < t.counts[g]; i++ {
			gs = append(gs, g)
		}
	}
	return gs
}

// Clone returns an independent copy of the tally.
func (t *Tally) Clone() *Tally {
	clone := *t
	return &clone
}
