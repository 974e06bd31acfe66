// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package grades

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Grade is one level of the fixed seven-level ordinal scale. Grades are
// compared by rank only; label text never participates in ordering.
type Grade int

// Scale levels, worst to best. Declaration order defines the total order.
const (
	Bad Grade = iota
	Mediocre
	Inadequate
	Passable
	Good
	VeryGood
	Excellent
)

// NumGrades is the number of levels in the scale.
const NumGrades = 7

// Grade errors
var (
	ErrNoGrades     = errors.New("no grades")
	ErrUnknownGrade = errors.New("unknown grade")
)

var gradeNames = [NumGrades]string{
	"bad", "mediocre", "inadequate", "passable", "good", "very_good", "excellent",
}

var gradeLabels = [NumGrades]string{
	"Bad", "Mediocre", "Inadequate", "Passable", "Good", "Very Good", "Excellent",
}

// Valid reports whether g is one of the seven scale levels.
func (g Grade) Valid() bool {
	return g >= Bad && g <= Excellent
}

// Rank returns the numeric rank of g: 0 for the worst level, 6 for the best.
func (g Grade) Rank() int {
	return int(g)
}

// String returns the canonical lowercase name, e.g. "very_good".
func (g Grade) String() string {
	if !g.Valid() {
		return fmt.Sprintf("grade(%d)", int(g))
	}
	return gradeNames[g]
}

// Label returns the display form, e.g. "Very Good".
func (g Grade) Label() string {
	if !g.Valid() {
		return g.String()
	}
	return gradeLabels[g]
}

// MarshalText implements encoding.TextMarshaler with the canonical name,
// so grades encode as readable strings in JSON.
func (g Grade) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGrade, int(g))
	}
	return []byte(gradeNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (g *Grade) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Parse maps a raw grade label to its Grade. Matching is tolerant of case,
// surrounding whitespace, and separator style ("VeryGood", "very_good" and
// "Very Good" all parse). Returns ErrUnknownGrade for anything else.
func Parse(label string) (Grade, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	key = strings.ReplaceAll(key, " ", "")
	key = strings.ReplaceAll(key, "_", "")
	for g := Bad; g <= Excellent; g++ {
		if strings.ReplaceAll(gradeNames[g], "_", "") == key {
			return g, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGrade, label)
}

// Scale returns all grades in ascending order, worst first.
func Scale() []Grade {
	s := make([]Grade, NumGrades)
	for i := range s {
		s[i] = Grade(i)
	}
	return s
}

// Median returns the majority-judgment median of gs: the element at index
// size/2 (zero-based, integer division) of the rank-sorted sequence. For
// even sizes this deterministically selects the upper of the two middle
// elements. The input slice is not modified. Returns ErrNoGrades for an
// empty input.
func Median(gs []Grade) (Grade, error) {
	if len(gs) == 0 {
		return 0, ErrNoGrades
	}
	sorted := make([]Grade, len(gs))
	copy(sorted, gs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Rank() < sorted[j].Rank()
	})
	return sorted[len(sorted)/2], nil
}
