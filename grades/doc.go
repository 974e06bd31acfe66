// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package grades defines the ordinal grading scale used by majority
// judgment and the median operation the method is built on.
//
// # The Scale
//
// The scale has seven fixed levels, worst to best: Bad, Mediocre,
// Inadequate, Passable, Good, VeryGood, Excellent. Declaration order is
// the total order; every comparison goes through the integer Rank (0 for
// Bad, 6 for Excellent) and never through label text. Labels exist only
// at the boundaries: Parse turns raw voter-facing strings into Grade
// values and String/Label render them back.
//
// # The Median Rule
//
// Median sorts a grade sequence by rank and returns the element at index
// size/2, zero-based with integer division. For odd sizes that is the
// exact middle; for even sizes it is deterministically the upper of the
// two middle elements. Both Median and Tally.Median implement the same
// rule and always agree.
//
// # Tallies
//
// A Tally stores a candidate's grades as a count per scale level instead
// of a flat list. Tie-break rounds remove one occurrence of a grade at a
// time, and the count representation makes that removal O(1) while the
// median remains a seven-bucket walk.
package grades
