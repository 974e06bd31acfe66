// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package election implements majority-judgment election resolution:
// ballot aggregation, median comparison, and the tie-break procedure
// that settles shared best medians.
//
// # Resolution
//
// Every candidate's grades are collected into a tally and compared by
// median. The best median wins outright. When several candidates share
// the best median, each of them discards one occurrence of that median
// grade and the comparison repeats among the tied candidates only;
// everyone else is permanently out. Collections shrink every round, so
// the loop always terminates: either one candidate separates, or the
// tied candidates run out of grades together and a uniform random draw
// decides between entrants that have become indistinguishable.
//
// # Determinism
//
// Resolution is a pure function of its inputs except for the exhaustion
// draw. The draw's randomness comes from an injectable Source; the
// default is crypto-backed, and a seeded math/rand/v2 generator makes
// runs fully reproducible. Candidates are always processed in name
// order, never map order.
//
// # Preconditions
//
// Elect and Rankings validate on entry that at least one ballot was
// cast, that every ballot grades exactly the election's candidate set,
// and that every grade is on the scale, returning ErrNoBallots,
// ErrBallotMismatch, or ErrInvalidGrade otherwise. Internal steps
// assume validated input and do not re-check it.
//
// # Concurrency
//
// An Election is immutable after New. Elect, Rankings, and Resolve
// derive all intermediate state fresh per call, so concurrent calls
// from independent goroutines need no coordination.
package election
