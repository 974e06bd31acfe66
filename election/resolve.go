// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"sort"

	"github.com/danielhkuo/majority-judgment/grades"
	"github.com/danielhkuo/majority-judgment/models"
)

// Aggregate groups every grade from every ballot by candidate. Each
// occurrence is preserved: N ballots yield a tally of exactly N grades
// per candidate. Pure; the ballots are not modified.
func Aggregate(ballots []models.Ballot) map[models.Candidate]*grades.Tally {
	perCandidate := make(map[models.Candidate]*grades.Tally)
	for _, b := range ballots {
		for c, g := range b.Grades {
			tally, ok := perCandidate[c]
			if !ok {
				tally = grades.NewTally()
				perCandidate[c] = tally
			}
			tally.Add(g)
		}
	}
	return perCandidate
}

// Resolve determines the majority-judgment winner for the given
// per-candidate tallies: the candidate with the best median grade, with
// tied candidates settled by repeatedly discarding one shared best-median
// occurrence each and recomparing among themselves. When every remaining
// tally is empty the winner is drawn uniformly from src, the single
// non-deterministic path. A nil src falls back to CryptoSource.
//
// Resolve consumes the tallies it is given; Clone them first if they are
// needed afterwards.
func Resolve(perCandidate map[models.Candidate]*grades.Tally, src Source) (models.Candidate, error) {
	winner, _, err := resolve(perCandidate, src)
	return winner, err
}

// resolve additionally reports how many tie-break rounds ran.
func resolve(perCandidate map[models.Candidate]*grades.Tally, src Source) (models.Candidate, int, error) {
	if len(perCandidate) == 0 {
		return "", 0, ErrNoCandidates
	}
	if src == nil {
		src = CryptoSource()
	}

	// Fixed name order keeps every pass, and especially the exhaustion
	// draw, reproducible under a seeded source.
	remaining := sortedCandidates(perCandidate)

	rounds := 0
	for {
		if allEmpty(perCandidate, remaining) {
			// Grades exhausted with candidates still tied: they are
			// indistinguishable, so draw the winner.
			return remaining[src.IntN(len(remaining))], rounds, nil
		}

		var (
			bestMedian grades.Grade
			best       []models.Candidate
		)
		for _, c := range remaining {
			tally := perCandidate[c]
			if tally.IsEmpty() {
				// Out of grades while others still hold some: this
				// candidate has lost and drops from comparison.
				continue
			}
			median, err := tally.Median()
			if err != nil {
				return "", rounds, err
			}
			switch {
			case len(best) == 0 || median.Rank() > bestMedian.Rank():
				bestMedian = median
				best = append(best[:0], c)
			case median.Rank() == bestMedian.Rank():
				best = append(best, c)
			}
		}

		if len(best) == 1 {
			return best[0], rounds, nil
		}

		// Tie on the best median: each tied candidate gives up one
		// occurrence of it and the comparison repeats among the tied
		// only. Everyone else is permanently out.
		for _, c := range best {
			perCandidate[c].RemoveOne(bestMedian)
		}
		remaining = best
		rounds++
	}
}

func sortedCandidates(perCandidate map[models.Candidate]*grades.Tally) []models.Candidate {
	cs := make([]models.Candidate, 0, len(perCandidate))
	for c := range perCandidate {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
	return cs
}

func allEmpty(perCandidate map[models.Candidate]*grades.Tally, candidates []models.Candidate) bool {
	for _, c := range candidates {
		if !perCandidate[c].IsEmpty() {
			return false
		}
	}
	return true
}
