// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"fmt"
	"time"

	"github.com/danielhkuo/majority-judgment/audit"
	"github.com/danielhkuo/majority-judgment/grades"
	"github.com/danielhkuo/majority-judgment/models"
)

// Rankings resolves every place, not just the winner: first place is the
// overall winner, second is the winner among the rest, and so on until
// every candidate holds a rank. Each place is resolved from fresh
// tallies, so tie-break removals for one place never leak into the next.
// The returned snapshot carries the standings, the winner's tie-break
// round count, and a digest of the ballot set for later verification.
// The same ballot preconditions as Elect apply.
func (e *Election) Rankings(ballots []models.Ballot) (*models.Result, error) {
	if err := e.validateBallots(ballots); err != nil {
		e.log.Warn("ballot validation failed", "election", e.description, "error", err)
		return nil, err
	}

	full := Aggregate(ballots)

	remaining := make(map[models.Candidate]*grades.Tally, len(full))
	for c, tally := range full {
		remaining[c] = tally
	}

	standings := make([]models.CandidateStanding, 0, len(full))
	winnerRounds := 0
	for rank := 1; len(remaining) > 0; rank++ {
		working := make(map[models.Candidate]*grades.Tally, len(remaining))
		for c, tally := range remaining {
			working[c] = tally.Clone()
		}

		place, rounds, err := resolve(working, e.src)
		if err != nil {
			return nil, err
		}
		if rank == 1 {
			winnerRounds = rounds
		}

		median, err := full[place].Median()
		if err != nil {
			// Validated ballots guarantee non-empty tallies; reaching
			// this is a resolution bug, not caller error.
			return nil, fmt.Errorf("standing for %q: %w", place, err)
		}

		standings = append(standings, models.CandidateStanding{
			Candidate:   place,
			Rank:        rank,
			Median:      median,
			GradeCounts: full[place].Counts(),
			TotalGrades: full[place].Total(),
		})
		delete(remaining, place)
	}

	result := &models.Result{
		Method:         models.MethodMajorityJudgment,
		Description:    e.description,
		Winner:         standings[0].Candidate,
		Standings:      standings,
		BallotCount:    len(ballots),
		TieBreakRounds: winnerRounds,
		InputsHash:     audit.Fingerprint(ballots),
		ComputedAt:     time.Now().UTC(),
	}

	e.log.Info("rankings computed",
		"election", e.description,
		"winner", result.Winner,
		"ballots", len(ballots),
		"places", len(standings))
	return result, nil
}
