// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/danielhkuo/majority-judgment/models"
)

// Contract errors returned at the orchestration boundary.
var (
	ErrNoCandidates   = errors.New("no candidates")
	ErrNoBallots      = errors.New("no ballots")
	ErrBallotMismatch = errors.New("ballot candidate set mismatch")
	ErrInvalidGrade   = errors.New("grade outside the scale")
)

// Election is a description plus a fixed candidate universe, owning
// majority-judgment resolution over supplied ballot sequences. Values
// are immutable after New and safe for concurrent use.
type Election struct {
	description string
	candidates  []models.Candidate // sorted, deduplicated
	universe    map[models.Candidate]struct{}
	src         Source
	log         *slog.Logger
}

// New builds an election over the given candidate universe. The universe
// is deduplicated by name and must not be empty. Options inject the
// random source for the grade-exhaustion draw and the logger.
func New(description string, candidates []models.Candidate, opts ...Option) (*Election, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	cfg := applyOptions(opts)
	e := &Election{
		description: description,
		universe:    make(map[models.Candidate]struct{}, len(candidates)),
		src:         cfg.source,
		log:         cfg.logger,
	}
	for _, c := range candidates {
		if _, dup := e.universe[c]; dup {
			continue
		}
		e.universe[c] = struct{}{}
		e.candidates = append(e.candidates, c)
	}
	sort.Slice(e.candidates, func(i, j int) bool {
		return e.candidates[i] < e.candidates[j]
	})
	return e, nil
}

// Description returns the election's description string.
func (e *Election) Description() string {
	return e.description
}

// Candidates returns the candidate universe sorted by name. The slice is
// a copy; callers may keep it.
func (e *Election) Candidates() []models.Candidate {
	out := make([]models.Candidate, len(e.candidates))
	copy(out, e.candidates)
	return out
}

// Elect validates the ballot sequence, aggregates grades, and resolves
// the single majority-judgment winner. Preconditions: at least one
// ballot, every ballot grades exactly the election's candidate set, and
// every grade is one of the seven scale levels. A violation fails fast
// with ErrNoBallots, ErrBallotMismatch, or ErrInvalidGrade before any
// computation starts.
func (e *Election) Elect(ballots []models.Ballot) (models.Candidate, error) {
	if err := e.validateBallots(ballots); err != nil {
		e.log.Warn("ballot validation failed", "election", e.description, "error", err)
		return "", err
	}

	winner, rounds, err := resolve(Aggregate(ballots), e.src)
	if err != nil {
		return "", err
	}

	e.log.Info("election resolved",
		"election", e.description,
		"winner", winner,
		"ballots", len(ballots),
		"rounds", rounds)
	return winner, nil
}

// validateBallots enforces the orchestration preconditions once, on
// entry. Aggregation and resolution assume validated input and do not
// re-check it.
func (e *Election) validateBallots(ballots []models.Ballot) error {
	if len(ballots) == 0 {
		return ErrNoBallots
	}
	for _, b := range ballots {
		// Same size plus membership means the sets are equal.
		if len(b.Grades) != len(e.candidates) {
			return fmt.Errorf("ballot %s graded %d of %d candidates: %w",
				b.ID, len(b.Grades), len(e.candidates), ErrBallotMismatch)
		}
		for c, g := range b.Grades {
			if _, ok := e.universe[c]; !ok {
				return fmt.Errorf("ballot %s grades unknown candidate %q: %w",
					b.ID, c, ErrBallotMismatch)
			}
			if !g.Valid() {
				return fmt.Errorf("ballot %s grades %q with %s: %w",
					b.ID, c, g, ErrInvalidGrade)
			}
		}
	}
	return nil
}
