// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain and result types shared across the
majority-judgment packages.

# Domain Types

Value types supplied by ballot-collection callers:

  - Candidate: entrant identified by unique name
  - Ballot: one voter's complete candidate-to-grade map, plus an ID

Ballots are built with NewBallot (typed grades, fresh ID) or
BallotFromLabels (raw string labels, parsed through grades.Parse). Both
copy their input; a constructed ballot never aliases caller memory.

# Result Types

Types produced by election resolution for presentation callers:

  - CandidateStanding: one ranking row (rank, median, grade distribution)
  - Result: immutable outcome snapshot (winner, standings, ballot count,
    tie-break rounds, inputs digest, computation time)

# Constants

Voting method:

	MethodMajorityJudgment = "majority_judgment"
*/
package models
