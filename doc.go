// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package majorityjudgment resolves elections with the Majority Judgment
method: voters grade every candidate on a fixed seven-level scale, and
the winner is the candidate with the best median grade, with a defined
tie-break procedure when best medians collide.

# Using the Library

Define an election over a candidate universe, hand it complete ballots,
and read back the winner or the full standings:

	e, err := election.New("team offsite", []models.Candidate{"lisbon", "prague"})
	if err != nil {
		return err
	}
	winner, err := e.Elect(ballots)

	res, err := e.Rankings(ballots)
	fmt.Print(report.Summary(res))

Every ballot must grade the election's full candidate set; Elect and
Rankings reject anything else before computing.

# Architecture

Resolution is a pure in-memory computation with no storage, transport,
or UI surface of its own; collecting ballots and displaying results
belong to callers:

  - grades: the ordinal scale, median rule, and grade tallies
  - models: candidates, ballots, and result snapshots
  - election: aggregation, winner resolution, tie-break, rankings
  - audit: ballot-set fingerprints for result verification
  - report: plain-text rendering of results
  - testutil: shared test fixtures

See package documentation for each component.
*/
package majorityjudgment
