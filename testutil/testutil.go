// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/danielhkuo/majority-judgment/election"
	"github.com/danielhkuo/majority-judgment/models"
)

// Candidates builds a candidate slice from names
func Candidates(names ...string) []models.Candidate {
	cs := make([]models.Candidate, len(names))
	for i, name := range names {
		cs[i] = models.Candidate(name)
	}
	return cs
}

// NewElection builds an election over the named candidates with a quiet
// logger, failing the test on error
func NewElection(t *testing.T, description string, names ...string) *election.Election {
	t.Helper()

	e, err := election.New(description, Candidates(names...),
		election.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		t.Fatalf("Failed to create election %q: %v", description, err)
	}
	return e
}

// SeededElection is NewElection with a deterministic draw source, for
// tests that reach the grade-exhaustion draw
func SeededElection(t *testing.T, seed uint64, description string, names ...string) *election.Election {
	t.Helper()

	e, err := election.New(description, Candidates(names...),
		election.WithSource(SeededSource(seed)),
		election.WithLogger(slog.New(slog.DiscardHandler)))
	if err != nil {
		t.Fatalf("Failed to create election %q: %v", description, err)
	}
	return e
}

// Ballot builds one ballot from candidate-name to grade-label pairs,
// failing the test on an unknown label
func Ballot(t *testing.T, raw map[string]string) models.Ballot {
	t.Helper()

	b, err := models.BallotFromLabels(raw)
	if err != nil {
		t.Fatalf("Failed to build ballot: %v", err)
	}
	return b
}

// Ballots builds one ballot per row
func Ballots(t *testing.T, rows ...map[string]string) []models.Ballot {
	t.Helper()

	out := make([]models.Ballot, 0, len(rows))
	for _, row := range rows {
		out = append(out, Ballot(t, row))
	}
	return out
}

// SeededSource returns a deterministic source for reproducible draws
func SeededSource(seed uint64) election.Source {
	return rand.New(rand.NewPCG(seed, seed))
}

// AssertWinner checks that the resolved winner has the expected name
func AssertWinner(t *testing.T, got models.Candidate, want string) {
	t.Helper()
	if string(got) != want {
		t.Errorf("Expected winner %q, got %q", want, got)
	}
}
