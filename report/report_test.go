// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/majority-judgment/grades"
	"github.com/danielhkuo/majority-judgment/models"
	"github.com/danielhkuo/majority-judgment/testutil"
)

func counts(m map[grades.Grade]int) [grades.NumGrades]int {
	var out [grades.NumGrades]int
	for g, n := range m {
		out[g] = n
	}
	return out
}

func fixedResult() *models.Result {
	return &models.Result{
		Method:      models.MethodMajorityJudgment,
		Description: "Best pastry",
		Winner:      "eclair",
		Standings: []models.CandidateStanding{
			{
				Candidate:   "eclair",
				Rank:        1,
				Median:      grades.VeryGood,
				GradeCounts: counts(map[grades.Grade]int{grades.Good: 1, grades.VeryGood: 2}),
				TotalGrades: 3,
			},
			{
				Candidate:   "croissant",
				Rank:        2,
				Median:      grades.Good,
				GradeCounts: counts(map[grades.Grade]int{grades.Bad: 1, grades.Good: 2}),
				TotalGrades: 3,
			},
		},
		BallotCount:    3,
		TieBreakRounds: 1,
		InputsHash:     "cafe0123",
		ComputedAt:     time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSummary(t *testing.T) {
	got := Summary(fixedResult())

	wantFragments := []string{
		"Best pastry",
		"method=majority_judgment ballots=3 computed=2025-06-01T12:00:00Z",
		"winner: eclair (after 1 tie-break round)",
		"1st",
		"2nd",
		"median Very Good",
		"Good x1, Very Good x2",
		"inputs cafe0123",
	}
	for _, want := range wantFragments {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}

	first := strings.Index(got, "eclair")
	second := strings.Index(got, "croissant")
	if first == -1 || second == -1 || first > second {
		t.Errorf("standings out of order:\n%s", got)
	}
}

func TestSummaryPluralRounds(t *testing.T) {
	res := fixedResult()
	res.TieBreakRounds = 3

	if got := Summary(res); !strings.Contains(got, "(after 3 tie-break rounds)") {
		t.Errorf("summary missing plural round note:\n%s", got)
	}

	res.TieBreakRounds = 0
	if got := Summary(res); strings.Contains(got, "tie-break") {
		t.Errorf("summary mentions tie-break with zero rounds:\n%s", got)
	}
}

func TestDistribution(t *testing.T) {
	got := distribution(counts(map[grades.Grade]int{grades.Bad: 2, grades.Excellent: 1}))
	if got != "Bad x2, Excellent x1" {
		t.Errorf("distribution = %q, want %q", got, "Bad x2, Excellent x1")
	}

	if got := distribution([grades.NumGrades]int{}); got != "no grades" {
		t.Errorf("empty distribution = %q, want %q", got, "no grades")
	}
}

func TestSummaryFromElection(t *testing.T) {
	e := testutil.NewElection(t, "Team lunch vote", "ramen", "tacos")
	ballots := testutil.Ballots(t,
		map[string]string{"ramen": "excellent", "tacos": "passable"},
		map[string]string{"ramen": "very_good", "tacos": "good"},
		map[string]string{"ramen": "good", "tacos": "bad"},
	)

	res, err := e.Rankings(ballots)
	if err != nil {
		t.Fatalf("Rankings: %v", err)
	}

	got := Summary(res)
	if !strings.Contains(got, "winner: ramen") {
		t.Errorf("summary missing winner line:\n%s", got)
	}
	if !strings.Contains(got, res.InputsHash) {
		t.Errorf("summary missing inputs digest:\n%s", got)
	}
}
