// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/majority-judgment/grades"
)

func TestNewBallotCopiesGrades(t *testing.T) {
	input := map[Candidate]grades.Grade{
		"alice": grades.Good,
		"bob":   grades.Bad,
	}
	ballot := NewBallot(input)

	input["alice"] = grades.Excellent
	input["carol"] = grades.Passable

	if got := ballot.Grades["alice"]; got != grades.Good {
		t.Errorf("ballot grade for alice = %s after mutating input, want %s", got, grades.Good)
	}
	if _, ok := ballot.Grades["carol"]; ok {
		t.Error("ballot picked up a candidate added to the input map after construction")
	}
}

func TestNewBallotAssignsUniqueIDs(t *testing.T) {
	gs := map[Candidate]grades.Grade{"alice": grades.Good}
	first := NewBallot(gs)
	second := NewBallot(gs)

	if first.ID == "" || second.ID == "" {
		t.Fatal("NewBallot left ID empty")
	}
	if first.ID == second.ID {
		t.Errorf("two ballots share ID %s", first.ID)
	}
}

func TestBallotFromLabels(t *testing.T) {
	tests := []struct {
		name    string
		raw     map[string]string
		want    map[Candidate]grades.Grade
		wantErr bool
	}{
		{
			name: "canonical labels",
			raw:  map[string]string{"alice": "good", "bob": "bad"},
			want: map[Candidate]grades.Grade{"alice": grades.Good, "bob": grades.Bad},
		},
		{
			name: "display form labels",
			raw:  map[string]string{"alice": "Very Good"},
			want: map[Candidate]grades.Grade{"alice": grades.VeryGood},
		},
		{
			name:    "unknown label",
			raw:     map[string]string{"alice": "good", "bob": "terrible"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ballot, err := BallotFromLabels(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, grades.ErrUnknownGrade) {
					t.Fatalf("error = %v, want ErrUnknownGrade", err)
				}
				if !strings.Contains(err.Error(), "bob") {
					t.Errorf("error %q does not name the offending candidate", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(ballot.Grades) != len(tt.want) {
				t.Fatalf("ballot has %d grades, want %d", len(ballot.Grades), len(tt.want))
			}
			for c, g := range tt.want {
				if got := ballot.Grades[c]; got != g {
					t.Errorf("grade for %s = %s, want %s", c, got, g)
				}
			}
		})
	}
}
