package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/majority-judgment/grades"
)

// Voting method constants
const (
	MethodMajorityJudgment = "majority_judgment"
)

// Domain types

// Candidate identifies one election entrant by its unique name. Equality
// and map hashing are by name; two candidates with the same name are the
// same entity.
type Candidate string

func (c Candidate) String() string {
	return string(c)
}

// Ballot is one voter's complete set of grades over an election's
// candidate universe. Treated as immutable once constructed.
type Ballot struct {
	ID     string                     `json:"id"`
	Grades map[Candidate]grades.Grade `json:"grades"`
}

// NewBallot builds a ballot with a fresh ID. The grade map is copied, so
// later mutation of the argument does not reach the ballot.
func NewBallot(gs map[Candidate]grades.Grade) Ballot {
	copied := make(map[Candidate]grades.Grade, len(gs))
	for c, g := range gs {
		copied[c] = g
	}
	return Ballot{
		ID:     uuid.NewString(),
		Grades: copied,
	}
}

// BallotFromLabels builds a ballot from raw name-to-label input, parsing
// every grade label. This is the handoff seam for ballot-collection
// callers that work in plain strings; completeness against the candidate
// universe is checked at election time, not here.
func BallotFromLabels(raw map[string]string) (Ballot, error) {
	gs := make(map[Candidate]grades.Grade, len(raw))
	for name, label := range raw {
		g, err := grades.Parse(label)
		if err != nil {
			return Ballot{}, fmt.Errorf("candidate %q: %w", name, err)
		}
		gs[Candidate(name)] = g
	}
	return NewBallot(gs), nil
}

// Result types

type CandidateStanding struct {
	Candidate   Candidate             `json:"candidate"`
	Rank        int                   `json:"rank"` // 1-indexed ranking
	Median      grades.Grade          `json:"median"`
	GradeCounts [grades.NumGrades]int `json:"grade_counts"` // Per level, worst first
	TotalGrades int                   `json:"total_grades"`
}

// Result is a snapshot of one computed election outcome.
type Result struct {
	Method         string              `json:"method"`
	Description    string              `json:"description"`
	Winner         Candidate           `json:"winner"`
	Standings      []CandidateStanding `json:"standings"`
	BallotCount    int                 `json:"ballot_count"`
	TieBreakRounds int                 `json:"tie_break_rounds"`
	InputsHash     string              `json:"inputs_hash"` // Canonical ballot-set digest for verification
	ComputedAt     time.Time           `json:"computed_at"`
}
