package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/majority-judgment/grades"
	"github.com/danielhkuo/majority-judgment/models"
)

// Summary renders a computed result as deterministic plain text: a
// header, the winner line, one standings row per candidate, and the
// ballot-set digest. Grades appear in display form ("Very Good"), not
// their canonical names. Output depends only on the Result value.
func Summary(res *models.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", res.Description)
	fmt.Fprintf(&b, "method=%s ballots=%d computed=%s\n",
		res.Method, res.BallotCount, res.ComputedAt.Format(time.RFC3339))

	fmt.Fprintf(&b, "winner: %s", res.Winner)
	switch {
	case res.TieBreakRounds == 1:
		b.WriteString(" (after 1 tie-break round)")
	case res.TieBreakRounds > 1:
		fmt.Fprintf(&b, " (after %d tie-break rounds)", res.TieBreakRounds)
	}
	b.WriteString("\n\n")

	width := 0
	for _, s := range res.Standings {
		if n := len(s.Candidate); n > width {
			width = n
		}
	}
	for _, s := range res.Standings {
		fmt.Fprintf(&b, "%4s  %-*s  median %-10s  %s\n",
			humanize.Ordinal(s.Rank), width, s.Candidate, s.Median.Label(), distribution(s.GradeCounts))
	}

	fmt.Fprintf(&b, "\ninputs %s\n", res.InputsHash)
	return b.String()
}

// distribution renders the non-zero grade counts, worst first.
func distribution(counts [grades.NumGrades]int) string {
	parts := make([]string, 0, grades.NumGrades)
	for g := grades.Bad; g <= grades.Excellent; g++ {
		if n := counts[g]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", g.Label(), n))
		}
	}
	if len(parts) == 0 {
		return "no grades"
	}
	return strings.Join(parts, ", ")
}
