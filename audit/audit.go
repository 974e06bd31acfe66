// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package audit

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/danielhkuo/majority-judgment/models"
)

// Fingerprint returns a SHA-256 hex digest of the canonical form of the
// ballot set. Ballot order does not affect the digest; any change to a
// ballot's ID or to any grade does.
func Fingerprint(ballots []models.Ballot) string {
	lines := make([]string, 0, len(ballots))
	for _, b := range ballots {
		lines = append(lines, canonicalLine(b))
	}
	sort.Strings(lines)

	h := sha256.New()
	for _, line := range lines {
		h.Write([]byte(line))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Verify recomputes the ballot-set fingerprint and compares it against
// the claimed one in constant time.
func Verify(ballots []models.Ballot, fingerprint string) bool {
	computed := Fingerprint(ballots)
	return hmac.Equal([]byte(computed), []byte(fingerprint))
}

// fieldEscaper escapes ballot IDs and candidate names before they are
// joined into a canonical line. Both are caller-supplied and may contain
// the separator characters themselves; escaping keeps the encoding
// unambiguous, so distinct ballot sets never share a canonical form.
var fieldEscaper = strings.NewReplacer(`\`, `\\`, "|", `\|`, "=", `\=`, "\n", `\n`)

// canonicalLine renders one ballot as "id|name=grade|..." with candidate
// names sorted and the ID and name fields escaped, so equal ballots
// always serialize identically and distinct ones never collide.
func canonicalLine(b models.Ballot) string {
	names := make([]string, 0, len(b.Grades))
	for c := range b.Grades {
		names = append(names, string(c))
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(fieldEscaper.Replace(b.ID))
	for _, name := range names {
		fmt.Fprintf(&sb, "|%s=%s", fieldEscaper.Replace(name), b.Grades[models.Candidate(name)])
	}
	return sb.String()
}
