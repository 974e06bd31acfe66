// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package audit fingerprints ballot sets so a published result can later
// be checked against the exact ballots it was computed from.
//
// # Fingerprints
//
// Fingerprint serializes every ballot into a canonical line (ID plus
// name-sorted candidate=grade pairs, with the caller-supplied fields
// escaped), sorts the lines, and hashes them with SHA-256. The digest
// is therefore independent of ballot order and of map iteration order,
// and changes whenever any ballot ID or grade changes. Verify
// recomputes the digest and compares in constant time.
//
// Election results carry this digest in Result.InputsHash.
package audit
