// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package report renders computed election results as plain text for
// human consumption. It is a presentation layer only: it never computes,
// reorders, or amends a result.
package report
