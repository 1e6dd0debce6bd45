package rcs

// Copyright by Eric S. Raymond
// SPDX-License-Identifier: BSD-2-Clause

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date wraps a UTC timestamp with the serialization the fast-import
// stream needs (§6): Unix-epoch seconds followed by a literal "+0000",
// since RCS stores no timezone and the spec mandates UTC throughout.
type Date struct {
	timestamp time.Time
}

// parseRCSDate parses the six dot-separated numeric fields RCS stores
// for a revision's "date" line (§4.C, §6): year.month.day.hour.min.sec.
// A one- or two-digit year is 1900-based, per rcsfile(5).
func parseRCSDate(text string) (Date, error) {
	fields := strings.Split(strings.TrimSpace(text), ".")
	if len(fields) != 6 {
		return Date{}, fmt.Errorf("malformed RCS date %q: want 6 dot-separated fields, got %d", text, len(fields))
	}
	nums := make([]int, 6)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Date{}, fmt.Errorf("malformed RCS date %q: field %d is not numeric: %v", text, i, err)
		}
		nums[i] = n
	}
	year := nums[0]
	if year < 100 {
		year += 1900
	}
	t := time.Date(year, time.Month(nums[1]), nums[2], nums[3], nums[4], nums[5], 0, time.UTC)
	return Date{timestamp: t}, nil
}

// Unix returns the Unix-epoch seconds representation used in the
// fast-import author/committer lines.
func (d Date) Unix() int64 {
	return d.timestamp.Unix()
}

// IsZero reports whether this Date was never set (a symbol-only
// placeholder revision, §4.E, has a zero Date).
func (d Date) IsZero() bool {
	return d.timestamp.IsZero()
}

// Before reports time ordering, used by the coalescer's date sort and
// its widening of a merged commit's date range.
func (d Date) Before(other Date) bool {
	return d.timestamp.Before(other.timestamp)
}

// After reports time ordering.
func (d Date) After(other Date) bool {
	return d.timestamp.After(other.timestamp)
}

// Add returns a Date offset by the given duration. The coalescer's
// fuzz-window check (§4.G) uses Sub, not Add.
func (d Date) Add(delta time.Duration) Date {
	return Date{timestamp: d.timestamp.Add(delta)}
}

// Sub returns the signed duration from other to d.
func (d Date) Sub(other Date) time.Duration {
	return d.timestamp.Sub(other.timestamp)
}

// FastImport renders the "<epoch> +0000" form used after author/committer
// idents in the output stream (§6).
func (d Date) FastImport() string {
	return fmt.Sprintf("%d +0000", d.timestamp.Unix())
}

func (d Date) String() string {
	return d.timestamp.UTC().Format(time.RFC3339)
}
