// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"fmt"
	"strings"
	"time"
)

// CalendarDelta computes the whole Gregorian year and month difference
// between start and end. A month is only counted once the day-of-month
// has been reached; there is no day-level rounding beyond that.
func CalendarDelta(start, end time.Time) (years, months int) {
	if end.Before(start) {
		return 0, 0
	}

	years = end.Year() - start.Year()
	months = int(end.Month()) - int(start.Month())
	if end.Day() < start.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}
	return years, months
}

// Duration renders the elapsed time between start and end as a resume
// duration string: "2 yrs 3 mos", "1 yr", "4 mos". Zero components are
// omitted; if both are zero the result is "Less than 1 month".
func Duration(start, end time.Time) string {
	years, months := CalendarDelta(start, end)

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d yr%s", years, plural(years)))
	}
	if months > 0 {
		parts = append(parts, fmt.Sprintf("%d mo%s", months, plural(months)))
	}

	if len(parts) == 0 {
		return "Less than 1 month"
	}
	return strings.Join(parts, " ")
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
