// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ISO is the wire date layout used by the backend.
const ISO = "2006-01-02"

// DaysLeft returns whole calendar days from now until the given ISO
// date. Past and same-day dates return 0; the counter never goes
// negative. Both dates are pinned to UTC midnight first, so a DST
// transition between them cannot shift the count.
func DaysLeft(date string, now time.Time) (int, error) {
	target, err := time.Parse(ISO, date)
	if err != nil {
		return 0, fmt.Errorf("bad date %q: %w", date, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	days := int(target.Sub(today) / (24 * time.Hour))
	if days < 0 {
		return 0, nil
	}
	return days, nil
}

// ParseDayInput parses a user-typed date in one of three shapes:
//
//	"15"          day of the current month and year
//	"15 12"       day and month of the current year
//	"15.12.2025"  full date, also accepts "15.12"
//
// Space and dot both work as separators.
func ParseDayInput(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	parts := strings.FieldsFunc(input, func(r rune) bool {
		return r == '.' || r == ' ' || r == '/'
	})
	if len(parts) > 3 {
		return time.Time{}, fmt.Errorf("bad date %q", input)
	}

	day, month, year := 0, int(now.Month()), now.Year()

	var err error
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("bad day in %q", input)
	}
	if len(parts) >= 2 {
		month, err = strconv.Atoi(parts[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("bad month in %q", input)
		}
	}
	if len(parts) == 3 {
		year, err = strconv.Atoi(parts[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("bad year in %q", input)
		}
		if year < 100 {
			year += 2000
		}
	}

	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return time.Time{}, fmt.Errorf("day %d out of range for %d.%d", day, month, year)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MondayOf returns the Monday that starts the week containing t.
func MondayOf(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// WeekRangeLabel formats the Monday..Sunday span of the week
// containing t, e.g. "15.12 - 21.12".
func WeekRangeLabel(t time.Time) string {
	mon := MondayOf(t)
	sun := mon.AddDate(0, 0, 6)
	return fmt.Sprintf("%02d.%02d - %02d.%02d", mon.Day(), int(mon.Month()), sun.Day(), int(sun.Month()))
}
