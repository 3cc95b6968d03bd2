// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package xlsxcheck

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Grid layout of the duty schedule workbook. The group sits in E1/E2,
// the month name in row 4, day numbers in row 5, cadet names in
// columns F..H from row 6, and role codes in the matching day columns.
const (
	groupCol     = 5  // E
	nameColFirst = 6  // F
	nameColLast  = 8  // H
	dayColFirst  = 9  // I
	dayColLast   = 39 // AM
	monthRow     = 4
	dayRow       = 5
	firstDataRow = 6
	lastDataRow  = 21
)

// validRoles are the codes a schedule cell may carry.
var validRoles = map[string]bool{
	"к":   true,
	"гбр": true,
	"с":   true,
	"п":   true,
	"м":   true,
	"о":   true,
	"дс":  true,
	"дк":  true,
}

// ignoredValues mark a cell as intentionally empty.
var ignoredValues = map[string]bool{
	"":  true,
	"-": true,
	"+": true,
	"х": true,
	"x": true,
}

var monthNames = map[string]time.Month{
	"январь": time.January, "янв": time.January,
	"февраль": time.February, "фев": time.February,
	"март": time.March, "мар": time.March,
	"апрель": time.April, "апр": time.April,
	"май": time.May,
	"июнь": time.June, "июн": time.June,
	"июль": time.July, "июл": time.July,
	"август": time.August, "авг": time.August,
	"сентябрь": time.September, "сен": time.September,
	"октябрь": time.October, "окт": time.October,
	"ноябрь": time.November, "ноя": time.November,
	"декабрь": time.December, "дек": time.December,
}

// Entry is one parsed duty assignment.
type Entry struct {
	FIO  string
	Date string // YYYY-MM-DD
	Role string
}

// Report is the outcome of validating a schedule workbook before
// upload.
type Report struct {
	Group   string
	Month   time.Month
	Year    int
	Entries []Entry
	Errors  []string
	Ignored int
}

// OK reports whether the workbook is safe to upload.
func (r *Report) OK() bool {
	return len(r.Errors) == 0 && len(r.Entries) > 0
}

// Validate parses a schedule .xlsx and checks every cell before any
// bytes go to the backend. now anchors the month to a year.
func Validate(src io.Reader, now time.Time) (*Report, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("not a readable xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	report := &Report{Group: findGroup(f, sheet)}

	month, err := findMonth(f, sheet)
	if err != nil {
		report.Errors = append(report.Errors, err.Error())
		return report, nil
	}
	report.Month = month
	report.Year = yearFor(month, now)

	days := readDays(f, sheet)

	for row := firstDataRow; row <= lastDataRow; row++ {
		fio := readName(f, sheet, row)
		if fio == "" {
			continue
		}
		for col := dayColFirst; col <= dayColLast; col++ {
			day, ok := days[col]
			if !ok {
				continue
			}
			raw := strings.ToLower(strings.TrimSpace(cell(f, sheet, col, row)))
			if ignoredValues[raw] {
				if raw != "" {
					report.Ignored++
				}
				continue
			}
			if !validRoles[raw] {
				name, _ := excelize.CoordinatesToCellName(col, row)
				report.Errors = append(report.Errors,
					fmt.Sprintf("cell %s: unknown role %q", name, raw))
				continue
			}
			report.Entries = append(report.Entries, Entry{
				FIO:  fio,
				Date: fmt.Sprintf("%04d-%02d-%02d", report.Year, int(month), day),
				Role: raw,
			})
		}
	}

	if len(report.Entries) == 0 && len(report.Errors) == 0 {
		report.Errors = append(report.Errors, "no duty assignments found")
	}
	return report, nil
}

func cell(f *excelize.File, sheet string, col, row int) string {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return ""
	}
	v, err := f.GetCellValue(sheet, name)
	if err != nil {
		return ""
	}
	return v
}

func findGroup(f *excelize.File, sheet string) string {
	for row := 1; row <= 2; row++ {
		if v := strings.TrimSpace(cell(f, sheet, groupCol, row)); v != "" {
			return v
		}
	}
	return ""
}

func findMonth(f *excelize.File, sheet string) (time.Month, error) {
	for col := dayColFirst; col <= dayColLast; col++ {
		v := strings.ToLower(strings.TrimSpace(cell(f, sheet, col, monthRow)))
		if v == "" {
			continue
		}
		if m, ok := monthNames[v]; ok {
			return m, nil
		}
		return 0, fmt.Errorf("unknown month name %q", v)
	}
	return 0, fmt.Errorf("month name not found in row %d", monthRow)
}

// readDays maps day columns to their day-of-month numbers. Columns
// with blank or malformed headers are skipped.
func readDays(f *excelize.File, sheet string) map[int]int {
	days := make(map[int]int)
	for col := dayColFirst; col <= dayColLast; col++ {
		v := strings.TrimSpace(cell(f, sheet, col, dayRow))
		if v == "" {
			continue
		}
		day, err := strconv.Atoi(v)
		if err != nil || day < 1 || day > 31 {
			continue
		}
		days[col] = day
	}
	return days
}

// readName joins the split name columns of one row.
func readName(f *excelize.File, sheet string, row int) string {
	var parts []string
	for col := nameColFirst; col <= nameColLast; col++ {
		if v := strings.TrimSpace(cell(f, sheet, col, row)); v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// yearFor anchors a month to the year that keeps it within half a
// year of now, so a December sheet uploaded in January lands in the
// old year and a January sheet uploaded in December in the new one.
func yearFor(month time.Month, now time.Time) int {
	year := now.Year()
	diff := int(month) - int(now.Month())
	switch {
	case diff > 6:
		return year - 1
	case diff < -6:
		return year + 1
	}
	return year
}
