// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package course

import (
	"fmt"
	"time"
)

// Academic years roll over on August 15.
const (
	rolloverMonth = time.August
	rolloverDay   = 15
)

// StatusGraduate marks users past the fourth course.
const (
	StatusActive   = "active"
	StatusGraduate = "graduate"
)

// Info describes where a user stands in the four-year program.
type Info struct {
	Current        int
	Status         string
	EnrollmentYear int
	GraduationYear int
	DaysUntilNext  int
}

// Current returns the course number for an enrollment year as of now.
// Courses run 1..5; 5 means the cohort has graduated. Before August 15
// the previous academic year is still in effect.
func Current(enrollmentYear int, now time.Time) int {
	academicYear := now.Year()
	if now.Month() < rolloverMonth ||
		(now.Month() == rolloverMonth && now.Day() < rolloverDay) {
		academicYear--
	}

	course := academicYear - enrollmentYear + 1
	if course < 1 {
		return 1
	}
	if course > 5 {
		return 5
	}
	return course
}

// About returns the full course summary shown on the profile screen.
func About(enrollmentYear int, now time.Time) Info {
	current := Current(enrollmentYear, now)

	next := time.Date(now.Year(), rolloverMonth, rolloverDay, 0, 0, 0, 0, now.Location())
	if !now.Before(next) {
		next = next.AddDate(1, 0, 0)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(next.Sub(today).Hours() / 24)

	status := StatusActive
	if current >= 5 {
		status = StatusGraduate
	}

	return Info{
		Current:        current,
		Status:         status,
		EnrollmentYear: enrollmentYear,
		GraduationYear: enrollmentYear + 4,
		DaysUntilNext:  days,
	}
}

// AcademicYear formats the current academic year, e.g. "2024/2025".
func AcademicYear(now time.Time) string {
	start := now.Year()
	if now.Month() < rolloverMonth ||
		(now.Month() == rolloverMonth && now.Day() < rolloverDay) {
		start--
	}
	return fmt.Sprintf("%d/%d", start, start+1)
}

// Display formats a course for the profile screen.
func Display(info Info) string {
	if info.Status == StatusGraduate {
		return "Выпускник"
	}
	return fmt.Sprintf("%d курс", info.Current)
}
