package course

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name       string
		enrollment int
		now        time.Time
		want       int
	}{
		{"first year autumn", 2025, date(2025, time.September, 1), 1},
		{"first year spring", 2025, date(2026, time.May, 1), 1},
		{"second year after rollover", 2024, date(2025, time.September, 1), 2},
		{"still prior course before aug 15", 2024, date(2025, time.August, 14), 1},
		{"rolls over on aug 15", 2024, date(2025, time.August, 15), 2},
		{"fourth year", 2022, date(2025, time.September, 1), 4},
		{"2021 cohort graduated", 2021, date(2025, time.September, 1), 5},
		{"graduate stays at five", 2019, date(2025, time.September, 1), 5},
		{"future enrollment clamps to one", 2027, date(2025, time.September, 1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Current(tt.enrollment, tt.now); got != tt.want {
				t.Errorf("Current(%d, %v) = %d, want %d", tt.enrollment, tt.now, got, tt.want)
			}
		})
	}
}

func TestAbout(t *testing.T) {
	now := date(2025, time.August, 10)
	info := About(2023, now)

	if info.Current != 2 {
		t.Errorf("Current = %d, want 2", info.Current)
	}
	if info.Status != StatusActive {
		t.Errorf("Status = %q, want %q", info.Status, StatusActive)
	}
	if info.GraduationYear != 2027 {
		t.Errorf("GraduationYear = %d, want 2027", info.GraduationYear)
	}
	if info.DaysUntilNext != 5 {
		t.Errorf("DaysUntilNext = %d, want 5", info.DaysUntilNext)
	}
}

func TestAboutGraduate(t *testing.T) {
	info := About(2021, date(2025, time.September, 1))
	if info.Status != StatusGraduate {
		t.Errorf("Status = %q, want %q", info.Status, StatusGraduate)
	}
	if got := Display(info); got != "Выпускник" {
		t.Errorf("Display = %q, want %q", got, "Выпускник")
	}
}

func TestAcademicYear(t *testing.T) {
	tests := []struct {
		now  time.Time
		want string
	}{
		{date(2025, time.September, 1), "2025/2026"},
		{date(2025, time.March, 1), "2024/2025"},
		{date(2025, time.August, 1), "2024/2025"},
		{date(2025, time.August, 15), "2025/2026"},
	}
	for _, tt := range tests {
		if got := AcademicYear(tt.now); got != tt.want {
			t.Errorf("AcademicYear(%v) = %q, want %q", tt.now, got, tt.want)
		}
	}
}
