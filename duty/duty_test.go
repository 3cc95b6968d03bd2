package duty

import (
	"testing"
	"time"

	"github.com/vitechbot/vitech-client/models"
)

func TestRoleLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"к", "Командир"},
		{"гбр", "ГБР"},
		{"с", "Столовая"},
		{"дс", "Дежурный по столовой (ДС)"},
		{"К", "Командир"},
		{" п ", "ПУТСО"},
		{"xyz", "XYZ"},
	}
	for _, tt := range tests {
		if got := RoleLabel(tt.code); got != tt.want {
			t.Errorf("RoleLabel(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2025-12"); got != "Декабрь 2025" {
		t.Errorf("MonthLabel = %q, want %q", got, "Декабрь 2025")
	}
	// Unparseable keys pass through.
	if got := MonthLabel("garbage"); got != "garbage" {
		t.Errorf("MonthLabel(garbage) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate("2025-12-03"); got != "03.12" {
		t.Errorf("FormatDate = %q, want %q", got, "03.12")
	}
}

func TestGroupBrigade(t *testing.T) {
	byRole := map[string][]models.BrigadeMember{
		"с":   {{FIO: "Петров"}},
		"к":   {{FIO: "Иванов"}, {FIO: "Сидоров"}},
		"гбр": {{FIO: "Кузнецов"}},
	}

	groups := GroupBrigade(byRole)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	// Sorted by code: гбр < к < с.
	wantOrder := []string{"гбр", "к", "с"}
	for i, g := range groups {
		if g.Code != wantOrder[i] {
			t.Errorf("group %d code = %q, want %q", i, g.Code, wantOrder[i])
		}
	}
	if groups[1].Label != "Командир" || len(groups[1].Members) != 2 {
		t.Errorf("командир group = %+v", groups[1])
	}
}

func TestCanUploadSchedule(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{models.RoleAdmin, true},
		{models.RoleSergeant, true},
		{models.RoleAssistant, true},
		{models.RoleUser, false},
		{"", false},
	}
	for _, tt := range tests {
		if got := CanUploadSchedule(tt.role); got != tt.want {
			t.Errorf("CanUploadSchedule(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	now := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	duties := []models.Duty{
		{Date: "2025-12-01", Role: "к"},
		{Date: "2025-12-10", Role: "с"},
		{Date: "2025-12-20", Role: "п"},
	}

	past, upcoming := Split(duties, now)
	if len(past) != 1 || past[0].Date != "2025-12-01" {
		t.Errorf("past = %+v", past)
	}
	// Today counts as upcoming.
	if len(upcoming) != 2 || upcoming[0].Date != "2025-12-10" {
		t.Errorf("upcoming = %+v", upcoming)
	}
}
