// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package duty

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/vitechbot/vitech-client/models"
)

// roleLabels maps the short role codes used in the schedule grid to
// display names.
var roleLabels = map[string]string{
	"к":   "Командир",
	"гбр": "ГБР",
	"с":   "Столовая",
	"п":   "ПУТСО",
	"м":   "Медчасть",
	"о":   "ОТО",
}

// roleNames holds the long duty descriptions used on the roster
// detail view. Codes not listed anywhere fall back to upper case.
var roleNames = map[string]string{
	"дс":  "Дежурный по столовой (ДС)",
	"дк":  "Дежурный по курсу (К)",
	"ад":  "Административный корпус (АД)",
	"зуб": "Загородная учебная база (ЗУБ)",
	"дм":  "Дежурный по медицинскому пункту",
	"зк":  "Заместитель командира взвода",
	"св":  "Староста взвода",
}

// RoleLabel resolves a role code for display.
func RoleLabel(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if name, ok := roleLabels[code]; ok {
		return name
	}
	if name, ok := roleNames[code]; ok {
		return name
	}
	return strings.ToUpper(code)
}

var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// MonthLabel formats a YYYY-MM key, e.g. "Декабрь 2025".
func MonthLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s %d", monthNames[t.Month()-1], t.Year())
}

// FormatDate renders a wire date as DD.MM for list rows.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02.01")
}

// RoleGroup is one role's slice of a day brigade, ready for display.
type RoleGroup struct {
	Code    string
	Label   string
	Members []models.BrigadeMember
}

// GroupBrigade orders a by-role brigade map for display. Roles sort by
// code so the listing is stable between loads.
func GroupBrigade(byRole map[string][]models.BrigadeMember) []RoleGroup {
	codes := make([]string, 0, len(byRole))
	for code := range byRole {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	groups := make([]RoleGroup, 0, len(codes))
	for _, code := range codes {
		groups = append(groups, RoleGroup{
			Code:    code,
			Label:   RoleLabel(code),
			Members: byRole[code],
		})
	}
	return groups
}

// CanUploadSchedule reports whether a role may upload or edit the
// duty schedule.
func CanUploadSchedule(role string) bool {
	switch role {
	case models.RoleSergeant, models.RoleAssistant, models.RoleAdmin:
		return true
	}
	return false
}

// Split separates duties into past and upcoming relative to now.
// Order within each slice follows the input.
func Split(duties []models.Duty, now time.Time) (past, upcoming []models.Duty) {
	today := now.Format("2006-01-02")
	for _, d := range duties {
		if d.Date < today {
			past = append(past, d)
		} else {
			upcoming = append(upcoming, d)
		}
	}
	return past, upcoming
}
