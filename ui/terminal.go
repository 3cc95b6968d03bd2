// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"fmt"
	"io"
	"sort"

	"github.com/vitechbot/vitech-client/duty"
	"github.com/vitechbot/vitech-client/models"
	"github.com/vitechbot/vitech-client/screen"
)

var screenTitles = map[screen.Tab]string{
	screen.TabHome:         "Главная",
	screen.TabNotes:        "Заметки",
	screen.TabDuties:       "Наряды",
	screen.TabStudy:        "Учёба",
	screen.TabSurvey:       "Опросы",
	screen.TabProfile:      "Профиль",
	screen.TabAdmin:        "Администрирование",
	screen.TabUnregistered: "Регистрация",
}

// Terminal renders screens as text. It satisfies screen.View; only
// the most recent ShowScreen is "visible", everything simply prints
// in order.
type Terminal struct {
	out io.Writer
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) ShowScreen(tab screen.Tab) {
	title := screenTitles[tab]
	if title == "" {
		title = string(tab)
	}
	fmt.Fprintf(t.out, "\n=== %s ===\n", title)
	if tab == screen.TabUnregistered {
		fmt.Fprintln(t.out, "Вы не зарегистрированы. Команда: register <группа> <ФИО>")
	}
}

func (t *Terminal) ShowError(message string) {
	fmt.Fprintf(t.out, "Ошибка: %s\n", message)
}

func (t *Terminal) RenderHome(h screen.Home) {
	if len(h.Lessons) > 0 {
		fmt.Fprintln(t.out, "Занятия сегодня:")
		for _, l := range h.Lessons {
			t.printLesson(l)
		}
	} else {
		fmt.Fprintln(t.out, "Занятий сегодня нет.")
	}

	if h.NextDuty != nil {
		fmt.Fprintf(t.out, "Ближайший наряд: %s %s (через %d дн.)\n",
			duty.FormatDate(h.NextDuty.Date), duty.RoleLabel(h.NextDuty.Role), h.NextDutyDays)
	}
	for _, n := range h.Notifications {
		fmt.Fprintf(t.out, "! %s\n", n.Title)
	}
	fmt.Fprintf(t.out, "Баллы рейтинга: %d\n", h.Points)
}

func (t *Terminal) RenderTasks(tasks []models.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(t.out, "Заметок нет.")
		return
	}
	for _, task := range tasks {
		mark := " "
		if task.Done {
			mark = "x"
		}
		fmt.Fprintf(t.out, "[%s] %d. %s", mark, task.ID, task.Text)
		if task.Deadline != "" {
			fmt.Fprintf(t.out, " (напоминание: %s)", task.Deadline)
		}
		fmt.Fprintln(t.out)
	}
}

func (t *Terminal) RenderDuties(d screen.Duties) {
	if d.NextDuty != nil {
		fmt.Fprintf(t.out, "Ближайший наряд: %s %s\n",
			duty.FormatDate(d.NextDuty.Date), duty.RoleLabel(d.NextDuty.Role))
	}
	if len(d.Past) == 0 && len(d.Upcoming) == 0 {
		fmt.Fprintln(t.out, "Нарядов в этом месяце нет.")
	}
	for _, entry := range d.Upcoming {
		fmt.Fprintf(t.out, "%s  %s\n", duty.FormatDate(entry.Date), duty.RoleLabel(entry.Role))
	}
	if len(d.Past) > 0 {
		fmt.Fprintln(t.out, "Прошедшие:")
		for _, entry := range d.Past {
			fmt.Fprintf(t.out, "  %s  %s\n", duty.FormatDate(entry.Date), duty.RoleLabel(entry.Role))
		}
	}
	if len(d.Months) > 0 {
		fmt.Fprint(t.out, "Доступные месяцы:")
		for _, m := range d.Months {
			fmt.Fprintf(t.out, " %s", duty.MonthLabel(m))
		}
		fmt.Fprintln(t.out)
	}
	if d.CanUpload {
		fmt.Fprintln(t.out, "Команды: upload <файл.xlsx>, template <файл.xlsx>")
	}
}

func (t *Terminal) RenderSchedule(s screen.Schedule) {
	fmt.Fprintf(t.out, "Неделя %s\n", s.WeekLabel)
	if s.Message != "" {
		fmt.Fprintln(t.out, s.Message)
	}
	if len(s.Days) == 0 {
		fmt.Fprintln(t.out, "Расписание не загружено.")
		return
	}

	days := make([]string, 0, len(s.Days))
	for day := range s.Days {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		fmt.Fprintf(t.out, "%s:\n", duty.FormatDate(day))
		for _, l := range s.Days[day] {
			t.printLesson(l)
		}
	}
}

func (t *Terminal) RenderSurveys(list *models.SurveyListResponse) {
	if len(list.System) == 0 && len(list.Custom) == 0 {
		fmt.Fprintln(t.out, "Активных опросов нет.")
		return
	}
	for _, s := range list.System {
		state := "не пройден"
		if s.Voted {
			state = "пройден"
		}
		fmt.Fprintf(t.out, "- %s (%s)\n", s.Title, state)
	}
	for _, c := range list.Custom {
		fmt.Fprintf(t.out, "- [%d] %s (%d вариантов)\n", c.ID, c.Title, len(c.Options))
	}
	fmt.Fprintln(t.out, "Команды: start, vote <id опроса> <id варианта>")
}

func (t *Terminal) RenderProfile(p screen.Profile) {
	fmt.Fprintf(t.out, "%s\n", p.FullName)
	fmt.Fprintf(t.out, "Группа: %s, %s\n", p.Group, p.CourseLabel)
	fmt.Fprintf(t.out, "Роль: %s\n", p.Role)
	if len(p.Results) > 0 {
		fmt.Fprintln(t.out, "Ваши веса сложности:")
		for _, r := range p.Results {
			fmt.Fprintf(t.out, "  %-20s %.2f (%d голосов)\n", r.ObjectName, r.Weight, r.Votes)
		}
	}
}

func (t *Terminal) RenderAdmin(users []models.AdminUser) {
	for _, u := range users {
		fmt.Fprintf(t.out, "%d  %-25s %-6s %s\n", u.TelegramID, u.FIO, u.Group, u.Role)
	}
	fmt.Fprintln(t.out, "Команда: role <telegram_id> <user|sergeant|assistant|admin>")
}

func (t *Terminal) printLesson(l models.Lesson) {
	fmt.Fprintf(t.out, "  %s", l.Subject)
	if l.Room != "" {
		fmt.Fprintf(t.out, ", ауд. %s", l.Room)
	}
	if l.Teacher != "" {
		fmt.Fprintf(t.out, " (%s)", l.Teacher)
	}
	fmt.Fprintln(t.out)
}
