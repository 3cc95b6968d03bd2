// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/vitechbot/vitech-client/course"
	"github.com/vitechbot/vitech-client/dates"
	"github.com/vitechbot/vitech-client/duty"
	"github.com/vitechbot/vitech-client/gateway"
	"github.com/vitechbot/vitech-client/identity"
	"github.com/vitechbot/vitech-client/models"
	"github.com/vitechbot/vitech-client/screen"
	"github.com/vitechbot/vitech-client/store"
	"github.com/vitechbot/vitech-client/survey"
	"github.com/vitechbot/vitech-client/xlsxcheck"
)

// App wires the command loop to the controllers. Each input line is
// one command; tab names switch screens and everything else acts on
// the current screen.
type App struct {
	ctrl  *screen.Controller
	gw    *gateway.Client
	state *store.Store
	term  *Terminal
	now   func() time.Time

	flow *survey.Flow
}

func NewApp(ctrl *screen.Controller, gw *gateway.Client, state *store.Store, term *Terminal, now func() time.Time) *App {
	return &App{ctrl: ctrl, gw: gw, state: state, term: term, now: now}
}

// Run starts the session and reads commands until EOF, "quit", or
// context cancellation.
func (a *App) Run(ctx context.Context, in io.Reader) error {
	if err := a.ctrl.Start(ctx); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.term.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		if err := a.dispatch(ctx, line); err != nil {
			a.term.ShowError(err.Error())
		}
	}
}

func (a *App) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	if tab := screen.Tab(cmd); cmd != string(screen.TabUnregistered) {
		if err := a.ctrl.SwitchTab(ctx, tab); err == nil {
			// Navigation discards any in-progress ballot.
			a.flow = nil
			return nil
		} else if !errors.Is(err, screen.ErrUnknownTab) {
			return err
		}
	}

	switch cmd {
	case "help":
		a.printHelp()
		return nil
	case "register":
		return a.register(ctx, args)
	case "add":
		return a.addTask(ctx, args)
	case "done":
		return a.toggleTask(ctx, args)
	case "del":
		return a.deleteTask(ctx, args)
	case "edit":
		return a.editTask(ctx, args)
	case "remind":
		return a.remindTask(ctx, args)
	case "day":
		return a.dutyDay(ctx, args)
	case "month":
		return a.dutyMonth(ctx, args)
	case "start":
		return a.surveyStart(ctx)
	case "choose":
		return a.surveyChoose(args)
	case "submit":
		return a.surveySubmit(ctx)
	case "vote":
		return a.customVote(ctx, args)
	case "results":
		return a.surveyResults(ctx)
	case "course":
		return a.courseInfo(args)
	case "top":
		return a.ratingTop(ctx, args)
	case "upload":
		return a.upload(ctx, args)
	case "template":
		return a.template(ctx, args)
	case "delmonth":
		return a.deleteMonth(ctx, args)
	case "myday":
		return a.myDay(ctx, args)
	case "role":
		return a.setRole(ctx, args)
	}
	return fmt.Errorf("неизвестная команда %q, см. help", cmd)
}

func (a *App) printHelp() {
	fmt.Fprint(a.term.out, `Экраны: home notes duties study survey profile admin
Заметки: add <текст> | done <id> | del <id> | edit <id> <текст> | remind <id> <ДД ЧЧ:ММ>
Наряды:  day <дата> | myday <дата> | month <ГГГГ-ММ> | upload <файл.xlsx> [force] | template <файл.xlsx> | delmonth <ГГГГ-ММ>
Опрос:   start | choose <№ пары> <a|b|=> | submit | vote <опрос> [вариант] | results
Прочее:  register <группа> <ФИО> | course [год] | top | role <id> <роль> | quit
`)
}

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("формат: register <группа> <ФИО>")
	}
	if err := a.ctrl.Register(ctx, strings.Join(args[1:], " "), args[0]); err != nil {
		return err
	}

	// Remember the group locally so the next run starts registered.
	if saved, err := a.state.LoadIdentity(); err == nil {
		if p := a.ctrl.Profile(); p != nil {
			if err := identity.Remember(a.state, saved, p.Group, saved.EnrollmentYear); err != nil {
				a.term.ShowError(err.Error())
			}
		}
	}
	return nil
}

func (a *App) addTask(ctx context.Context, args []string) error {
	list, err := a.ctrl.TaskManager().Add(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.term.RenderTasks(list)
	return nil
}

func (a *App) toggleTask(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	if err := a.ctrl.TaskManager().Toggle(ctx, id); err != nil {
		return err
	}
	a.term.RenderTasks(a.ctrl.TaskManager().Cached())
	return nil
}

func (a *App) deleteTask(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	list, err := a.ctrl.TaskManager().Delete(ctx, id)
	if err != nil {
		return err
	}
	a.term.RenderTasks(list)
	return nil
}

func (a *App) editTask(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	list, err := a.ctrl.TaskManager().Edit(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	a.term.RenderTasks(list)
	return nil
}

func (a *App) remindTask(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("формат: remind <id> <ДД ЧЧ:ММ>")
	}
	id, err := argID(args)
	if err != nil {
		return err
	}
	at, err := a.ctrl.TaskManager().Remind(ctx, id, strings.Join(args[1:], " "), a.now())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.term.out, "Напоминание: %s\n", at.Format("02.01 15:04"))
	return nil
}

func (a *App) dutyDay(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("формат: day <дата>")
	}
	date, err := dates.ParseDayInput(strings.Join(args, " "), a.now())
	if err != nil {
		return err
	}

	detail, err := a.gw.DutiesByDate(ctx, date.Format(dates.ISO))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.term.out, "Бригада на %s (всего %d):\n", date.Format("02.01.2006"), detail.Total)
	for _, group := range duty.GroupBrigade(detail.ByRole) {
		fmt.Fprintf(a.term.out, "%s:\n", group.Label)
		for _, m := range group.Members {
			fmt.Fprintf(a.term.out, "  %s", m.FIO)
			if m.Group != "" {
				fmt.Fprintf(a.term.out, " (%s)", m.Group)
			}
			fmt.Fprintln(a.term.out)
		}
	}
	return nil
}

func (a *App) myDay(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("формат: myday <дата>")
	}
	date, err := dates.ParseDayInput(strings.Join(args, " "), a.now())
	if err != nil {
		return err
	}

	detail, err := a.gw.DayDetail(ctx, date.Format(dates.ISO))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.term.out, "Ваш наряд на %s:\n", date.Format("02.01.2006"))
	if detail.Total == 0 {
		fmt.Fprintln(a.term.out, "Наряда нет.")
		return nil
	}
	for _, group := range duty.GroupBrigade(detail.ByRole) {
		for _, m := range group.Members {
			fmt.Fprintf(a.term.out, "%s  %s\n", group.Label, m.FIO)
		}
	}
	return nil
}

func (a *App) dutyMonth(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("формат: month <ГГГГ-ММ>")
	}
	t, err := time.Parse("2006-01", args[0])
	if err != nil {
		return fmt.Errorf("плохой месяц %q", args[0])
	}

	resp, err := a.gw.DutiesForMonth(ctx, t.Year(), int(t.Month()))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.term.out, "%s:\n", duty.MonthLabel(args[0]))
	if len(resp.Duties) == 0 {
		fmt.Fprintln(a.term.out, "Нарядов нет.")
	}
	for _, d := range resp.Duties {
		fmt.Fprintf(a.term.out, "%s  %s\n", duty.FormatDate(d.Date), duty.RoleLabel(d.Role))
	}
	return nil
}

func (a *App) surveyStart(ctx context.Context) error {
	profile := a.ctrl.Profile()
	if profile == nil {
		return errors.New("профиль не загружен")
	}

	a.flow = survey.NewFlow(a.gw, a.state, profile.Gender)
	return a.loadStage(ctx)
}

func (a *App) loadStage(ctx context.Context) error {
	if err := a.flow.LoadStage(ctx); err != nil {
		return err
	}
	if a.flow.Done() {
		a.flow = nil
		a.ctrl.InvalidateHome()
		fmt.Fprintln(a.term.out, "Опрос завершён.")
		return a.surveyResults(ctx)
	}
	a.printPairs()
	return nil
}

func (a *App) printPairs() {
	stage, _ := a.flow.CurrentStage()
	fmt.Fprintf(a.term.out, "Этап %q: что тяжелее?\n", stage)
	for i, p := range a.flow.Pairs() {
		marker := " "
		switch a.flow.Status(p) {
		case models.VoteSent:
			marker = "✓"
		case models.VoteFailed:
			marker = "!"
		default:
			if a.flow.Choice(p) != "" {
				marker = "*"
			}
		}
		fmt.Fprintf(a.term.out, "%s %d. %s (a)  или  %s (b)\n", marker, i+1, p.ObjectAName, p.ObjectBName)
	}
	fmt.Fprintf(a.term.out, "Осталось ответить: %d\n", a.flow.Remaining())
}

func (a *App) surveyChoose(args []string) error {
	if a.flow == nil {
		return errors.New("опрос не начат, команда start")
	}
	if len(args) != 2 {
		return errors.New("формат: choose <№ пары> <a|b|=>")
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.flow.Pairs()) {
		return fmt.Errorf("нет пары №%s", args[0])
	}

	var choice string
	switch args[1] {
	case "a":
		choice = models.ChoiceA
	case "b":
		choice = models.ChoiceB
	case "=", "equal":
		choice = models.ChoiceEqual
	default:
		return fmt.Errorf("ответ должен быть a, b или =")
	}

	if err := a.flow.RecordChoice(a.flow.Pairs()[n-1], choice); err != nil {
		return err
	}
	fmt.Fprintf(a.term.out, "Осталось ответить: %d\n", a.flow.Remaining())
	return nil
}

func (a *App) surveySubmit(ctx context.Context) error {
	if a.flow == nil {
		return errors.New("опрос не начат, команда start")
	}

	if err := a.flow.SubmitStage(ctx); err != nil {
		var incomplete *survey.IncompleteError
		if errors.As(err, &incomplete) {
			return fmt.Errorf("ответьте на все пары, осталось %d", incomplete.Remaining)
		}
		return err
	}

	if a.flow.Done() {
		fmt.Fprintln(a.term.out, "Опрос завершён, спасибо!")
		a.flow = nil
		a.ctrl.InvalidateHome()
		return a.ctrl.SwitchTab(ctx, screen.TabHome)
	}
	return a.loadStage(ctx)
}

func (a *App) customVote(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("формат: vote <id опроса> [id варианта]")
	}
	surveyID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("плохой id опроса %q", args[0])
	}

	// One argument shows the ballot, two cast the vote.
	if len(args) == 1 {
		s, err := a.gw.CustomSurvey(ctx, surveyID)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.term.out, s.Title)
		for _, opt := range s.Options {
			fmt.Fprintf(a.term.out, "  %d. %s\n", opt.ID, opt.Text)
		}
		return nil
	}

	optionID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("плохой id варианта %q", args[1])
	}
	if err := a.gw.SubmitCustomVote(ctx, surveyID, optionID); err != nil {
		return err
	}
	fmt.Fprintln(a.term.out, "Голос учтён.")
	return nil
}

func (a *App) surveyResults(ctx context.Context) error {
	results, err := a.gw.SurveyUserResults(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(a.term.out, "Результатов пока нет.")
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(a.term.out, "%-20s %.2f (%d голосов)\n", r.ObjectName, r.Weight, r.Votes)
	}
	return nil
}

// courseInfo shows the course calculation for an enrollment year. The
// year is remembered, so a bare "course" reuses the saved one.
func (a *App) courseInfo(args []string) error {
	saved, err := a.state.LoadIdentity()
	if err != nil {
		return err
	}

	year := saved.EnrollmentYear
	if len(args) > 0 {
		year, err = strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("плохой год %q", args[0])
		}
		if err := identity.Remember(a.state, saved, saved.Group, year); err != nil {
			return err
		}
	}
	if year == 0 {
		return errors.New("формат: course <год поступления>")
	}

	info := course.About(year, a.now())
	fmt.Fprintf(a.term.out, "%s, учебный год %s\n", course.Display(info), course.AcademicYear(a.now()))
	if info.Status != course.StatusGraduate {
		fmt.Fprintf(a.term.out, "Перевод на следующий курс через %d дн., выпуск в %d\n",
			info.DaysUntilNext, info.GraduationYear)
	}
	return nil
}

func (a *App) ratingTop(ctx context.Context, args []string) error {
	period := "month"
	if len(args) > 0 {
		period = args[0]
	}
	top, err := a.gw.RatingTop(ctx, period, "course", 10)
	if err != nil {
		return err
	}
	for _, entry := range top {
		fmt.Fprintf(a.term.out, "%2d. %-25s %d\n", entry.Rank, entry.FIO, entry.Points)
	}
	return nil
}

func (a *App) upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("формат: upload <файл.xlsx> [force]")
	}
	profile := a.ctrl.Profile()
	if profile == nil || !duty.CanUploadSchedule(profile.Role) {
		return errors.New("загрузка графика доступна сержанту, помощнику и админу")
	}

	path := args[0]
	overwrite := len(args) > 1 && args[1] == "force"

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	report, err := xlsxcheck.Validate(f, a.now())
	f.Close()
	if err != nil {
		return err
	}
	if !report.OK() {
		for _, e := range report.Errors {
			a.term.ShowError(e)
		}
		return fmt.Errorf("файл не прошёл проверку, ошибок: %d", len(report.Errors))
	}
	fmt.Fprintf(a.term.out, "Проверено: группа %s, %s %d, записей %d\n",
		report.Group, report.Month, report.Year, len(report.Entries))

	f, err = os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	resp, err := a.gw.UploadSchedule(ctx, filepath.Base(path), f, overwrite)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.term.out, "Загружено: %s (строк %d)\n", resp.Message, resp.Rows)
	return nil
}

func (a *App) template(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("формат: template <файл.xlsx>")
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	if err := a.gw.DownloadTemplate(ctx, f); err != nil {
		return err
	}
	fmt.Fprintf(a.term.out, "Шаблон сохранён в %s\n", args[0])
	return nil
}

func (a *App) deleteMonth(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("формат: delmonth <ГГГГ-ММ>")
	}
	profile := a.ctrl.Profile()
	if profile == nil || !duty.CanUploadSchedule(profile.Role) {
		return errors.New("удаление графика доступно сержанту, помощнику и админу")
	}

	if err := a.gw.DeleteScheduleMonth(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.term.out, "График за %s удалён.\n", args[0])
	return nil
}

func (a *App) setRole(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("формат: role <telegram_id> <роль>")
	}
	target, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("плохой telegram_id %q", args[0])
	}

	if err := a.gw.SetRole(ctx, target, args[1]); err != nil {
		return err
	}
	fmt.Fprintln(a.term.out, "Роль обновлена.")
	return a.ctrl.SwitchTab(ctx, screen.TabAdmin)
}

func argID(args []string) (int, error) {
	if len(args) == 0 {
		return 0, errors.New("нужен id заметки")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("плохой id %q", args[0])
	}
	return id, nil
}
