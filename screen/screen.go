// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package screen

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vitechbot/vitech-client/dates"
	"github.com/vitechbot/vitech-client/duty"
	"github.com/vitechbot/vitech-client/models"
	"github.com/vitechbot/vitech-client/tasks"
)

// Tab identifies a screen. The set is closed; SwitchTab rejects
// anything else.
type Tab string

const (
	TabHome    Tab = "home"
	TabNotes   Tab = "notes"
	TabDuties  Tab = "duties"
	TabStudy   Tab = "study"
	TabSurvey  Tab = "survey"
	TabProfile Tab = "profile"
	TabAdmin   Tab = "admin"

	// TabUnregistered is internal: shown until the backend knows the
	// user. It is not reachable through SwitchTab.
	TabUnregistered Tab = "unregistered"
)

var tabs = map[Tab]bool{
	TabHome:    true,
	TabNotes:   true,
	TabDuties:  true,
	TabStudy:   true,
	TabSurvey:  true,
	TabProfile: true,
	TabAdmin:   true,
}

var (
	ErrUnknownTab    = errors.New("unknown tab")
	ErrNotRegistered = errors.New("registration required")
	ErrNotAdmin      = errors.New("admin role required")
)

// Gateway is the slice of the backend client the screens need.
type Gateway interface {
	User(ctx context.Context) (*models.UserResponse, error)
	UpdateUser(ctx context.Context, req models.UpdateUserRequest) error
	Duties(ctx context.Context) (*models.DutiesResponse, error)
	AvailableMonths(ctx context.Context) ([]string, error)
	ScheduleToday(ctx context.Context, date string) (*models.ScheduleDayResponse, error)
	ScheduleWeek(ctx context.Context, date string) (*models.ScheduleWeekResponse, error)
	Notifications(ctx context.Context, limit int) ([]models.Notification, error)
	RatingMe(ctx context.Context) (*models.RatingMeResponse, error)
	SurveyList(ctx context.Context) (*models.SurveyListResponse, error)
	SurveyUserResults(ctx context.Context) ([]models.SurveyResult, error)
	Users(ctx context.Context) ([]models.AdminUser, error)
}

// View is where rendered screen data lands. Implementations show
// exactly one screen at a time; ShowScreen names the next one.
type View interface {
	ShowScreen(tab Tab)
	ShowError(message string)
	RenderHome(Home)
	RenderTasks([]models.Task)
	RenderDuties(Duties)
	RenderSchedule(Schedule)
	RenderSurveys(*models.SurveyListResponse)
	RenderProfile(Profile)
	RenderAdmin([]models.AdminUser)
}

// Home is the dashboard widget data.
type Home struct {
	Lessons       []models.Lesson
	NextDuty      *models.Duty
	NextDutyDays  int
	Notifications []models.Notification
	Points        int
}

// Duties is the roster screen data. Past and Upcoming partition the
// month's duties around today.
type Duties struct {
	NextDuty  *models.Duty
	Past      []models.Duty
	Upcoming  []models.Duty
	Months    []string
	CanUpload bool
}

// Schedule is the study screen data: one week of lessons.
type Schedule struct {
	WeekLabel string
	Days      map[string][]models.Lesson
	Message   string
}

// Profile is the profile screen data.
type Profile struct {
	models.UserResponse
	Results []models.SurveyResult
}

// Controller owns navigation state. One tab is active at a time;
// switching runs that tab's entry loads and pushes the result to the
// View. Methods are meant to be called from a single goroutine.
type Controller struct {
	gw    Gateway
	view  View
	tasks *tasks.Manager
	now   func() time.Time

	profile    *models.UserResponse
	active     Tab
	seq        uint64
	homeLoaded bool
	homeCache  Home
}

// New builds a controller. now is the clock used for date labels;
// pass time.Now outside tests.
func New(gw Gateway, view View, taskMgr *tasks.Manager, now func() time.Time) *Controller {
	return &Controller{gw: gw, view: view, tasks: taskMgr, now: now}
}

// Active returns the currently visible tab.
func (c *Controller) Active() Tab { return c.active }

// TaskManager exposes the notes screen's task list for commands that
// act on it directly.
func (c *Controller) TaskManager() *tasks.Manager { return c.tasks }

// Profile returns the loaded user profile, nil before Start.
func (c *Controller) Profile() *models.UserResponse { return c.profile }

// Start loads the user and shows the first screen: home for a
// registered user, the registration prompt otherwise.
func (c *Controller) Start(ctx context.Context) error {
	user, err := c.gw.User(ctx)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	c.profile = user

	if !user.Registered {
		c.active = TabUnregistered
		c.view.ShowScreen(TabUnregistered)
		return nil
	}
	return c.SwitchTab(ctx, TabHome)
}

// Register submits the registration form and, on success, reloads the
// profile and lands on home.
func (c *Controller) Register(ctx context.Context, fio, group string) error {
	err := c.gw.UpdateUser(ctx, models.UpdateUserRequest{
		FIO:   fio,
		Group: group,
	})
	if err != nil {
		return err
	}

	user, err := c.gw.User(ctx)
	if err != nil {
		return fmt.Errorf("reload user: %w", err)
	}
	c.profile = user
	return c.SwitchTab(ctx, TabHome)
}

// SwitchTab makes tab the active screen and runs its entry loads.
//
// Unknown tabs are rejected. An unregistered user may only open the
// profile tab; the admin tab needs the admin role. Load failures do
// not block the switch: the screen shows and the View gets the error.
func (c *Controller) SwitchTab(ctx context.Context, tab Tab) error {
	if !tabs[tab] {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	if c.profile == nil || !c.profile.Registered {
		if tab != TabProfile {
			return ErrNotRegistered
		}
	}
	if tab == TabAdmin && c.profile.Role != models.RoleAdmin {
		return ErrNotAdmin
	}

	c.seq++
	seq := c.seq
	c.active = tab
	c.view.ShowScreen(tab)

	switch tab {
	case TabHome:
		c.enterHome(ctx, seq)
	case TabNotes:
		c.enterNotes(ctx, seq)
	case TabDuties:
		c.enterDuties(ctx, seq)
	case TabStudy:
		c.enterStudy(ctx, seq)
	case TabSurvey:
		c.enterSurvey(ctx, seq)
	case TabProfile:
		c.enterProfile(ctx, seq)
	case TabAdmin:
		c.enterAdmin(ctx, seq)
	}
	return nil
}

// InvalidateHome drops the cached dashboard so the next home entry
// refetches the widgets. Called after actions that change them, like
// finishing a survey.
func (c *Controller) InvalidateHome() { c.homeLoaded = false }

// stale reports whether another SwitchTab happened since seq was
// taken; a stale load's result is dropped instead of rendered.
func (c *Controller) stale(seq uint64) bool { return seq != c.seq }

func (c *Controller) fail(seq uint64, err error) {
	if c.stale(seq) {
		return
	}
	c.view.ShowError(err.Error())
}

// enterHome loads the dashboard widgets once; re-entry reuses the
// cache.
func (c *Controller) enterHome(ctx context.Context, seq uint64) {
	if c.homeLoaded {
		if !c.stale(seq) {
			c.view.RenderHome(c.homeCache)
		}
		return
	}

	var home Home

	if day, err := c.gw.ScheduleToday(ctx, ""); err == nil {
		home.Lessons = day.Lessons
	}
	if duties, err := c.gw.Duties(ctx); err == nil && duties.NextDuty != nil {
		home.NextDuty = duties.NextDuty
		if days, err := dates.DaysLeft(duties.NextDuty.Date, c.now()); err == nil {
			home.NextDutyDays = days
		}
	}
	if items, err := c.gw.Notifications(ctx, 5); err == nil {
		home.Notifications = items
	}
	if rating, err := c.gw.RatingMe(ctx); err == nil {
		home.Points = rating.Points
	}

	if c.stale(seq) {
		return
	}
	c.homeLoaded = true
	c.homeCache = home
	c.view.RenderHome(home)
}

func (c *Controller) enterNotes(ctx context.Context, seq uint64) {
	list, err := c.tasks.Reload(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	if c.stale(seq) {
		return
	}
	c.view.RenderTasks(list)
}

// enterDuties issues exactly one roster fetch and one month-list
// fetch per entry.
func (c *Controller) enterDuties(ctx context.Context, seq uint64) {
	duties, err := c.gw.Duties(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	months, err := c.gw.AvailableMonths(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}

	if c.stale(seq) {
		return
	}
	past, upcoming := duty.Split(duties.Duties, c.now())
	c.view.RenderDuties(Duties{
		NextDuty:  duties.NextDuty,
		Past:      past,
		Upcoming:  upcoming,
		Months:    months,
		CanUpload: c.canUpload(),
	})
}

func (c *Controller) enterStudy(ctx context.Context, seq uint64) {
	week, err := c.gw.ScheduleWeek(ctx, "")
	if err != nil {
		c.fail(seq, err)
		return
	}
	if c.stale(seq) {
		return
	}
	c.view.RenderSchedule(Schedule{
		WeekLabel: dates.WeekRangeLabel(c.now()),
		Days:      week.Schedule,
		Message:   week.Message,
	})
}

// enterSurvey always reloads the catalog so a finished stage is
// reflected on re-entry.
func (c *Controller) enterSurvey(ctx context.Context, seq uint64) {
	list, err := c.gw.SurveyList(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	if c.stale(seq) {
		return
	}
	c.view.RenderSurveys(list)
}

func (c *Controller) enterProfile(ctx context.Context, seq uint64) {
	user, err := c.gw.User(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	c.profile = user

	p := Profile{UserResponse: *user}
	if results, err := c.gw.SurveyUserResults(ctx); err == nil {
		p.Results = results
	}

	if c.stale(seq) {
		return
	}
	c.view.RenderProfile(p)
}

func (c *Controller) enterAdmin(ctx context.Context, seq uint64) {
	users, err := c.gw.Users(ctx)
	if err != nil {
		c.fail(seq, err)
		return
	}
	if c.stale(seq) {
		return
	}
	c.view.RenderAdmin(users)
}

func (c *Controller) canUpload() bool {
	return c.profile != nil && duty.CanUploadSchedule(c.profile.Role)
}
