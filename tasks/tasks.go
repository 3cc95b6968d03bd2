// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tasks

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/vitechbot/vitech-client/models"
)

// API is the slice of the backend client the task list needs.
type API interface {
	Tasks(ctx context.Context) ([]models.Task, error)
	AddTask(ctx context.Context, text string) error
	EditTask(ctx context.Context, taskID int, text string) error
	DeleteTask(ctx context.Context, taskID int) error
	DoneTask(ctx context.Context, taskID int, done bool) error
	SetReminder(ctx context.Context, taskID int, deadline string) error
}

var (
	ErrEmptyText   = errors.New("task text is empty")
	ErrUnknownTask = errors.New("unknown task id")
)

// Manager keeps the cached task list and pushes edits to the backend.
// Methods are not safe for concurrent use; the screen controller
// serializes access.
type Manager struct {
	api   API
	tasks []models.Task
}

func NewManager(api API) *Manager {
	return &Manager{api: api}
}

// Reload fetches the list from the backend, replacing the cache.
func (m *Manager) Reload(ctx context.Context) ([]models.Task, error) {
	tasks, err := m.api.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	m.tasks = tasks
	return tasks, nil
}

// Cached returns the last loaded list without a network call.
func (m *Manager) Cached() []models.Task {
	return m.tasks
}

// Add creates a task. Empty or whitespace-only text is rejected before
// any network call.
func (m *Manager) Add(ctx context.Context, text string) ([]models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if err := m.api.AddTask(ctx, text); err != nil {
		return nil, err
	}
	return m.Reload(ctx)
}

// Edit replaces a task's text.
func (m *Manager) Edit(ctx context.Context, taskID int, text string) ([]models.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if m.find(taskID) == nil {
		return nil, ErrUnknownTask
	}
	if err := m.api.EditTask(ctx, taskID, text); err != nil {
		return nil, err
	}
	return m.Reload(ctx)
}

// Delete removes a task.
func (m *Manager) Delete(ctx context.Context, taskID int) ([]models.Task, error) {
	if m.find(taskID) == nil {
		return nil, ErrUnknownTask
	}
	if err := m.api.DeleteTask(ctx, taskID); err != nil {
		return nil, err
	}
	return m.Reload(ctx)
}

// Toggle flips a task's done state. The cache is updated first so the
// list redraws immediately; a failed call rolls the flip back.
func (m *Manager) Toggle(ctx context.Context, taskID int) error {
	task := m.find(taskID)
	if task == nil {
		return ErrUnknownTask
	}

	task.Done = !task.Done
	if err := m.api.DoneTask(ctx, taskID, task.Done); err != nil {
		task.Done = !task.Done
		return err
	}
	return nil
}

// Remind sets a reminder from "DD HH:MM" user input.
func (m *Manager) Remind(ctx context.Context, taskID int, input string, now time.Time) (time.Time, error) {
	if m.find(taskID) == nil {
		return time.Time{}, ErrUnknownTask
	}
	at, err := ParseReminder(input, now)
	if err != nil {
		return time.Time{}, err
	}
	if err := m.api.SetReminder(ctx, taskID, at.Format("2006-01-02 15:04:05")); err != nil {
		return time.Time{}, err
	}
	return at, nil
}

func (m *Manager) find(taskID int) *models.Task {
	for i := range m.tasks {
		if m.tasks[i].ID == taskID {
			return &m.tasks[i]
		}
	}
	return nil
}

// ParseReminder parses "DD HH:MM". A day already past this month rolls
// into the next month; a matching day with a past time also rolls.
func ParseReminder(input string, now time.Time) (time.Time, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) != 2 {
		return time.Time{}, fmt.Errorf("expected DD HH:MM, got %q", input)
	}

	day, err := strconv.Atoi(fields[0])
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("bad day %q", fields[0])
	}

	clock := strings.SplitN(fields[1], ":", 2)
	if len(clock) != 2 {
		return time.Time{}, fmt.Errorf("bad time %q", fields[1])
	}
	hour, err := strconv.Atoi(clock[0])
	if err != nil || hour < 0 || hour > 23 {
		return time.Time{}, fmt.Errorf("bad hour %q", clock[0])
	}
	minute, err := strconv.Atoi(clock[1])
	if err != nil || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("bad minute %q", clock[1])
	}

	at := time.Date(now.Year(), now.Month(), day, hour, minute, 0, 0, now.Location())
	if at.Day() != day {
		// The day does not exist this month (e.g. 31 in November).
		return time.Time{}, fmt.Errorf("day %d out of range for %s", day, now.Month())
	}
	if !at.After(now) {
		at = at.AddDate(0, 1, 0)
		if at.Day() != day {
			return time.Time{}, fmt.Errorf("day %d out of range for %s", day, at.Month())
		}
	}
	return at, nil
}
