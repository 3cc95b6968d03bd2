package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vitechbot/vitech-client/models"
)

// fakeAPI records calls and serves a canned list.
type fakeAPI struct {
	list     []models.Task
	listErr  error
	doneErr  error
	addCalls int
	done     map[int]bool
	reminder string
}

func (f *fakeAPI) Tasks(ctx context.Context) ([]models.Task, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Task, len(f.list))
	copy(out, f.list)
	return out, nil
}

func (f *fakeAPI) AddTask(ctx context.Context, text string) error {
	f.addCalls++
	f.list = append(f.list, models.Task{ID: len(f.list) + 1, Text: text})
	return nil
}

func (f *fakeAPI) EditTask(ctx context.Context, taskID int, text string) error {
	for i := range f.list {
		if f.list[i].ID == taskID {
			f.list[i].Text = text
		}
	}
	return nil
}

func (f *fakeAPI) DeleteTask(ctx context.Context, taskID int) error {
	out := f.list[:0]
	for _, t := range f.list {
		if t.ID != taskID {
			out = append(out, t)
		}
	}
	f.list = out
	return nil
}

func (f *fakeAPI) DoneTask(ctx context.Context, taskID int, done bool) error {
	if f.doneErr != nil {
		return f.doneErr
	}
	if f.done == nil {
		f.done = make(map[int]bool)
	}
	f.done[taskID] = done
	return nil
}

func (f *fakeAPI) SetReminder(ctx context.Context, taskID int, deadline string) error {
	f.reminder = deadline
	return nil
}

func TestAddRejectsEmptyTextBeforeNetwork(t *testing.T) {
	api := &fakeAPI{}
	m := NewManager(api)

	for _, input := range []string{"", "   ", "\t\n"} {
		if _, err := m.Add(context.Background(), input); !errors.Is(err, ErrEmptyText) {
			t.Errorf("Add(%q) error = %v, want ErrEmptyText", input, err)
		}
	}
	if api.addCalls != 0 {
		t.Errorf("add reached the backend %d times, want 0", api.addCalls)
	}
}

func TestAddTrimsAndReloads(t *testing.T) {
	api := &fakeAPI{}
	m := NewManager(api)

	list, err := m.Add(context.Background(), "  купить тетради  ")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if len(list) != 1 || list[0].Text != "купить тетради" {
		t.Errorf("list = %+v", list)
	}
	if got := m.Cached(); len(got) != 1 {
		t.Errorf("Cached() = %+v, want the new task", got)
	}
}

func TestToggleOptimisticRollback(t *testing.T) {
	api := &fakeAPI{list: []models.Task{{ID: 1, Text: "a"}}}
	m := NewManager(api)
	if _, err := m.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}

	// Success path flips the cache.
	if err := m.Toggle(context.Background(), 1); err != nil {
		t.Fatalf("Toggle() error = %v", err)
	}
	if !m.Cached()[0].Done {
		t.Error("cache not flipped after successful toggle")
	}
	if !api.done[1] {
		t.Error("backend did not receive done=true")
	}

	// Failure path rolls the flip back.
	api.doneErr = errors.New("network down")
	if err := m.Toggle(context.Background(), 1); err == nil {
		t.Fatal("Toggle() succeeded, want error")
	}
	if !m.Cached()[0].Done {
		t.Error("cache rolled past the pre-toggle state")
	}
}

func TestToggleUnknownTask(t *testing.T) {
	m := NewManager(&fakeAPI{})
	if err := m.Toggle(context.Background(), 99); !errors.Is(err, ErrUnknownTask) {
		t.Errorf("Toggle(99) error = %v, want ErrUnknownTask", err)
	}
}

func TestRemind(t *testing.T) {
	api := &fakeAPI{list: []models.Task{{ID: 1, Text: "a"}}}
	m := NewManager(api)
	if _, err := m.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}

	now := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)
	at, err := m.Remind(context.Background(), 1, "15 08:30", now)
	if err != nil {
		t.Fatalf("Remind() error = %v", err)
	}
	want := time.Date(2025, 12, 15, 8, 30, 0, 0, time.UTC)
	if !at.Equal(want) {
		t.Errorf("Remind() = %v, want %v", at, want)
	}
	if api.reminder != "2025-12-15 08:30:00" {
		t.Errorf("backend deadline = %q", api.reminder)
	}
}

func TestParseReminder(t *testing.T) {
	now := time.Date(2025, 12, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"future day this month", "15 08:30", time.Date(2025, 12, 15, 8, 30, 0, 0, time.UTC)},
		{"past day rolls to next month", "5 08:30", time.Date(2026, 1, 5, 8, 30, 0, 0, time.UTC)},
		{"today later time stays", "10 23:00", time.Date(2025, 12, 10, 23, 0, 0, 0, time.UTC)},
		{"today earlier time rolls", "10 08:00", time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReminder(tt.input, now)
			if err != nil {
				t.Fatalf("ParseReminder(%q) error = %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseReminder(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseReminderRejects(t *testing.T) {
	now := time.Date(2025, 11, 10, 9, 0, 0, 0, time.UTC)

	for _, input := range []string{"", "15", "15 8", "15 25:00", "15 08:61", "32 08:00", "31 08:00", "abc 08:00"} {
		if _, err := ParseReminder(input, now); err == nil {
			t.Errorf("ParseReminder(%q) succeeded, want error", input)
		}
	}
}
