// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/vitechbot/vitech-client/models"
)

// Tasks fetches the cadet's task notes. The backend returns either a bare
// array or an error envelope; both are handled.
func (c *Client) Tasks(ctx context.Context) ([]models.Task, error) {
	query := url.Values{}
	query.Set("user_id", strconv.FormatInt(c.telegramID, 10))
	body, err := c.get(ctx, "/api/tasks", query)
	if err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err := json.Unmarshal(body, &tasks); err == nil {
		return tasks, nil
	}

	var envelope models.ErrorResponse
	if err := decode(body, &envelope); err != nil {
		return nil, err
	}
	if err := apiErr(envelope.Error); err != nil {
		return nil, err
	}
	return nil, nil
}

// AddTask creates a task note.
func (c *Client) AddTask(ctx context.Context, text string) error {
	return c.taskPost(ctx, "/api/add_task", models.AddTaskRequest{
		UserID: c.telegramID,
		Text:   text,
	})
}

// EditTask replaces a task's text.
func (c *Client) EditTask(ctx context.Context, taskID int, text string) error {
	return c.taskPost(ctx, "/api/edit_task", models.EditTaskRequest{
		TaskID: taskID,
		UserID: c.telegramID,
		Text:   text,
	})
}

// DeleteTask removes a task.
func (c *Client) DeleteTask(ctx context.Context, taskID int) error {
	return c.taskPost(ctx, "/api/delete_task", models.DeleteTaskRequest{
		TaskID: taskID,
		UserID: c.telegramID,
	})
}

// DoneTask toggles a task's done flag.
func (c *Client) DoneTask(ctx context.Context, taskID int, done bool) error {
	return c.taskPost(ctx, "/api/done_task", models.DoneTaskRequest{
		TaskID: taskID,
		UserID: c.telegramID,
		Done:   done,
	})
}

// SetReminder sets or replaces a task's reminder deadline
// (YYYY-MM-DD HH:MM:SS).
func (c *Client) SetReminder(ctx context.Context, taskID int, deadline string) error {
	return c.taskPost(ctx, "/api/set_reminder", models.SetReminderRequest{
		TaskID:   taskID,
		UserID:   c.telegramID,
		Deadline: deadline,
	})
}

func (c *Client) taskPost(ctx context.Context, path string, req interface{}) error {
	body, err := c.postJSON(ctx, path, req)
	if err != nil {
		return err
	}

	var result models.StatusResponse
	if err := decode(body, &result); err != nil {
		return err
	}
	return apiErr(result.Error)
}
