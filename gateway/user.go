// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vitechbot/vitech-client/models"
)

// User fetches the cadet's profile.
func (c *Client) User(ctx context.Context) (*models.UserResponse, error) {
	body, err := c.get(ctx, "/api/user", nil)
	if err != nil {
		return nil, err
	}

	var result models.UserResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateUser changes the cadet's name and/or group.
func (c *Client) UpdateUser(ctx context.Context, req models.UpdateUserRequest) error {
	req.TelegramID = c.telegramID
	body, err := c.patchJSON(ctx, "/api/user", req)
	if err != nil {
		return err
	}

	var result models.StatusResponse
	if err := decode(body, &result); err != nil {
		return err
	}
	return apiErr(result.Error)
}

// Notifications fetches the latest schedule-change notifications.
func (c *Client) Notifications(ctx context.Context, limit int) ([]models.Notification, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	body, err := c.get(ctx, "/api/notifications", query)
	if err != nil {
		return nil, err
	}

	var result models.NotificationsResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// RatingMe fetches the cadet's own rating points.
func (c *Client) RatingMe(ctx context.Context) (*models.RatingMeResponse, error) {
	body, err := c.get(ctx, "/api/rating/me", nil)
	if err != nil {
		return nil, err
	}

	var result models.RatingMeResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// RatingTop fetches the leaderboard for the given period and scope.
func (c *Client) RatingTop(ctx context.Context, period, scope string, limit int) ([]models.RatingEntry, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}
	if scope != "" {
		query.Set("scope", scope)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	body, err := c.get(ctx, "/api/rating/top-enhanced", query)
	if err != nil {
		return nil, err
	}

	var result models.RatingTopResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return result.Top, nil
}
