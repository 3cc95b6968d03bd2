// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vitechbot/vitech-client/models"
)

// Users fetches the full user list. Admin only; the backend checks the
// actor id.
func (c *Client) Users(ctx context.Context) ([]models.AdminUser, error) {
	query := url.Values{}
	query.Set("actor_telegram_id", strconv.FormatInt(c.telegramID, 10))
	body, err := c.get(ctx, "/api/users", query)
	if err != nil {
		return nil, err
	}

	var result models.UsersResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return result.Users, nil
}

// SetRole changes another user's role. Admin only.
func (c *Client) SetRole(ctx context.Context, target int64, role string) error {
	body, err := c.postJSON(ctx, "/api/users/set-role", models.SetRoleRequest{
		ActorTelegramID:  c.telegramID,
		TargetTelegramID: target,
		Role:             role,
	})
	if err != nil {
		return err
	}

	var result models.StatusResponse
	if err := decode(body, &result); err != nil {
		return err
	}
	return apiErr(result.Error)
}
