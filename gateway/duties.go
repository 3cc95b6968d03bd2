// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"net/url"
	"strconv"

	"github.com/vitechbot/vitech-client/models"
)

// Duties fetches the cadet's duty roster: the next upcoming duty plus the
// full list for the current month.
func (c *Client) Duties(ctx context.Context) (*models.DutiesResponse, error) {
	return c.duties(ctx, nil)
}

// DutiesForMonth fetches the cadet's duties for a specific month.
func (c *Client) DutiesForMonth(ctx context.Context, year, month int) (*models.DutiesResponse, error) {
	query := url.Values{}
	query.Set("year", strconv.Itoa(year))
	query.Set("month", strconv.Itoa(month))
	return c.duties(ctx, query)
}

func (c *Client) duties(ctx context.Context, query url.Values) (*models.DutiesResponse, error) {
	body, err := c.get(ctx, "/api/duties", query)
	if err != nil {
		return nil, err
	}

	var result models.DutiesResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// AvailableMonths fetches the months that have an uploaded roster,
// newest first (YYYY-MM).
func (c *Client) AvailableMonths(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "/api/duties/available-months", nil)
	if err != nil {
		return nil, err
	}

	var result models.AvailableMonthsResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return result.Months, nil
}

// DutiesByDate fetches the whole duty brigade for one day, grouped by
// role code.
func (c *Client) DutiesByDate(ctx context.Context, date string) (*models.DutyDayResponse, error) {
	query := url.Values{}
	query.Set("date", date)
	body, err := c.get(ctx, "/api/duties/by-date", query)
	if err != nil {
		return nil, err
	}

	var result models.DutyDayResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// DayDetail fetches the cadet's own assignment detail for one day.
func (c *Client) DayDetail(ctx context.Context, date string) (*models.DutyDayResponse, error) {
	query := url.Values{}
	query.Set("date", date)
	body, err := c.get(ctx, "/api/duties/day-detail", query)
	if err != nil {
		return nil, err
	}

	var result models.DutyDayResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}
