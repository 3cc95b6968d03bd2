// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/vitechbot/vitech-client/models"
)

// ScheduleToday fetches today's lessons. date (YYYY-MM-DD) is optional;
// the site variant passes next Monday when today is a weekend.
func (c *Client) ScheduleToday(ctx context.Context, date string) (*models.ScheduleDayResponse, error) {
	query := url.Values{}
	if date != "" {
		query.Set("date", date)
	}
	body, err := c.get(ctx, "/api/schedule/today", query)
	if err != nil {
		return nil, err
	}

	var result models.ScheduleDayResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScheduleWeek fetches the lesson grid for the week starting at date.
func (c *Client) ScheduleWeek(ctx context.Context, date string) (*models.ScheduleWeekResponse, error) {
	query := url.Values{}
	query.Set("date", date)
	body, err := c.get(ctx, "/api/schedule/week", query)
	if err != nil {
		return nil, err
	}

	var result models.ScheduleWeekResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadSchedule sends a duty-roster .xlsx as multipart form data.
// overwrite replaces an already-uploaded month.
func (c *Client) UploadSchedule(ctx context.Context, filename string, file io.Reader, overwrite bool) (*models.UploadResponse, error) {
	ow := "0"
	if overwrite {
		ow = "1"
	}
	return c.uploadMultipart(ctx, "/api/schedule/upload", filename, file, map[string]string{
		"telegram_id": strconv.FormatInt(c.telegramID, 10),
		"overwrite":   ow,
	})
}

// UploadTemplate sends a group-specific roster template .xlsx.
func (c *Client) UploadTemplate(ctx context.Context, filename string, file io.Reader) (*models.UploadResponse, error) {
	return c.uploadMultipart(ctx, "/api/schedule/upload-template", filename, file, map[string]string{
		"telegram_id": strconv.FormatInt(c.telegramID, 10),
	})
}

func (c *Client) uploadMultipart(ctx context.Context, path, filename string, file io.Reader, fields map[string]string) (*models.UploadResponse, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		for k, v := range fields {
			if err := writer.WriteField(k, v); err != nil {
				pw.CloseWithError(err)
				return
			}
		}
		pw.CloseWithError(writer.Close())
	}()

	body, err := c.doRequest(ctx, http.MethodPost, path, nil, pr, writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var result models.UploadResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if result.Detail != "" {
		return nil, &APIError{Status: http.StatusOK, Message: result.Detail}
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// DownloadTemplate streams the blank roster template .xlsx into w.
func (c *Client) DownloadTemplate(ctx context.Context, w io.Writer) error {
	query := url.Values{}
	query.Set("telegram_id", strconv.FormatInt(c.telegramID, 10))

	u := c.baseURL + "/api/schedule/template?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(resp.Body)
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}
	return nil
}

// DeleteScheduleMonth removes an uploaded roster month (YYYY-MM).
func (c *Client) DeleteScheduleMonth(ctx context.Context, month string) error {
	query := url.Values{}
	query.Set("month", month)
	query.Set("telegram_id", strconv.FormatInt(c.telegramID, 10))

	body, err := c.doRequest(ctx, http.MethodDelete, "/api/schedule/month", query, nil, "")
	if err != nil {
		return err
	}

	var result models.StatusResponse
	if err := decode(body, &result); err != nil {
		return err
	}
	return apiErr(result.Error)
}
