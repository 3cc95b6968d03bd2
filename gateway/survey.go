// Copyright (c) 2025 The VITECH project.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vitechbot/vitech-client/models"
)

// SurveyList fetches the survey catalog: the system pairwise surveys and
// any group-scoped custom surveys.
func (c *Client) SurveyList(ctx context.Context) (*models.SurveyListResponse, error) {
	body, err := c.get(ctx, "/api/survey/list", nil)
	if err != nil {
		return nil, err
	}

	var result models.SurveyListResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// SurveyPairs fetches the pair ballot for one stage. AlreadyVoted is set
// when the cadet has completed this stage before.
func (c *Client) SurveyPairs(ctx context.Context, stage string) (*models.PairsResponse, error) {
	query := url.Values{}
	query.Set("stage", stage)
	body, err := c.get(ctx, "/api/survey/pairs", query)
	if err != nil {
		return nil, err
	}

	var result models.PairsResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result, nil
}

// SubmitPairVote sends one pairwise vote.
func (c *Client) SubmitPairVote(ctx context.Context, req models.PairVoteRequest) error {
	req.UserID = c.telegramID
	body, err := c.postJSON(ctx, "/api/survey/pair-vote", req)
	if err != nil {
		return err
	}

	var result models.StatusResponse
	if err := decode(body, &result); err != nil {
		return err
	}
	return apiErr(result.Error)
}

// SurveyUserResults fetches the aggregated difficulty weights as the
// backend computed them from everyone's votes.
func (c *Client) SurveyUserResults(ctx context.Context) ([]models.SurveyResult, error) {
	body, err := c.get(ctx, "/api/survey/user-results", nil)
	if err != nil {
		return nil, err
	}

	var result models.SurveyResultsResponse
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// FinalizeSurvey tells the backend the cadet finished the last stage.
func (c *Client) FinalizeSurvey(ctx context.Context) error {
	body, err := c.postJSON(ctx, "/api/survey/finalize", map[string]int64{
		"telegram_id": c.telegramID,
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

// CustomSurvey fetches one group-scoped survey with its options.
func (c *Client) CustomSurvey(ctx context.Context, id int) (*models.CustomSurvey, error) {
	body, err := c.get(ctx, fmt.Sprintf("/api/survey/custom/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var result struct {
		models.CustomSurvey
		Error string `json:"error,omitempty"`
	}
	if err := decode(body, &result); err != nil {
		return nil, err
	}
	if err := apiErr(result.Error); err != nil {
		return nil, err
	}
	return &result.CustomSurvey, nil
}

// SubmitCustomVote sends one vote for a custom survey option.
func (c *Client) SubmitCustomVote(ctx context.Context, surveyID, optionID int) error {
	body, err := c.postJSON(ctx, fmt.Sprintf("/api/survey/custom/%d/vote", surveyID), models.CustomVoteRequest{
		TelegramID: c.telegramID,
		OptionID:   optionID,
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
