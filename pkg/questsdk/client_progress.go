package questsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func (c *Client) StartQuest(ctx context.Context, wallet string, questID int) (*Progress, error) {
	var out Progress
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/v1/progress/start/%d", questID),
		StartQuestRequest{WalletAddress: wallet}, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStep(ctx context.Context, wallet string, questID, stepID int, completed bool) (*Progress, error) {
	var out Progress
	err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/v1/progress/update/%d", questID),
		UpdateStepRequest{WalletAddress: wallet, StepID: stepID, Completed: completed}, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CompleteQuest(ctx context.Context, questID int, req CompleteQuestRequest) (*CompleteQuestResponse, error) {
	var out CompleteQuestResponse
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/v1/progress/complete/%d", questID),
		req, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetUserProgress(ctx context.Context, wallet string) (*ProgressSummaryResponse, error) {
	var out ProgressSummaryResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/progress/user/"+url.PathEscape(wallet), nil, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetQuestStatus(ctx context.Context, wallet string, questID int) (*QuestStatusResponse, error) {
	path := fmt.Sprintf("/v1/progress/quest/%d/status?walletAddress=%s", questID, url.QueryEscape(wallet))

	var out QuestStatusResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RecentCompletions(ctx context.Context, limit int) ([]RecentCompletion, error) {
	var out []RecentCompletion
	path := fmt.Sprintf("/v1/progress/recent-completions?limit=%d", limit)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}
