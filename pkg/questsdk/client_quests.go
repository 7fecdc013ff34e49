package questsdk

import (
	"context"
	"fmt"
	"net/http"
)

func (c *Client) ListQuests(ctx context.Context) (*QuestsResponse, error) {
	var out QuestsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/quests", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetQuest(ctx context.Context, questID int) (*Quest, error) {
	var out Quest
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/quests/%d", questID), nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
