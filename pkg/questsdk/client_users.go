package questsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetProfile registers the wallet on first use.
func (c *Client) GetProfile(ctx context.Context, wallet string) (*UserProfile, error) {
	var out UserProfile
	err := c.doJSON(ctx, http.MethodGet, "/v1/users/profile/"+url.PathEscape(wallet), nil, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProfile(ctx context.Context, wallet string, req UpdateProfileRequest) (*UserProfile, error) {
	var out UserProfile
	err := c.doJSON(ctx, http.MethodPut, "/v1/users/profile/"+url.PathEscape(wallet), req, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserExists(ctx context.Context, wallet string) (bool, error) {
	var out ExistsResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/users/exists/"+url.PathEscape(wallet), nil, nil, &out, http.StatusOK)
	if err != nil {
		return false, err
	}
	return out.Exists, nil
}

func (c *Client) Leaderboard(ctx context.Context, limit, offset int) (*LeaderboardResponse, error) {
	var out LeaderboardResponse
	path := fmt.Sprintf("/v1/users/leaderboard?limit=%d&offset=%d", limit, offset)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	var out StatsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/users/stats", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Interaction(ctx context.Context, wallet string) (*InteractionResponse, error) {
	var out InteractionResponse
	err := c.doJSON(ctx, http.MethodGet, "/v1/users/interaction/"+url.PathEscape(wallet), nil, nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
