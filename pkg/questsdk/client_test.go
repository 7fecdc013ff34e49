package questsdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/questboard/pkg/questsdk"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		questsdk.ErrAlreadyCompleted.WriteError(w)
	}))
	t.Cleanup(srv.Close)

	client := questsdk.NewClient(srv.URL + "/")
	_, err := client.CompleteQuest(context.Background(), 1, questsdk.CompleteQuestRequest{WalletAddress: "0xabc"})
	require.ErrorIs(t, err, questsdk.ErrAlreadyCompleted)
	require.NotErrorIs(t, err, questsdk.ErrProgressNotFound)

	var apiErr *questsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "Quest already completed", apiErr.Message)
	require.False(t, apiErr.Retryable)
}

func TestRetryableFlagSurvives(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		questsdk.ErrTransientConflict.WriteError(w)
	}))
	t.Cleanup(srv.Close)

	_, err := questsdk.NewClient(srv.URL).GetProfile(context.Background(), "0xabc")

	var apiErr *questsdk.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	require.True(t, apiErr.Retryable)
	require.True(t, questsdk.IsRetryable(err))
	require.ErrorIs(t, err, questsdk.ErrTransientConflict)
}

func TestNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := questsdk.NewClient(srv.URL).Stats(context.Background())
	require.Error(t, err)

	var apiErr *questsdk.APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestRequestShapes(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		gotAuth = r.Header.Get("Authorization")
		gotBody = nil
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/auth/login":
			_ = json.NewEncoder(w).Encode(questsdk.LoginResponse{
				Token:     "tok",
				ExpiresIn: 3600,
				User:      questsdk.SessionUser{ID: "u1", WalletAddress: "0xabc"},
			})
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	t.Cleanup(srv.Close)

	ctx := context.Background()
	client := questsdk.NewClient(srv.URL)

	_, err := client.UpdateStep(ctx, "0xabc", 2, 3, true)
	require.NoError(t, err)
	require.Equal(t, "/v1/progress/update/2", gotPath)
	require.Equal(t, map[string]any{"walletAddress": "0xabc", "stepId": float64(3), "completed": true}, gotBody)

	_, err = client.GetQuestStatus(ctx, "0xabc", 4)
	require.NoError(t, err)
	require.Equal(t, "/v1/progress/quest/4/status?walletAddress=0xabc", gotPath)

	session, err := client.Login(ctx, questsdk.LoginRequest{WalletAddress: "0xabc"})
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())
	require.False(t, session.Expired())
	require.Equal(t, "u1", session.User().ID)

	_, err = session.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "/v1/users/me", gotPath)
	require.Equal(t, "Bearer tok", gotAuth)
}
