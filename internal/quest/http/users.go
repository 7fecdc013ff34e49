package http

import (
	"net/http"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/service"
	"github.com/aussiebroadwan/questboard/pkg/httpx"
	"github.com/aussiebroadwan/questboard/pkg/questsdk"
)

type UsersHandler struct {
	ProfileService *service.ProfileService
}

// HandleGetProfile returns a wallet's profile, registering it on first sight.
//
//	@Summary		Get profile
//	@Tags			Users
//	@Produce		json
//	@Param			walletAddress	path		string	true	"Wallet address"
//	@Success		200				{object}	questsdk.UserProfile
//	@Failure		400				{object}	questsdk.ErrorResponse
//	@Router			/v1/users/profile/{walletAddress} [get].
func (h *UsersHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.ProfileService.Profile(r.Context(), r.PathValue("walletAddress"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(u))
}

// HandleUpdateProfile sets or clears the username.
//
//	@Summary		Update profile
//	@Description	Usernames are 3-32 characters of letters, digits, '_' or '-' and unique across users. An empty username clears it.
//	@Tags			Users
//	@Accept			json
//	@Produce		json
//	@Param			walletAddress	path		string							true	"Wallet address"
//	@Param			request			body		questsdk.UpdateProfileRequest	true	"New username"
//	@Success		200				{object}	questsdk.UserProfile
//	@Failure		400				{object}	questsdk.ErrorResponse
//	@Failure		409				{object}	questsdk.ErrorResponse	"Username taken"
//	@Router			/v1/users/profile/{walletAddress} [put].
func (h *UsersHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req questsdk.UpdateProfileRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		questsdk.ErrInvalidRequest.WithMessage(err.Error()).WriteError(w)
		return
	}

	u, err := h.ProfileService.SetUsername(r.Context(), r.PathValue("walletAddress"), req.Username)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(u))
}

// HandleExists reports whether a wallet is registered without registering it.
//
//	@Summary		User exists
//	@Tags			Users
//	@Produce		json
//	@Param			walletAddress	path		string	true	"Wallet address"
//	@Success		200				{object}	questsdk.ExistsResponse
//	@Router			/v1/users/exists/{walletAddress} [get].
func (h *UsersHandler) HandleExists(w http.ResponseWriter, r *http.Request) {
	wallet := r.PathValue("walletAddress")

	ok, err := h.ProfileService.Exists(r.Context(), wallet)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, questsdk.ExistsResponse{
		Exists:        ok,
		WalletAddress: domain.NormalizeWallet(wallet),
	})
}

// HandleLeaderboard pages users by XP.
//
//	@Summary		Leaderboard
//	@Description	Ordered by total XP, ties broken by earliest registration.
//	@Tags			Users
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (1-100)"	default(20)
//	@Param			offset	query		int	false	"Offset"				default(0)
//	@Success		200		{object}	questsdk.LeaderboardResponse
//	@Router			/v1/users/leaderboard [get].
func (h *UsersHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := httpx.QueryInt(r, "limit", service.DefaultLeaderboardLimit, 1, service.MaxLeaderboardLimit)
	offset := httpx.QueryInt(r, "offset", 0, 0, 1<<31-1)

	lb, err := h.ProfileService.Leaderboard(r.Context(), limit, offset)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toLeaderboard(lb))
}

// HandleStats returns platform totals.
//
//	@Summary		Platform stats
//	@Tags			Users
//	@Produce		json
//	@Success		200	{object}	questsdk.StatsResponse
//	@Router			/v1/users/stats [get].
func (h *UsersHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.ProfileService.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, questsdk.StatsResponse{
		TotalUsers:           st.TotalUsers,
		TotalXP:              st.TotalXP,
		TotalQuestsCompleted: st.TotalQuestsCompleted,
	})
}

// HandleInteraction reports whether a wallet has used the app.
//
//	@Summary		Wallet interaction
//	@Tags			Users
//	@Produce		json
//	@Param			walletAddress	path		string	true	"Wallet address"
//	@Success		200				{object}	questsdk.InteractionResponse
//	@Router			/v1/users/interaction/{walletAddress} [get].
func (h *UsersHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	in, err := h.ProfileService.Interaction(r.Context(), r.PathValue("walletAddress"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	quests := make([]questsdk.InteractionQuest, 0, len(in.Quests))
	for _, q := range in.Quests {
		quests = append(quests, questsdk.InteractionQuest{
			QuestID:         q.QuestID,
			QuestName:       q.QuestName,
			XPEarned:        q.XPEarned,
			TransactionHash: q.TransactionHash,
			CompletedAt:     q.CompletedAt,
		})
	}

	httpx.WriteJSON(w, http.StatusOK, questsdk.InteractionResponse{
		HasInteracted:   in.HasInteracted,
		WalletAddress:   in.WalletAddress,
		TotalXP:         in.TotalXP,
		QuestsCompleted: in.QuestsCompleted,
		Quests:          quests,
		RegisteredAt:    in.RegisteredAt,
		LastActiveAt:    in.LastActiveAt,
	})
}

// HandleMe returns the profile of the session's user.
//
//	@Summary		Current user
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	questsdk.UserProfile
//	@Failure		401	{object}	questsdk.ErrorResponse
//	@Failure		404	{object}	questsdk.ErrorResponse
//	@Router			/v1/users/me [get].
func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.UserIDFromContext(r.Context())
	if !ok {
		questsdk.ErrInvalidToken.WriteError(w)
		return
	}
	wallet, _ := httpx.WalletFromContext(r.Context())

	u, err := h.ProfileService.Me(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	// A token minted for another wallet does not get this profile.
	if u.WalletAddress != wallet {
		questsdk.ErrInvalidToken.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProfile(u))
}
