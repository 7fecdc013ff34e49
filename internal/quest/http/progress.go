package http

import (
	"net/http"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/service"
	"github.com/aussiebroadwan/questboard/pkg/httpx"
	"github.com/aussiebroadwan/questboard/pkg/questsdk"
)

type ProgressHandler struct {
	ProgressService   *service.ProgressService
	CompletionService *service.CompletionService
}

// HandleStart begins a quest.
//
//	@Summary		Start a quest
//	@Description	Creates progress for the wallet with every step pending. The wallet is registered on first use.
//	@Description	Starting an already started quest returns the existing progress.
//	@Tags			Progress
//	@Accept			json
//	@Produce		json
//	@Param			questId	path		int							true	"Quest ID"
//	@Param			request	body		questsdk.StartQuestRequest	true	"Wallet"
//	@Success		200		{object}	questsdk.Progress
//	@Failure		400		{object}	questsdk.ErrorResponse	"Validation error or already completed"
//	@Failure		404		{object}	questsdk.ErrorResponse	"Unknown quest"
//	@Router			/v1/progress/start/{questId} [post].
func (h *ProgressHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	questID, err := questIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req questsdk.StartQuestRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		questsdk.ErrInvalidRequest.WithMessage(err.Error()).WriteError(w)
		return
	}

	p, err := h.ProgressService.Start(r.Context(), req.WalletAddress, questID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProgress(p, domain.NormalizeWallet(req.WalletAddress)))
}

// HandleUpdateStep toggles one step.
//
//	@Summary		Update a quest step
//	@Description	Checks or unchecks a step. Checking the last step makes the quest ready for completion; unchecking any step of a ready quest moves it back to in_progress.
//	@Tags			Progress
//	@Accept			json
//	@Produce		json
//	@Param			questId	path		int							true	"Quest ID"
//	@Param			request	body		questsdk.UpdateStepRequest	true	"Step update"
//	@Success		200		{object}	questsdk.Progress
//	@Failure		400		{object}	questsdk.ErrorResponse
//	@Failure		404		{object}	questsdk.ErrorResponse	"User, progress or step not found"
//	@Router			/v1/progress/update/{questId} [put].
func (h *ProgressHandler) HandleUpdateStep(w http.ResponseWriter, r *http.Request) {
	questID, err := questIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req questsdk.UpdateStepRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		questsdk.ErrInvalidRequest.WithMessage(err.Error()).WriteError(w)
		return
	}

	p, err := h.ProgressService.UpdateStep(r.Context(), req.WalletAddress, questID, req.StepID, req.Completed)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toProgress(p, domain.NormalizeWallet(req.WalletAddress)))
}

// HandleComplete commits a quest completion.
//
//	@Summary		Complete a quest
//	@Description	Records the completion and credits the quest XP exactly once. Newly unlocked achievements are returned.
//	@Tags			Progress
//	@Accept			json
//	@Produce		json
//	@Param			questId	path		int								true	"Quest ID"
//	@Param			request	body		questsdk.CompleteQuestRequest	true	"Completion evidence"
//	@Success		200		{object}	questsdk.CompleteQuestResponse
//	@Failure		400		{object}	questsdk.ErrorResponse	"Validation error or already_completed"
//	@Failure		404		{object}	questsdk.ErrorResponse	"User, progress or quest not found"
//	@Failure		503		{object}	questsdk.ErrorResponse	"Transient conflict, retryable"
//	@Failure		500		{object}	questsdk.ErrorResponse	"Internal error, retryable"
//	@Router			/v1/progress/complete/{questId} [post].
func (h *ProgressHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	questID, err := questIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req questsdk.CompleteQuestRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		questsdk.ErrInvalidRequest.WithMessage(err.Error()).WriteError(w)
		return
	}

	res, err := h.CompletionService.Complete(r.Context(), service.CompleteRequest{
		Wallet:             req.WalletAddress,
		QuestID:            questID,
		TransactionHash:    req.TransactionHash,
		BlockchainVerified: req.BlockchainVerified,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, questsdk.CompleteQuestResponse{
		Message:         "Quest completed successfully",
		XPEarned:        res.XPEarned,
		TotalXP:         res.TotalXP,
		TransactionHash: res.TransactionHash,
		CompletedAt:     res.CompletedAt,
		NewAchievements: toRuleAchievements(res.NewAchievements),
	})
}

// HandleUserProgress returns a wallet's progress summary.
//
//	@Summary		User progress
//	@Tags			Progress
//	@Produce		json
//	@Param			walletAddress	path		string	true	"Wallet address"
//	@Success		200				{object}	questsdk.ProgressSummaryResponse
//	@Failure		404				{object}	questsdk.ErrorResponse	"Unknown user"
//	@Router			/v1/progress/user/{walletAddress} [get].
func (h *ProgressHandler) HandleUserProgress(w http.ResponseWriter, r *http.Request) {
	sum, err := h.ProgressService.Summary(r.Context(), r.PathValue("walletAddress"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	active := make([]questsdk.Progress, 0, len(sum.ActiveProgress))
	for _, p := range sum.ActiveProgress {
		active = append(active, toProgress(p, sum.WalletAddress))
	}

	httpx.WriteJSON(w, http.StatusOK, questsdk.ProgressSummaryResponse{
		WalletAddress:   sum.WalletAddress,
		TotalXP:         sum.TotalXP,
		CompletedQuests: toCompletedQuests(sum.CompletedQuests),
		ActiveProgress:  active,
	})
}

// HandleQuestStatus reports whether a wallet completed a quest.
//
//	@Summary		Quest completion status
//	@Tags			Progress
//	@Produce		json
//	@Param			questId			path		int		true	"Quest ID"
//	@Param			walletAddress	query		string	true	"Wallet address"
//	@Success		200				{object}	questsdk.QuestStatusResponse
//	@Failure		400				{object}	questsdk.ErrorResponse
//	@Router			/v1/progress/quest/{questId}/status [get].
func (h *ProgressHandler) HandleQuestStatus(w http.ResponseWriter, r *http.Request) {
	questID, err := questIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	wallet := r.URL.Query().Get("walletAddress")
	if domain.NormalizeWallet(wallet) == "" {
		writeServiceError(w, r, service.ErrInvalidWallet)
		return
	}

	st, err := h.ProgressService.Status(r.Context(), wallet, questID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, questsdk.QuestStatusResponse{
		Completed:     st.Completed,
		WalletAddress: st.WalletAddress,
		QuestID:       st.QuestID,
		XPEarned:      st.XPEarned,
	})
}

// HandleRecentCompletions is the global activity feed.
//
//	@Summary		Recent completions
//	@Tags			Progress
//	@Produce		json
//	@Param			limit	query	int	false	"Max entries (1-50)"	default(10)
//	@Success		200		{array}	questsdk.RecentCompletion
//	@Router			/v1/progress/recent-completions [get].
func (h *ProgressHandler) HandleRecentCompletions(w http.ResponseWriter, r *http.Request) {
	limit := httpx.QueryInt(r, "limit", 10, 1, 50)

	recent, err := h.ProgressService.RecentCompletions(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]questsdk.RecentCompletion, 0, len(recent))
	for _, c := range recent {
		out = append(out, questsdk.RecentCompletion{
			WalletAddress: c.WalletAddress,
			Username:      c.Username,
			QuestID:       c.QuestID,
			XPEarned:      c.XPEarned,
			CompletedAt:   c.CompletedAt,
		})
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
