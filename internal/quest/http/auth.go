package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/questboard/internal/quest/domain"
	"github.com/aussiebroadwan/questboard/internal/quest/service"
	"github.com/aussiebroadwan/questboard/pkg/httpx"
	"github.com/aussiebroadwan/questboard/pkg/jwtx"
	"github.com/aussiebroadwan/questboard/pkg/questsdk"
)

type AuthHandler struct {
	SessionService *service.SessionService
}

// HandleLogin issues a session token for a wallet.
//
//	@Summary		Wallet login
//	@Description	Registers the wallet on first login and records the optional browser and referral metadata once.
//	@Description	Wallet ownership is not proven here; callers verify signatures upstream.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		questsdk.LoginRequest	true	"Wallet and metadata"
//	@Success		200		{object}	questsdk.LoginResponse
//	@Failure		400		{object}	questsdk.ErrorResponse
//	@Failure		429		{object}	questsdk.ErrorResponse	"Rate limited"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req questsdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		questsdk.ErrInvalidRequest.WithMessage(err.Error()).WriteError(w)
		return
	}

	res, err := h.SessionService.Login(r.Context(), req.WalletAddress, domain.UserMeta{
		Browser:        strings.TrimSpace(req.Browser),
		ReferralSource: strings.TrimSpace(req.ReferralSource),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, questsdk.LoginResponse{
		Token:     res.Token,
		ExpiresIn: int(res.ExpiresIn.Seconds()),
		User:      toSessionUser(res.User, res.CompletedQuests, res.Achievements),
	})
}

// HandleVerify checks a session token. The token may come in the body or as a
// bearer header.
//
//	@Summary		Verify session token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		questsdk.VerifyRequest	false	"Token"
//	@Success		200		{object}	questsdk.VerifyResponse
//	@Failure		401		{object}	questsdk.ErrorResponse	"Invalid token"
//	@Router			/v1/auth/verify [post].
func (h *AuthHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	token, ok := httpx.BearerToken(r)
	if !ok {
		var req questsdk.VerifyRequest
		if err := httpx.DecodeJSON(w, r, &req); err != nil {
			questsdk.ErrInvalidRequest.WithMessage(err.Error()).WriteError(w)
			return
		}
		token = strings.TrimSpace(req.Token)
	}
	if token == "" {
		questsdk.ErrInvalidToken.WithMessage("token is required").WriteError(w)
		return
	}

	res, err := h.SessionService.Verify(r.Context(), token)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, questsdk.VerifyResponse{
		Valid: true,
		User:  toSessionUser(res.User, res.CompletedQuests, res.Achievements),
	})
}

// JWKSHandler exposes the JSON Web Key Set for public key discovery.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set used to verify session tokens.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	questsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, questsdk.JWKSResponse(keys.PublicJWKS()))
	}
}
