package http

import (
	"net/http"

	"github.com/aussiebroadwan/questboard/internal/quest/catalog"
	"github.com/aussiebroadwan/questboard/pkg/httpx"
	"github.com/aussiebroadwan/questboard/pkg/questsdk"
)

// HandleListQuests returns the quest catalog.
//
//	@Summary		List quests
//	@Tags			Quests
//	@Produce		json
//	@Success		200	{object}	questsdk.QuestsResponse
//	@Router			/v1/quests [get].
func HandleListQuests(w http.ResponseWriter, r *http.Request) {
	all := catalog.All()
	out := make([]questsdk.Quest, 0, len(all))
	for _, q := range all {
		out = append(out, toQuest(q))
	}
	httpx.WriteJSON(w, http.StatusOK, questsdk.QuestsResponse{
		Quests:  out,
		TotalXP: catalog.TotalXP(),
	})
}

// HandleGetQuest returns one quest.
//
//	@Summary		Get quest
//	@Tags			Quests
//	@Produce		json
//	@Param			questId	path		int	true	"Quest ID"
//	@Success		200		{object}	questsdk.Quest
//	@Failure		400		{object}	questsdk.ErrorResponse
//	@Failure		404		{object}	questsdk.ErrorResponse
//	@Router			/v1/quests/{questId} [get].
func HandleGetQuest(w http.ResponseWriter, r *http.Request) {
	id, err := questIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	q, ok := catalog.Lookup(id)
	if !ok {
		questsdk.ErrUnknownQuest.WriteError(w)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toQuest(q))
}
