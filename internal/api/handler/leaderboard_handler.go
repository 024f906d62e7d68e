package handler

import (
	"net/http"

	"solarquiz/internal/app/service"
	"solarquiz/internal/common"

	"github.com/go-chi/chi/v5"
)

type LeaderboardHandler struct {
	scoreService *service.ScoreService
}

func NewLeaderboardHandler(scoreService *service.ScoreService) *LeaderboardHandler {
	return &LeaderboardHandler{scoreService: scoreService}
}

func (h *LeaderboardHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.leaderboard)
}

func (h *LeaderboardHandler) leaderboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.scoreService.Leaderboard(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, board)
}
