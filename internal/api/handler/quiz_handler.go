package handler

import (
	"encoding/json"
	"net/http"

	"solarquiz/internal/api/middleware"
	"solarquiz/internal/app/service"
	"solarquiz/internal/common"
	"solarquiz/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type QuizHandler struct {
	quizService  *service.QuizService
	scoreService *service.ScoreService
	authService  *service.AuthService
}

func NewQuizHandler(qs *service.QuizService, ss *service.ScoreService, as *service.AuthService) *QuizHandler {
	return &QuizHandler{quizService: qs, scoreService: ss, authService: as}
}

func (h *QuizHandler) RegisterRoutes(r chi.Router) {
	r.Post("/start", h.start)
	r.Post("/{quizID}/section/{section}/questions", h.sectionQuestions)
	r.Post("/response", h.response)

	r.Group(func(authed chi.Router) {
		authed.Use(middleware.Authenticator(h.authService))
		authed.Post("/finish", h.finish)
	})
}

func (h *QuizHandler) start(w http.ResponseWriter, r *http.Request) {
	resp, err := h.quizService.StartQuiz(r.Context())
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

type sectionQuestionsRequest struct {
	RecentConcepts []string `json:"recent_concepts"`
}

type sectionQuestionsResponse struct {
	Questions []model.Question `json:"questions"`
}

func (h *QuizHandler) sectionQuestions(w http.ResponseWriter, r *http.Request) {
	quizID := chi.URLParam(r, "quizID")
	section := chi.URLParam(r, "section")

	// An absent or empty body means no concepts to exclude
	var req sectionQuestionsRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	questions, err := h.quizService.SectionQuestions(r.Context(), quizID, section, req.RecentConcepts)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, sectionQuestionsResponse{Questions: questions})
}

type quizResponseRequest struct {
	QuizID string `json:"quizId"`
}

func (h *QuizHandler) response(w http.ResponseWriter, r *http.Request) {
	var req quizResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	ack, err := h.quizService.AcknowledgeResponse(r.Context(), req.QuizID)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, ack)
}

type finishRequest struct {
	QuizID  string `json:"quizId"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

func (h *QuizHandler) finish(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.GetSessionTokenFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing session context")
		return
	}

	var req finishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.scoreService.RecordScore(r.Context(), token, req.QuizID, req.Correct, req.Total); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"saved": true})
}
