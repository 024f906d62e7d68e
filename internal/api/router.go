package api

import (
	"net/http"
	"time"

	"solarquiz/internal/api/handler"
	"solarquiz/internal/app/service"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(
	authService *service.AuthService,
	quizService *service.QuizService,
	scoreService *service.ScoreService,
	statsService *service.StatsService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Session"},
		AllowCredentials: false,
	}))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		authHandler := handler.NewAuthHandler(authService)
		v1.Route("/auth", authHandler.RegisterRoutes)

		// Quiz routes (finish requires a session, the rest are public)
		quizHandler := handler.NewQuizHandler(quizService, scoreService, authService)
		v1.Route("/quiz", quizHandler.RegisterRoutes)

		// Leaderboard routes (public)
		leaderboardHandler := handler.NewLeaderboardHandler(scoreService)
		v1.Route("/leaderboard", leaderboardHandler.RegisterRoutes)

		// Intent + admin counters
		statsHandler := handler.NewStatsHandler(statsService)
		statsHandler.RegisterRoutes(v1)
	})

	return r
}
