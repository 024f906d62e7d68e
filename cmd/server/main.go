package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solarquiz/internal/api"
	"solarquiz/internal/app/service"
	"solarquiz/internal/domain/repository"
	"solarquiz/internal/platform/bank"
	"solarquiz/internal/platform/config"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Load the Question Bank
	questionBank := bank.Default()
	fmt.Println("Question bank loaded.")

	// 3. Initialize Repositories (in-memory; everything is lost on restart)
	userRepo := repository.NewMemUserRepository()
	sessionRepo := repository.NewMemSessionRepository()
	quizRepo := repository.NewMemQuizRepository()
	scoreRepo := repository.NewMemScoreRepository()

	// 4. Initialize Services
	authService := service.NewAuthService(userRepo, sessionRepo)
	quizService := service.NewQuizService(questionBank, quizRepo, config.AppConfig.QuestionsPerSection)
	scoreService := service.NewScoreService(scoreRepo, userRepo, sessionRepo, quizRepo, config.AppConfig.LeaderboardSize)
	statsService := service.NewStatsService(userRepo, config.AppConfig.IntentRedirectURL)

	// 5. Initialize Router & HTTP Server
	router := api.NewRouter(authService, quizService, scoreService, statsService)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 6. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
