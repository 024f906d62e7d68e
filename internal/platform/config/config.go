package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	APIPort string

	QuestionsPerSection int
	LeaderboardSize     int

	IntentRedirectURL string
}

var AppConfig *Config

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = &Config{
		APIPort:             getEnv("API_PORT", "8080"),
		QuestionsPerSection: getEnvAsInt("QUESTIONS_PER_SECTION", 3),
		LeaderboardSize:     getEnvAsInt("LEADERBOARD_SIZE", 10),
		IntentRedirectURL:   getEnv("INTENT_REDIRECT_URL", "https://translightsolar.com/get-it-now"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
