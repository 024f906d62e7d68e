package model

import "time"

// ScoreRecord is append-only; once in the ledger it is never mutated.
type ScoreRecord struct {
	UserID    int       `json:"user_id"`
	QuizID    string    `json:"quiz_id"`
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}
