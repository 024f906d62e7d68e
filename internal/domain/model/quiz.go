package model

import "time"

type RunPhase string

const (
	RunCreated    RunPhase = "Created"
	RunInProgress RunPhase = "InProgress"
	RunComplete   RunPhase = "Complete"
)

const (
	StateBeginner = "beginner"

	StartingDifficultyTier = 3.0
)

// QuizRun is one attempt at the quiz. SectionSeq is generated once at start
// and never changes afterwards; Phase only ever moves forward.
type QuizRun struct {
	ID             string    `json:"quizId"`
	SectionSeq     []string  `json:"sectionSeq"`
	State          string    `json:"state"`
	DifficultyTier float64   `json:"difficultyTier"`
	Phase          RunPhase  `json:"phase"`
	SectionIndex   int       `json:"section_index"`
	StartedAt      time.Time `json:"started_at"`
}
