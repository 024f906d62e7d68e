package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"solarquiz/internal/domain/model"
	"solarquiz/internal/domain/repository"
	"solarquiz/internal/platform/bank"

	"github.com/google/uuid"
)

// QuizService orchestrates quiz runs: section-order shuffling at start and
// non-repeating question sampling per section. The quiz id is treated as an
// opaque correlation token on fetches; the run registry is advanced
// best-effort when the id is known, but never gates a fetch.
type QuizService struct {
	bank       *bank.Bank
	quizRepo   repository.QuizRepository
	perSection int

	mu  sync.Mutex // rand.Rand is not goroutine-safe
	rng *rand.Rand
}

func NewQuizService(b *bank.Bank, quizRepo repository.QuizRepository, perSection int) *QuizService {
	return &QuizService{
		bank:       b,
		quizRepo:   quizRepo,
		perSection: perSection,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

type StartQuizResponse struct {
	QuizID         string   `json:"quizId"`
	SectionSeq     []string `json:"sectionSeq"`
	State          string   `json:"state"`
	DifficultyTier float64  `json:"difficultyTier"`
}

type ResponseAck struct {
	Next     string `json:"next"`
	Received bool   `json:"received"`
}

// StartQuiz creates a run with a uniformly random section order. No
// authentication is required to start; rate limiting is a transport concern.
func (s *QuizService) StartQuiz(ctx context.Context) (*StartQuizResponse, error) {
	seq := s.bank.Sections()
	s.shuffle(len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })

	run := &model.QuizRun{
		ID:             "q_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
		SectionSeq:     seq,
		State:          model.StateBeginner,
		DifficultyTier: model.StartingDifficultyTier,
		Phase:          model.RunCreated,
		StartedAt:      time.Now(),
	}
	if err := s.quizRepo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to register quiz run: %w", err)
	}

	return &StartQuizResponse{
		QuizID:         run.ID,
		SectionSeq:     run.SectionSeq,
		State:          run.State,
		DifficultyTier: run.DifficultyTier,
	}, nil
}

// SectionQuestions samples up to perSection questions from the section,
// excluding questions that share a concept tag with recentConcepts. If the
// exclusion would empty a non-empty section, the full list is used instead so
// over-filtering never starves the caller.
func (s *QuizService) SectionQuestions(ctx context.Context, quizID, section string, recentConcepts []string) ([]model.Question, error) {
	full := s.bank.QuestionsFor(section)
	if len(full) == 0 {
		return []model.Question{}, nil
	}

	recent := make(map[string]struct{}, len(recentConcepts))
	for _, tag := range recentConcepts {
		recent[tag] = struct{}{}
	}

	var filtered []model.Question
	for _, q := range full {
		if !sharesTag(q.ConceptTags, recent) {
			filtered = append(filtered, q)
		}
	}
	pool := filtered
	if len(pool) == 0 {
		pool = full
	}

	out := append([]model.Question(nil), pool...)
	s.shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > s.perSection {
		out = out[:s.perSection]
	}

	s.advanceRun(ctx, quizID, section)
	return out, nil
}

// AcknowledgeResponse acknowledges a per-question answer submission. The
// caller drives question flow; the server only confirms receipt.
func (s *QuizService) AcknowledgeResponse(ctx context.Context, quizID string) (*ResponseAck, error) {
	run, err := s.quizRepo.Find(ctx, quizID)
	if err == nil && run.Phase == model.RunCreated {
		s.quizRepo.SetInProgress(ctx, quizID, run.SectionIndex)
	}
	return &ResponseAck{Next: "continue", Received: true}, nil
}

func (s *QuizService) shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	s.rng.Shuffle(n, swap)
	s.mu.Unlock()
}

func (s *QuizService) advanceRun(ctx context.Context, quizID, section string) {
	// Unknown quiz ids are trusted as opaque correlation tokens; there is
	// nothing to advance for them.
	run, err := s.quizRepo.Find(ctx, quizID)
	if err != nil {
		return
	}
	for i, name := range run.SectionSeq {
		if name == section {
			s.quizRepo.SetInProgress(ctx, quizID, i)
			return
		}
	}
}

func sharesTag(tags []string, recent map[string]struct{}) bool {
	for _, tag := range tags {
		if _, ok := recent[tag]; ok {
			return true
		}
	}
	return false
}
