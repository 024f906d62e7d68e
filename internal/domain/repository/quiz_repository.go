package repository

import (
	"context"
	"fmt"
	"sync"

	"solarquiz/internal/common"
	"solarquiz/internal/domain/model"
)

type QuizRepository interface {
	Create(ctx context.Context, run *model.QuizRun) error
	Find(ctx context.Context, id string) (*model.QuizRun, error)
	// SetInProgress advances a run to InProgress at the given section index.
	// Completed runs are final and refuse the transition.
	SetInProgress(ctx context.Context, id string, sectionIndex int) error
	SetComplete(ctx context.Context, id string) error
}

type memQuizRepository struct {
	mu   sync.RWMutex
	runs map[string]*model.QuizRun
}

func NewMemQuizRepository() QuizRepository {
	return &memQuizRepository{runs: make(map[string]*model.QuizRun)}
}

func (r *memQuizRepository) Create(ctx context.Context, run *model.QuizRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.runs[run.ID]; exists {
		return fmt.Errorf("quiz run %s already exists: %w", run.ID, common.ErrConflict)
	}
	stored := *run
	stored.SectionSeq = append([]string(nil), run.SectionSeq...)
	r.runs[stored.ID] = &stored
	return nil
}

func (r *memQuizRepository) Find(ctx context.Context, id string) (*model.QuizRun, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.runs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	run := *stored
	run.SectionSeq = append([]string(nil), stored.SectionSeq...)
	return &run, nil
}

func (r *memQuizRepository) SetInProgress(ctx context.Context, id string, sectionIndex int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[id]
	if !ok {
		return common.ErrNotFound
	}
	if run.Phase == model.RunComplete {
		return fmt.Errorf("quiz run %s is complete: %w", id, common.ErrConflict)
	}
	run.Phase = model.RunInProgress
	run.SectionIndex = sectionIndex
	return nil
}

func (r *memQuizRepository) SetComplete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[id]
	if !ok {
		return common.ErrNotFound
	}
	run.Phase = model.RunComplete
	return nil
}
