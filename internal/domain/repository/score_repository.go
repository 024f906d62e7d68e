package repository

import (
	"context"
	"sync"

	"solarquiz/internal/domain/model"
)

// ScoreRepository is an append-only ledger. All returns a snapshot copy in
// insertion order; aggregation is a pure function over that history.
type ScoreRepository interface {
	Append(ctx context.Context, record *model.ScoreRecord) error
	All(ctx context.Context) ([]model.ScoreRecord, error)
}

type memScoreRepository struct {
	mu      sync.RWMutex
	records []model.ScoreRecord
}

func NewMemScoreRepository() ScoreRepository {
	return &memScoreRepository{}
}

func (r *memScoreRepository) Append(ctx context.Context, record *model.ScoreRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *record)
	return nil
}

func (r *memScoreRepository) All(ctx context.Context) ([]model.ScoreRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.ScoreRecord(nil), r.records...), nil
}
