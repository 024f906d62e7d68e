package repository

import (
	"context"
	"fmt"
	"sync"

	"solarquiz/internal/common"
	"solarquiz/internal/domain/model"
)

type UserRepository interface {
	// Create assigns the next sequential id and stores the user. The email
	// must already be normalized (lowercased) by the caller.
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	Count(ctx context.Context) (int, error)
}

type memUserRepository struct {
	mu      sync.RWMutex
	byID    map[int]*model.User
	byEmail map[string]int
	nextID  int
}

func NewMemUserRepository() UserRepository {
	return &memUserRepository{
		byID:    make(map[int]*model.User),
		byEmail: make(map[string]int),
	}
}

func (r *memUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return fmt.Errorf("user with given email already exists: %w", common.ErrConflict)
	}

	r.nextID++
	user.ID = r.nextID

	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID
	return nil
}

func (r *memUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrNotFound
	}
	user := *r.byID[id]
	return &user, nil
}

func (r *memUserRepository) FindByID(ctx context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	user := *stored
	return &user, nil
}

func (r *memUserRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}
