package repository

import (
	"context"
	"strings"
	"sync"

	"solarquiz/internal/common"

	"github.com/google/uuid"
)

// SessionRepository maps opaque tokens to user ids. Tokens never expire in
// the current design; Revoke exists so an expiry sweep can be added without
// changing the interface.
type SessionRepository interface {
	Issue(ctx context.Context, userID int) (string, error)
	Resolve(ctx context.Context, token string) (int, error)
	Revoke(ctx context.Context, token string) error
}

type memSessionRepository struct {
	mu      sync.RWMutex
	byToken map[string]int
}

func NewMemSessionRepository() SessionRepository {
	return &memSessionRepository{byToken: make(map[string]int)}
}

func (r *memSessionRepository) Issue(ctx context.Context, userID int) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// 122 bits of entropy per token; the retry loop guards the uniqueness
	// invariant rather than the guessability one.
	token := newToken()
	for {
		if _, taken := r.byToken[token]; !taken {
			break
		}
		token = newToken()
	}
	r.byToken[token] = userID
	return token, nil
}

func (r *memSessionRepository) Resolve(ctx context.Context, token string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byToken[token]
	if !ok {
		return 0, common.ErrNotFound
	}
	return userID, nil
}

func (r *memSessionRepository) Revoke(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token]; !ok {
		return common.ErrNotFound
	}
	delete(r.byToken, token)
	return nil
}

func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
