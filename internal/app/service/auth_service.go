package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"solarquiz/internal/common"
	"solarquiz/internal/common/security"
	"solarquiz/internal/domain/model"
	"solarquiz/internal/domain/repository"
)

type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{userRepo: userRepo, sessionRepo: sessionRepo}
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID int    `json:"userId"`
	Email  string `json:"email"`
}

func (s *AuthService) Signup(ctx context.Context, req SignupRequest) error {
	if req.Email == "" || req.Password == "" {
		return common.Errorf("email and password are required: %w", common.ErrBadRequest)
	}

	salt, hash, err := security.HashPassword(req.Password, nil)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Email:        strings.ToLower(req.Email),
		PasswordSalt: salt,
		PasswordHash: hash,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a duplicate email
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("email and password are required: %w", common.ErrBadRequest)
	}

	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Unknown email and wrong password must be indistinguishable
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.VerifyPassword(req.Password, user.PasswordSalt, user.PasswordHash) {
		return nil, common.ErrUnauthorized
	}

	token, err := s.sessionRepo.Issue(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue session: %w", err)
	}
	return &LoginResponse{Token: token, UserID: user.ID, Email: user.Email}, nil
}

// ResolveSession is a pure lookup with no side effects.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (int, error) {
	return s.sessionRepo.Resolve(ctx, token)
}
