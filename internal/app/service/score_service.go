package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"solarquiz/internal/common"
	"solarquiz/internal/domain/model"
	"solarquiz/internal/domain/repository"
)

const currentWeekID = "live"

type ScoreService struct {
	scoreRepo   repository.ScoreRepository
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	quizRepo    repository.QuizRepository
	boardSize   int
}

func NewScoreService(
	scoreRepo repository.ScoreRepository,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	quizRepo repository.QuizRepository,
	boardSize int,
) *ScoreService {
	return &ScoreService{
		scoreRepo:   scoreRepo,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		quizRepo:    quizRepo,
		boardSize:   boardSize,
	}
}

// RecordScore appends a caller-reported tally to the ledger. The token must
// resolve to a user; the tally itself is trusted (see DESIGN.md). A known
// quiz run is marked complete as a side effect.
func (s *ScoreService) RecordScore(ctx context.Context, token, quizID string, correct, total int) error {
	if correct < 0 || total < 0 {
		return common.Errorf("correct and total must be non-negative: %w", common.ErrBadRequest)
	}

	userID, err := s.sessionRepo.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Errorf("session does not resolve: %w", common.ErrUnauthorized)
		}
		return fmt.Errorf("failed to resolve session: %w", err)
	}

	record := &model.ScoreRecord{
		UserID:    userID,
		QuizID:    quizID,
		Correct:   correct,
		Total:     total,
		CreatedAt: time.Now(),
	}
	if err := s.scoreRepo.Append(ctx, record); err != nil {
		return fmt.Errorf("failed to append score: %w", err)
	}

	// Best effort; the ledger does not require a registered run.
	s.quizRepo.SetComplete(ctx, quizID)
	return nil
}

type userTotal struct {
	userID int
	score  float64
	first  time.Time
}

// Leaderboard aggregates the full ledger into cumulative percentage scores:
// each record contributes correct/total*100 (0 when total is 0), so repeated
// play keeps raising a user's score. Ties are broken by earliest first record,
// then by user id.
func (s *ScoreService) Leaderboard(ctx context.Context) (*model.Leaderboard, error) {
	records, err := s.scoreRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read score ledger: %w", err)
	}

	totals := make(map[int]*userTotal)
	var order []int
	for _, rec := range records {
		agg, ok := totals[rec.UserID]
		if !ok {
			agg = &userTotal{userID: rec.UserID, first: rec.CreatedAt}
			totals[rec.UserID] = agg
			order = append(order, rec.UserID)
		}
		if rec.Total > 0 {
			agg.score += float64(rec.Correct) * 100 / float64(rec.Total)
		}
	}

	ranked := make([]*userTotal, 0, len(order))
	for _, userID := range order {
		ranked = append(ranked, totals[userID])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if !ranked[i].first.Equal(ranked[j].first) {
			return ranked[i].first.Before(ranked[j].first)
		}
		return ranked[i].userID < ranked[j].userID
	})
	if len(ranked) > s.boardSize {
		ranked = ranked[:s.boardSize]
	}

	rows := make([]model.LeaderboardRow, len(ranked))
	for i, agg := range ranked {
		rows[i] = model.LeaderboardRow{
			AccountID: s.displayIdentity(ctx, agg.userID),
			Score:     math.Round(agg.score*100) / 100,
			Rank:      i + 1,
		}
	}

	return &model.Leaderboard{
		WeekID:       currentWeekID,
		GlobalBoard:  rows,
		FriendsBoard: rows,
	}, nil
}

func (s *ScoreService) displayIdentity(ctx context.Context, userID int) string {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return strconv.Itoa(userID)
	}
	return user.Email
}
