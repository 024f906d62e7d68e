package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"solarquiz/internal/domain/model"
	"solarquiz/internal/domain/repository"
)

// StatsService tracks purchase-intent clicks and serves the admin counters.
type StatsService struct {
	userRepo     repository.UserRepository
	redirectURL  string
	intentClicks atomic.Int64
}

func NewStatsService(userRepo repository.UserRepository, redirectURL string) *StatsService {
	return &StatsService{userRepo: userRepo, redirectURL: redirectURL}
}

type IntentResponse struct {
	Created  bool   `json:"created"`
	Redirect string `json:"redirect"`
}

func (s *StatsService) RecordIntent(ctx context.Context) *IntentResponse {
	s.intentClicks.Add(1)
	return &IntentResponse{Created: true, Redirect: s.redirectURL}
}

func (s *StatsService) Stats(ctx context.Context) (*model.AdminStats, error) {
	accounts, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	clicks := s.intentClicks.Load()
	conversion := 0.0
	if clicks > 0 {
		conversion = float64(accounts) / float64(clicks)
	}
	return &model.AdminStats{
		IntentClicks:   clicks,
		Accounts:       accounts,
		AvgReadiness:   0, // no readiness model yet
		ConversionRate: conversion,
	}, nil
}
