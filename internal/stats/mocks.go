package stats

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thesrcielos/WordSlide/internal/events"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) RecordRound(ctx context.Context, round Round) error {
	args := m.Called(ctx, round)
	return args.Error(0)
}

func (m *MockStatsRepository) ResetStats(ctx context.Context, userID uint, gameMode string) error {
	args := m.Called(ctx, userID, gameMode)
	return args.Error(0)
}

func (m *MockStatsRepository) ListUserStats(ctx context.Context, userID uint) ([]GameModeStats, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]GameModeStats)
	return rows, args.Error(1)
}

func (m *MockStatsRepository) RecentSessions(ctx context.Context, userID uint, limit int) ([]GameSession, error) {
	args := m.Called(ctx, userID, limit)
	rows, _ := args.Get(0).([]GameSession)
	return rows, args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, msg events.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
