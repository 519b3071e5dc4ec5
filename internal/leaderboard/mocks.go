package leaderboard

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) TopPlayers(ctx context.Context, gameMode string, limit int) ([]Row, error) {
	args := m.Called(ctx, gameMode, limit)
	rows, _ := args.Get(0).([]Row)
	return rows, args.Error(1)
}
