package leaderboard

import (
	"context"
	"strconv"
	"strings"

	"github.com/thesrcielos/WordSlide/internal/apperrors"
	"github.com/thesrcielos/WordSlide/internal/metrics"
	"github.com/thesrcielos/WordSlide/internal/stats"
)

const DefaultLimit = 20

type LeaderboardService struct {
	repo LeaderboardRepository
}

func NewLeaderboardService(repo LeaderboardRepository) *LeaderboardService {
	return &LeaderboardService{repo: repo}
}

// ParseLimit falls back to DefaultLimit for anything that is not a positive integer.
func ParseLimit(raw string) int {
	limit, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || limit <= 0 {
		return DefaultLimit
	}
	return limit
}

func ParseGameMode(raw string) string {
	mode := strings.TrimSpace(raw)
	if mode == "" {
		return stats.DefaultGameMode
	}
	return mode
}

func (s *LeaderboardService) GetLeaderboard(ctx context.Context, gameMode string, limit int) ([]Entry, error) {
	gameMode = ParseGameMode(gameMode)
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.repo.TopPlayers(ctx, gameMode, limit)
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("leaderboard").Inc()
		return nil, apperrors.Storage("error getting leaderboard", err)
	}
	metrics.LeaderboardRequestsTotal.WithLabelValues(modeLabel(gameMode, rows)).Inc()

	entries := Rank(rows)
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// modeLabel only spends a label on modes somebody has played.
func modeLabel(gameMode string, rows []Row) string {
	for _, row := range rows {
		if row.HasStats {
			return metrics.GameModeLabel(gameMode)
		}
	}
	return metrics.OtherGameMode
}
