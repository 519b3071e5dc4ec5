package leaderboard

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	TopPlayers(ctx context.Context, gameMode string, limit int) ([]Row, error)
}

type GormLeaderboardRepository struct {
	db *gorm.DB
}

func NewGormLeaderboardRepository(db *gorm.DB) *GormLeaderboardRepository {
	return &GormLeaderboardRepository{db: db}
}

// TopPlayers outer-joins every user so players without stats for the mode
// still show up, after everyone who has a row.
func (r *GormLeaderboardRepository) TopPlayers(ctx context.Context, gameMode string, limit int) ([]Row, error) {
	rows := []Row{}
	err := r.db.WithContext(ctx).
		Table("users AS u").
		Select(`u.id AS user_id,
			u.username AS username,
			COALESCE(s.words_solved, 0) AS words_solved,
			COALESCE(s.total_moves, 0) AS total_moves,
			COALESCE(s.games_played, 0) AS games_played,
			s.user_id IS NOT NULL AS has_stats`).
		Joins("LEFT JOIN game_mode_stats AS s ON s.user_id = u.id AND s.game_mode = ?", gameMode).
		Order("(s.user_id IS NULL) ASC, s.words_solved DESC, s.total_moves ASC, u.id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying leaderboard: %w", err)
	}
	return rows, nil
}
