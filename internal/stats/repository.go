package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thesrcielos/WordSlide/internal/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrUserNotFound = errors.New("user not found")

type Round struct {
	UserID      uint
	GameMode    string
	Level       int
	WordsSolved int
	TotalMoves  int
	PlayedAt    time.Time
}

type StatsRepository interface {
	RecordRound(ctx context.Context, round Round) error
	ResetStats(ctx context.Context, userID uint, gameMode string) error
	ListUserStats(ctx context.Context, userID uint) ([]GameModeStats, error)
	RecentSessions(ctx context.Context, userID uint, limit int) ([]GameSession, error)
}

type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// RecordRound appends the session and folds it into the aggregate in one
// transaction. The aggregate write is a single INSERT ... ON CONFLICT so
// concurrent first submissions for a pair cannot create two rows or lose an
// increment.
func (r *GormStatsRepository) RecordRound(ctx context.Context, round Round) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		session := GameSession{
			UserID:      round.UserID,
			GameMode:    round.GameMode,
			Level:       round.Level,
			WordsSolved: round.WordsSolved,
			MovesMade:   round.TotalMoves,
			Completed:   true,
			CreatedAt:   round.PlayedAt,
		}
		if err := tx.Omit(clause.Associations).Create(&session).Error; err != nil {
			return err
		}

		aggregate := GameModeStats{
			UserID:      round.UserID,
			GameMode:    round.GameMode,
			WordsSolved: round.WordsSolved,
			TotalMoves:  round.TotalMoves,
			GamesPlayed: 1,
			LastPlayed:  round.PlayedAt,
		}
		return tx.Omit(clause.Associations).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "game_mode"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"words_solved": gorm.Expr("game_mode_stats.words_solved + EXCLUDED.words_solved"),
				"total_moves":  gorm.Expr("game_mode_stats.total_moves + EXCLUDED.total_moves"),
				"games_played": gorm.Expr("game_mode_stats.games_played + 1"),
				"last_played":  gorm.Expr("EXCLUDED.last_played"),
			}),
		}).Create(&aggregate).Error
	})

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("recording round: %w", err)
	}
	return nil
}

// ResetStats zeroes the counters; lastPlayed and the session log are kept.
func (r *GormStatsRepository) ResetStats(ctx context.Context, userID uint, gameMode string) error {
	result := r.db.WithContext(ctx).
		Model(&GameModeStats{}).
		Where("user_id = ? AND game_mode = ?", userID, gameMode).
		Updates(map[string]interface{}{
			"words_solved": 0,
			"total_moves":  0,
			"games_played": 0,
		})
	if result.Error != nil {
		return fmt.Errorf("resetting stats: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&user.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return fmt.Errorf("checking user: %w", err)
	}
	if count == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *GormStatsRepository) ListUserStats(ctx context.Context, userID uint) ([]GameModeStats, error) {
	var rows []GameModeStats
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("game_mode ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing user stats: %w", err)
	}
	return rows, nil
}

func (r *GormStatsRepository) RecentSessions(ctx context.Context, userID uint, limit int) ([]GameSession, error) {
	var rows []GameSession
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return rows, nil
}
