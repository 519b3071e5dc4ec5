package stats

import (
	"time"

	"github.com/thesrcielos/WordSlide/internal/user"
)

const DefaultGameMode = "original"

// GameModeStats is the running aggregate of every session for one (user, mode).
type GameModeStats struct {
	UserID      uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	GameMode    string    `gorm:"primaryKey;size:32;index:idx_stats_mode_rank,priority:1" json:"gameMode"`
	WordsSolved int       `gorm:"not null;index:idx_stats_mode_rank,priority:2,sort:desc" json:"wordsSolved"`
	TotalMoves  int       `gorm:"not null" json:"totalMoves"`
	GamesPlayed int       `gorm:"not null" json:"gamesPlayed"`
	LastPlayed  time.Time `gorm:"not null" json:"lastPlayed"`
	User        user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (GameModeStats) TableName() string {
	return "game_mode_stats"
}

// GameSession is append-only.
type GameSession struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index:idx_sessions_user_mode,priority:1" json:"userId"`
	GameMode    string    `gorm:"size:32;not null;index:idx_sessions_user_mode,priority:2" json:"gameMode"`
	Level       int       `gorm:"not null" json:"level"`
	WordsSolved int       `gorm:"not null" json:"wordsSolved"`
	MovesMade   int       `gorm:"not null" json:"movesMade"`
	Completed   bool      `gorm:"not null" json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	User        user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (GameSession) TableName() string {
	return "game_sessions"
}

// RoundResultRequest uses pointers so a missing field can be told apart from zero.
type RoundResultRequest struct {
	UserID      *uint  `json:"userId"`
	GameMode    string `json:"gameMode"`
	WordsSolved *int   `json:"wordsSolved"`
	TotalMoves  *int   `json:"totalMoves"`
	Level       *int   `json:"level,omitempty"`
}

type ResetRequest struct {
	UserID   *uint  `json:"userId"`
	GameMode string `json:"gameMode"`
}

// RoundResult is what a caller gets back: the submitted values, not the new totals.
type RoundResult struct {
	UserID      uint   `json:"userId"`
	GameMode    string `json:"gameMode"`
	WordsSolved int    `json:"wordsSolved"`
	TotalMoves  int    `json:"totalMoves"`
}

type ResetResult struct {
	UserID      uint   `json:"userId"`
	GameMode    string `json:"gameMode"`
	WordsSolved int    `json:"wordsSolved"`
	TotalMoves  int    `json:"totalMoves"`
	GamesPlayed int    `json:"gamesPlayed"`
}

type UserStats struct {
	Modes          []GameModeStats `json:"stats"`
	RecentSessions []GameSession   `json:"recentSessions"`
}
