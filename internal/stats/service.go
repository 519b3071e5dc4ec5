package stats

import (
	"context"
	"errors"
	"time"

	"github.com/thesrcielos/WordSlide/internal/apperrors"
	"github.com/thesrcielos/WordSlide/internal/events"
	"github.com/thesrcielos/WordSlide/internal/logger"
	"github.com/thesrcielos/WordSlide/internal/metrics"
)

const recentSessionsLimit = 10

type StatsService struct {
	repo      StatsRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewStatsService(repo StatsRepository, publisher events.Publisher) *StatsService {
	return &StatsService{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *StatsService) SubmitRoundResult(ctx context.Context, req *RoundResultRequest) (*RoundResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	level := 1
	if req.Level != nil {
		level = *req.Level
	}
	round := Round{
		UserID:      *req.UserID,
		GameMode:    req.GameMode,
		Level:       level,
		WordsSolved: *req.WordsSolved,
		TotalMoves:  *req.TotalMoves,
		PlayedAt:    s.now(),
	}

	if err := s.repo.RecordRound(ctx, round); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found", err)
		}
		metrics.StorageErrorsTotal.WithLabelValues("submit_round").Inc()
		return nil, apperrors.Storage("error updating stats", err)
	}
	metrics.RoundsSubmittedTotal.WithLabelValues(metrics.GameModeLabel(round.GameMode)).Inc()

	s.publish(ctx, events.RoundRecorded, events.StatsEvent{
		UserID:      round.UserID,
		GameMode:    round.GameMode,
		WordsSolved: round.WordsSolved,
		TotalMoves:  round.TotalMoves,
		At:          round.PlayedAt,
	})

	return &RoundResult{
		UserID:      round.UserID,
		GameMode:    round.GameMode,
		WordsSolved: round.WordsSolved,
		TotalMoves:  round.TotalMoves,
	}, nil
}

func (s *StatsService) ResetStats(ctx context.Context, req *ResetRequest) (*ResetResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	userID := *req.UserID

	if err := s.repo.ResetStats(ctx, userID, req.GameMode); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found", err)
		}
		metrics.StorageErrorsTotal.WithLabelValues("reset_stats").Inc()
		return nil, apperrors.Storage("error resetting stats", err)
	}
	metrics.StatsResetsTotal.WithLabelValues(metrics.GameModeLabel(req.GameMode)).Inc()

	s.publish(ctx, events.StatsReset, events.StatsEvent{
		UserID:   userID,
		GameMode: req.GameMode,
		At:       s.now(),
	})

	return &ResetResult{UserID: userID, GameMode: req.GameMode}, nil
}

func (s *StatsService) UserStats(ctx context.Context, userID uint) (*UserStats, error) {
	modes, err := s.repo.ListUserStats(ctx, userID)
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("user_stats").Inc()
		return nil, apperrors.Storage("error getting user stats", err)
	}
	sessions, err := s.repo.RecentSessions(ctx, userID, recentSessionsLimit)
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("user_sessions").Inc()
		return nil, apperrors.Storage("error getting user sessions", err)
	}

	if modes == nil {
		modes = []GameModeStats{}
	}
	if sessions == nil {
		sessions = []GameSession{}
	}
	return &UserStats{Modes: modes, RecentSessions: sessions}, nil
}

// publish runs after the write has committed, so a failure here only loses the live notification.
func (s *StatsService) publish(ctx context.Context, kind string, event events.StatsEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, events.Message{Type: kind, Payload: event}); err != nil {
		logger.Log.Warnw("error publishing stats event", "type", kind, "userId", event.UserID, "error", err)
	}
}
