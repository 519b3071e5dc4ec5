package stats

import (
	"strings"

	"github.com/thesrcielos/WordSlide/internal/apperrors"
)

const maxGameModeLength = 32

func normalizeGameMode(mode string) (string, error) {
	mode = strings.TrimSpace(mode)
	if mode == "" {
		return "", apperrors.Validation("gameMode is required")
	}
	if len(mode) > maxGameModeLength {
		return "", apperrors.Validation("gameMode must not exceed 32 characters")
	}
	return mode, nil
}

func validUserID(id *uint) error {
	if id == nil || *id == 0 {
		return apperrors.Validation("userId is required")
	}
	return nil
}

// Validate normalizes GameMode in place.
func (r *RoundResultRequest) Validate() error {
	if err := validUserID(r.UserID); err != nil {
		return err
	}
	mode, err := normalizeGameMode(r.GameMode)
	if err != nil {
		return err
	}
	r.GameMode = mode

	if r.WordsSolved == nil || r.TotalMoves == nil {
		return apperrors.Validation("wordsSolved and totalMoves are required")
	}
	if *r.WordsSolved < 0 || *r.TotalMoves < 0 {
		return apperrors.Validation("wordsSolved and totalMoves must not be negative")
	}
	if r.Level != nil && *r.Level < 1 {
		return apperrors.Validation("level must be at least 1")
	}
	return nil
}

func (r *ResetRequest) Validate() error {
	if err := validUserID(r.UserID); err != nil {
		return err
	}
	mode, err := normalizeGameMode(r.GameMode)
	if err != nil {
		return err
	}
	r.GameMode = mode
	return nil
}
