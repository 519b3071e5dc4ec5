package user

import (
	"context"
	"errors"
	"strings"

	"github.com/thesrcielos/WordSlide/internal/apperrors"
	"github.com/thesrcielos/WordSlide/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

const maxUsernameLength = 32

type UserService struct {
	repo UserRepository
	cost int
}

func NewUserService(repo UserRepository, cost int) *UserService {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &UserService{repo: repo, cost: cost}
}

func (u *UserService) Signup(ctx context.Context, creds Credentials) (string, error) {
	username := strings.TrimSpace(creds.Username)
	if username == "" || creds.Password == "" {
		return "", apperrors.Validation("username and password are required")
	}
	if len(username) > maxUsernameLength {
		return "", apperrors.Validation("username must not exceed 32 characters")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), u.cost)
	if err != nil {
		return "", apperrors.NewAppError(500, "error hashing password", err)
	}

	created, err := u.repo.CreateUser(ctx, username, string(hashed))
	if errors.Is(err, ErrUsernameTaken) {
		return "", apperrors.Conflict("user already exists", err)
	}
	if err != nil {
		return "", apperrors.Storage("error creating user", err)
	}

	token, errJWT := GenerateJWT(created.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	logger.Log.Infow("user registered", "userId", created.ID)
	return token, nil
}

func (u *UserService) Login(ctx context.Context, creds Credentials) (string, error) {
	if creds.Username == "" || creds.Password == "" {
		return "", apperrors.Validation("username and password are required")
	}

	found, err := u.repo.GetUserByUsername(ctx, strings.TrimSpace(creds.Username))
	if errors.Is(err, ErrUserNotFound) {
		return "", apperrors.Unauthorized("invalid credentials", err)
	}
	if err != nil {
		return "", apperrors.Storage("error getting user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(creds.Password)); err != nil {
		return "", apperrors.Unauthorized("invalid credentials", err)
	}

	token, errJWT := GenerateJWT(found.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetUser(ctx context.Context, id uint) (*User, error) {
	found, err := u.repo.GetUser(ctx, id)
	if errors.Is(err, ErrUserNotFound) {
		return nil, apperrors.NotFound("user not found", err)
	}
	if err != nil {
		return nil, apperrors.Storage("error getting user", err)
	}
	return found, nil
}
